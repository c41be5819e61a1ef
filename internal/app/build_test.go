package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resmap/internal/core"
	"resmap/internal/types"
)

func sampleProject(t *testing.T) string {
	t.Helper()
	root, err := filepath.Abs(filepath.Join("..", ".."))
	require.NoError(t, err)
	return filepath.Join(root, "fixtures", "sample-app", "resmap-project.yaml")
}

func TestBuildSampleProject(t *testing.T) {
	service := NewService()
	built, err := service.Build(t.Context(), BuildRequest{ProjectPath: sampleProject(t)})
	require.NoError(t, err)

	assert.Equal(t, "com.example.sample", built.Package)
	assert.Equal(t, core.StateStable, built.Engine.State())

	var identities []string
	for _, library := range built.Libraries {
		identities = append(identities, library.Identity)
	}
	if diff := cmp.Diff([]string{"com.example.core", "com.example.extra"}, identities); diff != "" {
		t.Fatalf("unexpected libraries (-want +got):\n%s", diff)
	}

	name, ok := built.Engine.ResolveLibraryName("com.example.core", 0x7f030000)
	require.True(t, ok)
	assert.Equal(t, "layout/core_row", name)

	id, ok := built.Engine.ResolveID("@android:string/ok")
	require.True(t, ok)
	assert.Equal(t, int32(0x01040000), id)

	_, ok = built.Engine.ResolveID("styleable/SampleView")
	assert.False(t, ok)
}

func TestBuildRequiresProjectPath(t *testing.T) {
	_, err := NewService().Build(t.Context(), BuildRequest{})
	require.Error(t, err)
}

// writeProject lays out a minimal application with one explicit library
// table and returns the project file path.
func writeProject(t *testing.T, mode string, libraryTable string) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"AndroidManifest.xml": `<manifest package="com.example.tmp"/>`,
		"app.yaml":            `namespace: application
groups:
  - name: string
    fields:
      - {name: hello, id: 0x7f040000}
`,
		"lib.yaml":            libraryTable,
		"resmap-project.yaml": `api_version: v1
application:
  manifest: AndroidManifest.xml
  table: app.yaml
libraries:
  mode: ` + mode + `
  explicit:
    - {identity: com.example.lib, table: lib.yaml}
`,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return filepath.Join(dir, "resmap-project.yaml")
}

const unknownLibraryTable = `namespace: library
groups:
  - name: string
    fields:
      - {name: hello, id: 0x7f040000}
      - {name: goodbye, id: 0x7f040001}
`

func TestBuildStrictLibraryFailure(t *testing.T) {
	_, err := NewService().Build(t.Context(), BuildRequest{ProjectPath: writeProject(t, "strict", unknownLibraryTable)})
	require.Error(t, err)

	var unknown *core.UnknownLibraryResourceError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "com.example.lib", unknown.Library)
	assert.Equal(t, "string/goodbye", unknown.Name)
}

func TestBuildLenientLibrary(t *testing.T) {
	built, err := NewService().Build(t.Context(), BuildRequest{ProjectPath: writeProject(t, "lenient", unknownLibraryTable)})
	require.NoError(t, err)

	want := []types.LibrarySummary{{Identity: "com.example.lib", Rebased: 1, Skipped: 1}}
	if diff := cmp.Diff(want, built.Engine.Libraries()); diff != "" {
		t.Fatalf("unexpected library summary (-want +got):\n%s", diff)
	}
}

func TestBuildRejectsNamespaceMismatch(t *testing.T) {
	table := `namespace: application
groups: []
`
	_, err := NewService().Build(t.Context(), BuildRequest{ProjectPath: writeProject(t, "strict", table)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected library")
}

func TestBuildRejectsIdentityMismatch(t *testing.T) {
	table := `namespace: library
identity: com.example.other
groups: []
`
	_, err := NewService().Build(t.Context(), BuildRequest{ProjectPath: writeProject(t, "strict", table)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected com.example.lib")
}

func TestLibrariesListsDiscoveryOrder(t *testing.T) {
	result, err := NewService().Libraries(t.Context(), LibrariesRequest{ProjectPath: sampleProject(t)})
	require.NoError(t, err)
	require.Len(t, result.Libraries, 2)
	assert.Equal(t, "com.example.core", result.Libraries[0].Identity)
	assert.Equal(t, "lib-core", filepath.Base(result.Libraries[0].Root))
	assert.Equal(t, "com.example.extra", result.Libraries[1].Identity)
}
