package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeProject(t *testing.T, dir string, withRes bool, references ...string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	if withRes {
		require.NoError(t, os.MkdirAll(filepath.Join(dir, "res"), 0o755))
	}
	if len(references) == 0 {
		return
	}
	content := "target=android-10\n"
	for i, ref := range references {
		content += "android.library.reference." + string(rune('1'+i)) + "=" + ref + "\n"
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "project.properties"), []byte(content), 0o644))
}

func canonical(t *testing.T, path string) string {
	t.Helper()
	resolved, err := filepath.EvalSymlinks(path)
	require.NoError(t, err)
	return resolved
}

func TestLibraryDiscoveryBreadthFirst(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "app")
	writeProject(t, app, true, "../libA", "../libB")
	writeProject(t, filepath.Join(root, "libA"), true, "../libC")
	writeProject(t, filepath.Join(root, "libB"), true, "../libC")
	writeProject(t, filepath.Join(root, "libC"), true)

	libs, err := NewLibraryDiscoveryAdapter().FindLibraryProjects(app)
	require.NoError(t, err)
	assert.Equal(t, []string{
		canonical(t, filepath.Join(root, "libA")),
		canonical(t, filepath.Join(root, "libB")),
		canonical(t, filepath.Join(root, "libC")),
	}, libs)
}

func TestLibraryDiscoverySkipsLibrariesWithoutResources(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "app")
	writeProject(t, app, true, "../codeOnly", "../withRes")
	writeProject(t, filepath.Join(root, "codeOnly"), false, "../hidden")
	writeProject(t, filepath.Join(root, "hidden"), true)
	writeProject(t, filepath.Join(root, "withRes"), true)

	libs, err := NewLibraryDiscoveryAdapter().FindLibraryProjects(app)
	require.NoError(t, err)
	assert.Equal(t, []string{canonical(t, filepath.Join(root, "withRes"))}, libs)
}

func TestLibraryDiscoveryStopsOnCycles(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "app")
	writeProject(t, app, true, "../libA")
	writeProject(t, filepath.Join(root, "libA"), true, "../app", "../libA")

	libs, err := NewLibraryDiscoveryAdapter().FindLibraryProjects(app)
	require.NoError(t, err)
	assert.Equal(t, []string{canonical(t, filepath.Join(root, "libA"))}, libs)
}

func TestLibraryDiscoveryStopsAtFirstMissingIndex(t *testing.T) {
	root := t.TempDir()
	app := filepath.Join(root, "app")
	require.NoError(t, os.MkdirAll(app, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(app, "project.properties"), []byte(
		"android.library.reference.1=../libA\nandroid.library.reference.3=../libC\n"), 0o644))
	writeProject(t, filepath.Join(root, "libA"), true)
	writeProject(t, filepath.Join(root, "libC"), true)

	libs, err := NewLibraryDiscoveryAdapter().FindLibraryProjects(app)
	require.NoError(t, err)
	assert.Equal(t, []string{canonical(t, filepath.Join(root, "libA"))}, libs)
}

func TestLibraryDiscoveryWithoutProperties(t *testing.T) {
	libs, err := NewLibraryDiscoveryAdapter().FindLibraryProjects(t.TempDir())
	require.NoError(t, err)
	assert.Empty(t, libs)

	_, err = NewLibraryDiscoveryAdapter().FindLibraryProjects(" ")
	require.Error(t, err)
}
