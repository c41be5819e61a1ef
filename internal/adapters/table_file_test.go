package adapters

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resmap/internal/types"
)

func TestTableFileAdapterLoadsOrderedGroups(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "R.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
namespace: application
package: com.example.app
groups:
  - name: string
    fields:
      - {name: hello, id: 0x7f040001}
      - {name: app_name, id: 0x7f040000}
  - name: styleable
    fields:
      - {name: View_padding, id: 0}
  - name: layout
    fields:
      - name: main
        id: 2130903040
`), 0o644))

	table, err := NewTableFileAdapter().LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, types.NamespaceApplication, table.Namespace)
	assert.Equal(t, "com.example.app", table.Package)

	want := []types.TableGroup{
		{Name: "string", Fields: []types.TableField{{Name: "hello", ID: 0x7f040001}, {Name: "app_name", ID: 0x7f040000}}},
		{Name: "styleable", Fields: []types.TableField{{Name: "View_padding", ID: 0}}},
		{Name: "layout", Fields: []types.TableField{{Name: "main", ID: 0x7f030000}}},
	}
	if diff := cmp.Diff(want, table.Groups); diff != "" {
		t.Fatalf("unexpected groups (-want +got):\n%s", diff)
	}
}

func TestTableFileAdapterKeepsDuplicateFields(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "R.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
namespace: library
identity: com.example.lib
groups:
  - name: string
    fields:
      - {name: app_name, id: 1}
      - {name: app_name, id: 2}
`), 0o644))

	table, err := NewTableFileAdapter().LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, "com.example.lib", table.Identity)
	require.Len(t, table.Groups, 1)
	assert.Len(t, table.Groups[0].Fields, 2)
}

func TestTableFileAdapterErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := NewTableFileAdapter().LoadTable(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid yaml", content: "groups: [\n"},
		{name: "missing namespace", content: "groups: []\n"},
		{name: "unknown namespace", content: "namespace: vendor\ngroups: []\n"},
		{name: "id overflows int32", content: "namespace: system\ngroups:\n  - name: id\n    fields:\n      - {name: x, id: 0x1ffffffff}\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, "bad.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))
			_, err := NewTableFileAdapter().LoadTable(path)
			require.Error(t, err)
		})
	}
}
