package cli

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resmap/internal/core"
)

// ---------- Command tree tests ----------

func TestRootCommandHasSubcommands(t *testing.T) {
	root := newRootCommand()
	names := make([]string, 0, len(root.Commands()))
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	expected := []string{
		"validate", "resolve-id", "resolve-name",
		"inspect", "string", "libraries",
	}
	for _, name := range expected {
		assert.Contains(t, names, name, "missing subcommand: %s", name)
	}
}

func TestRootCommandVersion(t *testing.T) {
	root := newRootCommand()
	assert.Equal(t, "dev", root.Version)
}

func TestRootCommandPersistentFlags(t *testing.T) {
	root := newRootCommand()
	for _, name := range []string{"config", "log-level", "project", "workers"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(name), "missing flag: %s", name)
	}
}

func TestInspectCommandFlags(t *testing.T) {
	cmd := newInspectCommand()
	for _, name := range []string{"output", "from", "entries"} {
		assert.NotNil(t, cmd.Flags().Lookup(name), "missing flag: %s", name)
	}
}

func TestResolveNameCommandFlags(t *testing.T) {
	cmd := newResolveNameCommand()
	assert.NotNil(t, cmd.Flags().Lookup("library"))
	assert.NotNil(t, cmd.Flags().Lookup("group"))
	assert.NotNil(t, newResolveIDCommand().Flags().Lookup("namespace"))
}

func TestRootCommandRunsAgainstSampleProject(t *testing.T) {
	project, err := filepath.Abs(filepath.Join("..", "..", "fixtures", "sample-app", "resmap-project.yaml"))
	require.NoError(t, err)

	tests := [][]string{
		{"validate"},
		{"resolve-id", "@string/app_name"},
		{"resolve-name", "0x7f030000"},
		{"resolve-name", "0x7f040000", "--library", "com.example.extra"},
		{"inspect", "--output", t.TempDir()},
		{"string", "@string/title"},
		{"libraries"},
	}
	for _, args := range tests {
		t.Run(args[0], func(t *testing.T) {
			root := newRootCommand()
			root.SetArgs(append(args, "--project", project, "--log-level", "error"))
			require.NoError(t, root.Execute())
		})
	}
}

func TestRootCommandReportsMissingResource(t *testing.T) {
	project, err := filepath.Abs(filepath.Join("..", "..", "fixtures", "sample-app", "resmap-project.yaml"))
	require.NoError(t, err)

	root := newRootCommand()
	root.SetArgs([]string{"resolve-id", "@string/missing", "--project", project, "--log-level", "error"})
	root.SilenceErrors = true
	err = root.Execute()
	require.Error(t, err)
	assert.Equal(t, 5, exitCodeForError(err))
}

// ---------- Helper function tests ----------

func TestResolveString(t *testing.T) {
	tests := []struct {
		name     string
		cmd      *cobra.Command
		value    string
		expected string
	}{
		{
			name:     "nil cmd with value returns value",
			cmd:      nil,
			value:    "explicit",
			expected: "explicit",
		},
		{
			name:     "nil cmd empty value returns empty",
			cmd:      nil,
			value:    "",
			expected: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolveString(tt.cmd, tt.value, "test_key", "test-flag")
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFlagChanged(t *testing.T) {
	assert.False(t, flagChanged(nil, "anything"), "nil cmd should return false")
	assert.False(t, flagChanged(nil, ""), "nil cmd with empty name")

	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	assert.False(t, flagChanged(cmd, "myflag"), "unchanged flag")
	assert.False(t, flagChanged(cmd, "nonexistent"), "nonexistent flag")
}

func TestFlagChangedAfterSet(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("myflag", "", "test flag")
	require.NoError(t, cmd.Flags().Set("myflag", "val"))
	assert.True(t, flagChanged(cmd, "myflag"))
}

func TestStringRequest(t *testing.T) {
	req, err := stringRequest("p.yaml", "@string/app_name")
	require.NoError(t, err)
	assert.Equal(t, "@string/app_name", req.Reference)

	req, err = stringRequest("p.yaml", "android:string/ok")
	require.NoError(t, err)
	assert.Equal(t, "android:string/ok", req.Reference)

	req, err = stringRequest("p.yaml", "0x7f040000")
	require.NoError(t, err)
	assert.Equal(t, int32(0x7f040000), req.ID)
	assert.Empty(t, req.Reference)

	_, err = stringRequest("p.yaml", "app_name")
	require.Error(t, err)
}

// ---------- Exit code tests ----------

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{
			name:     "configuration",
			err:      &core.ConfigurationError{Err: core.ErrMultipleApplicationTables},
			expected: 2,
		},
		{
			name:     "duplicate identifier",
			err:      &core.DuplicateIdentifierError{Table: "application", Name: "string/a", FirstID: 1, SecondID: 2},
			expected: 2,
		},
		{
			name:     "collision",
			err:      &core.IdentifierCollisionError{ID: 1, ExistingName: "android:id/a", NewName: "id/b"},
			expected: 3,
		},
		{
			name:     "unknown library resource",
			err:      &core.UnknownLibraryResourceError{Library: "com.example.lib", Name: "string/x"},
			expected: 4,
		},
		{
			name:     "joined drain failures",
			err:      errors.Join(&core.UnknownLibraryResourceError{Library: "a", Name: "string/x"}),
			expected: 4,
		},
		{
			name: "invalid argument",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("bad input"),
			expected: 2,
		},
		{
			name: "already exists",
			err: errbuilder.New().
				WithCode(errbuilder.CodeAlreadyExists).
				WithMsg("dup"),
			expected: 2,
		},
		{
			name: "failed precondition",
			err: errbuilder.New().
				WithCode(errbuilder.CodeFailedPrecondition).
				WithMsg("something else failed"),
			expected: 3,
		},
		{
			name: "not found",
			err: errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("file missing"),
			expected: 5,
		},
		{
			name: "internal error",
			err: errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("boom"),
			expected: 5,
		},
		{
			name:     "unknown error",
			err:      assert.AnError,
			expected: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := exitCodeForError(tt.err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
