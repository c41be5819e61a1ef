package app

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"resmap/internal/core"
)

func TestValidateApp(t *testing.T) {
	service := NewService()
	result, err := service.Validate(t.Context(), ValidateRequest{ProjectPath: sampleProject(t)})
	require.NoError(t, err)
	if diff := cmp.Diff("com.example.sample", result.Package); diff != "" {
		t.Fatalf("unexpected package (-want +got):\n%s", diff)
	}
	want := core.Stats{Application: 9, System: 3, Libraries: 2, Rebased: 4}
	if diff := cmp.Diff(want, result.Stats); diff != "" {
		t.Fatalf("unexpected stats (-want +got):\n%s", diff)
	}
}
