package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resmap/internal/types"
)

func TestResolveIDApp(t *testing.T) {
	service := NewService()
	cases := []struct {
		reference string
		namespace types.Namespace
		want      int32
	}{
		{reference: "@string/app_name", want: 0x7f040000},
		{reference: "@+id/button", want: 0x7f020000},
		{reference: "@android:string/cancel", want: 0x01040001},
		{reference: "@null", want: 0},
		{reference: "layout/core_row", namespace: types.NamespaceLibrary, want: 0x7f030001},
	}
	for _, tc := range cases {
		t.Run(tc.reference, func(t *testing.T) {
			result, err := service.ResolveID(t.Context(), ResolveIDRequest{
				ProjectPath: sampleProject(t),
				Reference:   tc.reference,
				Namespace:   tc.namespace,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.ID)
		})
	}
}

func TestResolveIDAppErrors(t *testing.T) {
	service := NewService()
	_, err := service.ResolveID(t.Context(), ResolveIDRequest{ProjectPath: sampleProject(t)})
	require.Error(t, err)

	_, err = service.ResolveID(t.Context(), ResolveIDRequest{ProjectPath: sampleProject(t), Reference: "@string/missing"})
	require.Error(t, err)

	_, err = service.ResolveID(t.Context(), ResolveIDRequest{ProjectPath: sampleProject(t), Reference: "@string/app_name", Namespace: "vendor"})
	require.Error(t, err)
}

func TestResolveNameApp(t *testing.T) {
	service := NewService()
	cases := []struct {
		name string
		req  ResolveNameRequest
		want string
	}{
		{name: "application", req: ResolveNameRequest{ID: 0x7f030000}, want: "layout/main"},
		{name: "system", req: ResolveNameRequest{ID: 0x01020014}, want: "android:id/text1"},
		{name: "library", req: ResolveNameRequest{ID: 0x7f040000, Library: "com.example.extra"}, want: "string/extra_label"},
		{name: "group", req: ResolveNameRequest{ID: 0x7f040001, Group: "string"}, want: "string/title"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.ProjectPath = sampleProject(t)
			result, err := service.ResolveName(t.Context(), tc.req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, result.Name)
		})
	}

	_, err := service.ResolveName(t.Context(), ResolveNameRequest{ProjectPath: sampleProject(t), ID: 0x7f030000, Group: "string"})
	require.Error(t, err)
	_, err = service.ResolveName(t.Context(), ResolveNameRequest{ProjectPath: sampleProject(t), ID: 0x7f040000, Library: "com.example.extra", Group: "layout"})
	require.Error(t, err)
}
