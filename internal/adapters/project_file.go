package adapters

import (
	"os"
	"path/filepath"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"resmap/internal/ports"
	"resmap/internal/shared"
	"resmap/internal/types"
)

const projectAPIVersion = "v1"

var projectValidate = validator.New()

// ProjectFileAdapter loads resmap project files. Paths inside the file are
// resolved against the file's directory.
type ProjectFileAdapter struct{}

func NewProjectFileAdapter() ProjectFileAdapter {
	return ProjectFileAdapter{}
}

func (a ProjectFileAdapter) LoadProject(path string) (types.ProjectSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("project file not found").
			WithCause(err)
	}
	var spec types.ProjectSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse project yaml").
			WithCause(err)
	}
	if err := projectValidate.Struct(spec); err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid project file: " + path).
			WithCause(err)
	}
	if spec.APIVersion != projectAPIVersion {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unsupported project api_version: " + spec.APIVersion)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return types.ProjectSpec{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve project path").
			WithCause(err)
	}
	spec.Dir = filepath.Dir(abs)
	resolveProjectPaths(&spec)
	return spec, nil
}

func resolveProjectPaths(spec *types.ProjectSpec) {
	base := spec.Dir
	spec.Application.Manifest = shared.ResolvePath(base, spec.Application.Manifest)
	spec.Application.Table = shared.ResolvePath(base, spec.Application.Table)
	spec.Application.ResDir = shared.ResolvePath(base, spec.Application.ResDir)
	spec.System.Table = shared.ResolvePath(base, spec.System.Table)
	spec.System.ResDir = shared.ResolvePath(base, spec.System.ResDir)
	spec.Libraries.TablesDir = shared.ResolvePath(base, spec.Libraries.TablesDir)
	for i := range spec.Libraries.Explicit {
		spec.Libraries.Explicit[i].Table = shared.ResolvePath(base, spec.Libraries.Explicit[i].Table)
	}
}

var _ ports.ProjectSpecPort = ProjectFileAdapter{}
