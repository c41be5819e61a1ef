package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/policies"
)

// Libraries lists the library tables a build would register, without
// reading them.
func (s Service) Libraries(ctx context.Context, req LibrariesRequest) (LibrariesResult, error) {
	projectPath := strings.TrimSpace(req.ProjectPath)
	if projectPath == "" {
		return LibrariesResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("project file path is required")
	}
	project, err := s.ProjectLoader.LoadProject(projectPath)
	if err != nil {
		return LibrariesResult{}, err
	}
	policy, err := policies.NewLibraryPolicy(project.Libraries.Mode, project.Libraries.Ignore)
	if err != nil {
		return LibrariesResult{}, err
	}
	libraries, err := s.locateLibraries(ctx, project, policy)
	if err != nil {
		return LibrariesResult{}, err
	}
	return LibrariesResult{Libraries: libraries}, nil
}
