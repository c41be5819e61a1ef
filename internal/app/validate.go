package app

import (
	"context"
)

// Validate builds the engine and reports what was merged. Any ingestion,
// collision or library error fails validation.
func (s Service) Validate(ctx context.Context, req ValidateRequest) (ValidateResult, error) {
	built, err := s.Build(ctx, BuildRequest{ProjectPath: req.ProjectPath})
	if err != nil {
		return ValidateResult{}, err
	}
	return ValidateResult{
		Package:   built.Package,
		Stats:     built.Engine.Stats(),
		Libraries: built.Engine.Libraries(),
	}, nil
}
