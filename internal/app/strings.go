package app

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"resmap/internal/shared"
	"resmap/internal/types"
)

// StringValue resolves a string resource to its default value. Library values
// load before the application's so the application overrides them.
func (s Service) StringValue(ctx context.Context, req StringRequest) (StringResult, error) {
	built, err := s.Build(ctx, BuildRequest{ProjectPath: req.ProjectPath})
	if err != nil {
		return StringResult{}, err
	}
	id := req.ID
	if reference := strings.TrimSpace(req.Reference); reference != "" {
		resolved, ok := built.Engine.ResolveID(reference)
		if !ok {
			return StringResult{}, errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("no resource named " + reference)
		}
		id = resolved
	}
	name, ok := built.Engine.ResolveNameInGroup(id, types.GroupString)
	if !ok {
		return StringResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("0x%08x is not a string resource", uint32(id)))
	}

	values := s.NewStrings(built.Engine)
	if dir := built.Project.System.ResDir; dir != "" {
		if err := values.LoadStrings(dir, true); err != nil {
			return StringResult{}, err
		}
	}
	for _, library := range built.Libraries {
		if library.Root == "" {
			continue
		}
		dir := filepath.Join(library.Root, "res")
		if !shared.IsDir(dir) {
			continue
		}
		if err := values.LoadStrings(dir, false); err != nil {
			return StringResult{}, err
		}
	}
	resDir := built.Project.Application.ResDir
	if resDir == "" {
		resDir = filepath.Join(filepath.Dir(built.Project.Application.Manifest), "res")
	}
	if err := values.LoadStrings(resDir, false); err != nil {
		return StringResult{}, err
	}

	value, ok := values.Value(id)
	if !ok {
		return StringResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no value for string " + name)
	}
	log.Ctx(ctx).Debug().Str("name", name).Msg("string value resolved")
	return StringResult{ID: id, Name: name, Value: value}, nil
}
