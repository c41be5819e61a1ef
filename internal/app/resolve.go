package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/types"
)

func (s Service) ResolveID(ctx context.Context, req ResolveIDRequest) (ResolveIDResult, error) {
	reference := strings.TrimSpace(req.Reference)
	if reference == "" {
		return ResolveIDResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("resource reference is required")
	}
	if req.Namespace != "" && !req.Namespace.Valid() {
		return ResolveIDResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("unknown namespace: " + string(req.Namespace))
	}
	built, err := s.Build(ctx, BuildRequest{ProjectPath: req.ProjectPath})
	if err != nil {
		return ResolveIDResult{}, err
	}
	var id int32
	var ok bool
	if req.Namespace == "" {
		id, ok = built.Engine.ResolveID(reference)
	} else {
		id, ok = built.Engine.ResolveIDIn(reference, req.Namespace)
	}
	if !ok {
		return ResolveIDResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("no resource named " + reference)
	}
	return ResolveIDResult{Reference: reference, ID: id}, nil
}

func (s Service) ResolveName(ctx context.Context, req ResolveNameRequest) (ResolveNameResult, error) {
	built, err := s.Build(ctx, BuildRequest{ProjectPath: req.ProjectPath})
	if err != nil {
		return ResolveNameResult{}, err
	}
	library := strings.TrimSpace(req.Library)
	group := strings.TrimSpace(req.Group)
	var name string
	var ok bool
	switch {
	case library != "":
		name, ok = built.Engine.ResolveLibraryName(library, req.ID)
		if ok && group != "" && groupOfName(name) != group {
			ok = false
		}
	case group != "":
		name, ok = built.Engine.ResolveNameInGroup(req.ID, group)
	default:
		name, ok = built.Engine.ResolveName(req.ID)
	}
	if !ok {
		return ResolveNameResult{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg(fmt.Sprintf("no resource with id 0x%08x", uint32(req.ID)))
	}
	return ResolveNameResult{ID: req.ID, Name: name}, nil
}

func groupOfName(name string) string {
	name = strings.TrimPrefix(name, types.SystemPrefix)
	group, _, _ := strings.Cut(name, "/")
	return group
}
