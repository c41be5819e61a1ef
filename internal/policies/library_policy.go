package policies

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/types"
)

// LibraryPolicy decides which library tables are loaded and what happens
// to library records that have no application counterpart.
type LibraryPolicy struct {
	Mode      types.LibraryMode
	exact     map[string]struct{}
	prefixes  []string
	ignoreAll bool
}

func NewLibraryPolicy(mode types.LibraryMode, ignore []string) (LibraryPolicy, error) {
	if mode == "" {
		mode = types.LibraryModeStrict
	}
	if mode != types.LibraryModeStrict && mode != types.LibraryModeLenient {
		return LibraryPolicy{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unknown library mode: %s", mode))
	}
	policy := LibraryPolicy{Mode: mode, exact: map[string]struct{}{}}
	for _, pattern := range ignore {
		name, kind := parseIdentityPattern(pattern)
		switch kind {
		case patternWildcard:
			policy.ignoreAll = true
		case patternPrefix:
			policy.prefixes = append(policy.prefixes, name)
		case patternExact:
			policy.exact[name] = struct{}{}
		default:
			return LibraryPolicy{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid library ignore pattern: %q", pattern))
		}
	}
	return policy, nil
}

// StrictLibraryPolicy rejects every unknown library resource and ignores
// no library.
func StrictLibraryPolicy() LibraryPolicy {
	return LibraryPolicy{Mode: types.LibraryModeStrict, exact: map[string]struct{}{}}
}

func (p LibraryPolicy) UnknownResource(identity string, name string) types.UnknownResourceAction {
	if p.Mode == types.LibraryModeLenient {
		return types.UnknownResourceSkip
	}
	return types.UnknownResourceReject
}

func (p LibraryPolicy) Ignored(identity string) bool {
	if p.ignoreAll {
		return true
	}
	if _, ok := p.exact[identity]; ok {
		return true
	}
	for _, prefix := range p.prefixes {
		if strings.HasPrefix(identity, prefix) {
			return true
		}
	}
	return false
}

type patternKind int

const (
	patternExact patternKind = iota
	patternPrefix
	patternWildcard
	patternInvalid
)

func parseIdentityPattern(value string) (string, patternKind) {
	pattern := strings.TrimSpace(value)
	if pattern == "" {
		return "", patternInvalid
	}
	if pattern == "*" {
		return "", patternWildcard
	}
	if strings.HasSuffix(pattern, "*") {
		prefix := strings.TrimSuffix(pattern, "*")
		if strings.Contains(prefix, "*") {
			return "", patternInvalid
		}
		return prefix, patternPrefix
	}
	if strings.Contains(pattern, "*") {
		return "", patternInvalid
	}
	return pattern, patternExact
}
