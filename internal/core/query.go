package core

import (
	"strings"

	"resmap/internal/ports"
	"resmap/internal/types"
)

// NullReference resolves to id 0.
const NullReference = "@null"

// ResolveID maps a resource reference such as "@string/app_name",
// "@+id/button" or "android:layout/main" to its id. References that mention
// the platform prefix are looked up in the system namespace.
func (e *Engine) ResolveID(reference string) (int32, bool) {
	ns := types.NamespaceApplication
	if types.IsSystemName(reference) {
		ns = types.NamespaceSystem
	}
	return e.ResolveIDIn(reference, ns)
}

// ResolveIDIn is ResolveID with the namespace pinned by the caller. Library
// references resolve in the application namespace, which library tables are
// rebased onto.
func (e *Engine) ResolveIDIn(reference string, ns types.Namespace) (int32, bool) {
	if reference == NullReference {
		return 0, true
	}
	name := NormalizeReference(reference)
	if name == "" {
		return 0, false
	}
	var id int32
	var ok bool
	if ns == types.NamespaceSystem {
		id, ok = e.systemNames[name]
	} else {
		id, ok = e.appNames[name]
	}
	return id, ok
}

func (e *Engine) ResolveName(id int32) (string, bool) {
	entry, ok := e.idToName[id]
	return entry.name, ok
}

// ResolveLibraryName translates a library-local id to the application id
// and names it. An empty identity is a plain ResolveName.
func (e *Engine) ResolveLibraryName(identity string, id int32) (string, bool) {
	if identity == "" {
		return e.ResolveName(id)
	}
	appID, ok := e.rebase[rebaseKey{library: identity, id: id}]
	if !ok {
		return "", false
	}
	return e.ResolveName(appID)
}

// ResolveNameInGroup names id only when it belongs to group.
func (e *Engine) ResolveNameInGroup(id int32, group string) (string, bool) {
	entry, ok := e.idToName[id]
	if !ok || entry.group != group {
		return "", false
	}
	return entry.name, true
}

// NormalizeReference strips resource reference syntax down to the
// qualified name: "@+id/x" and "@+android:id/x" lose "@+", any other
// leading "@" is dropped.
func NormalizeReference(reference string) string {
	switch {
	case strings.HasPrefix(reference, "@+id"), strings.HasPrefix(reference, "@+"+types.SystemPrefix+"id"):
		return reference[2:]
	case strings.HasPrefix(reference, "@"):
		return reference[1:]
	default:
		return reference
	}
}

var _ ports.ResourceResolverPort = (*Engine)(nil)
