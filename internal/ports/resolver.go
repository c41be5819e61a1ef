package ports

import "resmap/internal/types"

// ResourceResolverPort is the query surface offered to resource value
// loaders. A miss is reported through the boolean, never as an error.
type ResourceResolverPort interface {
	ResolveID(reference string) (int32, bool)
	ResolveIDIn(reference string, ns types.Namespace) (int32, bool)
	ResolveName(id int32) (string, bool)
	ResolveLibraryName(identity string, id int32) (string, bool)
	ResolveNameInGroup(id int32, group string) (string, bool)
}
