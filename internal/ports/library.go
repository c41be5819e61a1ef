package ports

import "resmap/internal/types"

// LibraryDiscoveryPort lists the library project roots reachable from an
// application directory, breadth first, without duplicates.
type LibraryDiscoveryPort interface {
	FindLibraryProjects(appDir string) ([]string, error)
}

// LibraryPolicyPort decides how library tables are admitted into the
// resolution engine.
type LibraryPolicyPort interface {
	// UnknownResource is consulted when a library record has no application
	// record with the same qualified name.
	UnknownResource(identity string, name string) types.UnknownResourceAction
	Ignored(identity string) bool
}
