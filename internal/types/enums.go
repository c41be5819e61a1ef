package types

type Namespace string

const (
	NamespaceApplication Namespace = "application"
	NamespaceSystem      Namespace = "system"
	NamespaceLibrary     Namespace = "library"
)

func (n Namespace) Valid() bool {
	switch n {
	case NamespaceApplication, NamespaceSystem, NamespaceLibrary:
		return true
	default:
		return false
	}
}

// LibraryMode selects how a library record without an application
// counterpart is treated.
type LibraryMode string

const (
	LibraryModeStrict  LibraryMode = "strict"
	LibraryModeLenient LibraryMode = "lenient"
)

type UnknownResourceAction int

const (
	UnknownResourceReject UnknownResourceAction = iota
	UnknownResourceSkip
)
