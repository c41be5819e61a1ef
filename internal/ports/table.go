package ports

import "resmap/internal/types"

type TableSourcePort interface {
	LoadTable(path string) (types.IdentifierTable, error)
}
