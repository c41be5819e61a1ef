package ports

import "resmap/internal/types"

type ProjectSpecPort interface {
	LoadProject(path string) (types.ProjectSpec, error)
}
