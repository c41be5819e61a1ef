package ports

type ManifestPort interface {
	PackageName(manifestPath string) (string, error)
}
