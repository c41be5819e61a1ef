package app

import (
	"resmap/internal/adapters"
	"resmap/internal/ports"
)

type Service struct {
	ProjectLoader ports.ProjectSpecPort
	Tables        ports.TableSourcePort
	Manifest      ports.ManifestPort
	Discovery     ports.LibraryDiscoveryPort
	ReportReader  ports.IndexReportReaderPort
	NewReport     func(dir string) ports.IndexReportPort
	NewStrings    func(resolver ports.ResourceResolverPort) ports.StringValuesPort
	// TableWorkers bounds parallel library table reads. Zero means no limit.
	TableWorkers int
}

func NewService() Service {
	return Service{
		ProjectLoader: adapters.NewProjectFileAdapter(),
		Tables:        adapters.NewTableFileAdapter(),
		Manifest:      adapters.NewManifestAdapter(),
		Discovery:     adapters.NewLibraryDiscoveryAdapter(),
		ReportReader:  adapters.NewReportReaderAdapter(),
		NewReport: func(dir string) ports.IndexReportPort {
			return adapters.NewReportFileAdapter(dir)
		},
		NewStrings: func(resolver ports.ResourceResolverPort) ports.StringValuesPort {
			return adapters.NewStringValuesAdapter(resolver)
		},
		TableWorkers: 4,
	}
}
