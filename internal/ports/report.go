package ports

import "resmap/internal/types"

type IndexReportPort interface {
	WriteIndexReport(report types.IndexReport) error
}

type IndexReportReaderPort interface {
	ReadIndexReport(dir string) (types.IndexReport, error)
}
