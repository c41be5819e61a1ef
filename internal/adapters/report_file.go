package adapters

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/ports"
	"resmap/internal/types"
)

const (
	IndexReportFile     = "index.report"
	LibrariesReportFile = "libraries.report"
)

type ReportFileAdapter struct {
	Dir string
}

func NewReportFileAdapter(dir string) ReportFileAdapter {
	return ReportFileAdapter{Dir: dir}
}

// WriteIndexReport writes index.report as "id,name,namespace" lines ordered
// by id, and libraries.report as "identity,rebased,skipped,status" lines in
// registration order.
func (a ReportFileAdapter) WriteIndexReport(report types.IndexReport) error {
	path, err := a.ensurePath(IndexReportFile)
	if err != nil {
		return err
	}
	ordered := append([]types.IndexEntry(nil), report.Entries...)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].ID < ordered[j].ID
	})
	var lines []string
	for _, entry := range ordered {
		lines = append(lines, fmt.Sprintf("0x%08x,%s,%s", uint32(entry.ID), entry.Name, entry.Namespace))
	}
	if err := writeLines(path, lines); err != nil {
		return err
	}

	path, err = a.ensurePath(LibrariesReportFile)
	if err != nil {
		return err
	}
	lines = lines[:0]
	for _, library := range report.Libraries {
		lines = append(lines, fmt.Sprintf("%s,%d,%d,%s", library.Identity, library.Rebased, library.Skipped, library.Status()))
	}
	return writeLines(path, lines)
}

func (a ReportFileAdapter) ensurePath(filename string) (string, error) {
	if a.Dir == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("output directory is empty")
	}
	if err := os.MkdirAll(a.Dir, 0755); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to create output directory").
			WithCause(err)
	}
	return filepath.Join(a.Dir, filename), nil
}

func writeLines(path string, lines []string) error {
	content := strings.Join(lines, "\n")
	if content != "" {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write " + filepath.Base(path)).
			WithCause(err)
	}
	return nil
}

var _ ports.IndexReportPort = ReportFileAdapter{}
