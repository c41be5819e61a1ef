package adapters

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/ports"
	"resmap/internal/types"
)

type ReportReaderAdapter struct{}

func NewReportReaderAdapter() ReportReaderAdapter {
	return ReportReaderAdapter{}
}

// ReadIndexReport reads the reports written by ReportFileAdapter from dir.
// libraries.report is optional.
func (a ReportReaderAdapter) ReadIndexReport(dir string) (types.IndexReport, error) {
	content, err := os.ReadFile(filepath.Join(dir, IndexReportFile))
	if err != nil {
		return types.IndexReport{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("index.report not found").
			WithCause(err)
	}
	report := types.IndexReport{}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return types.IndexReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid index.report format")
		}
		id, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 0, 32)
		if err != nil {
			return types.IndexReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid index.report id: " + parts[0]).
				WithCause(err)
		}
		name := strings.TrimSpace(parts[1])
		report.Entries = append(report.Entries, types.IndexEntry{
			ID:        int32(uint32(id)),
			Name:      name,
			Group:     groupOf(name),
			Namespace: types.Namespace(strings.TrimSpace(parts[2])),
		})
	}

	content, err = os.ReadFile(filepath.Join(dir, LibrariesReportFile))
	if err != nil {
		if os.IsNotExist(err) {
			return report, nil
		}
		return types.IndexReport{}, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read libraries.report").
			WithCause(err)
	}
	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 4 {
			return types.IndexReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid libraries.report format")
		}
		rebased, err1 := strconv.Atoi(strings.TrimSpace(parts[1]))
		skipped, err2 := strconv.Atoi(strings.TrimSpace(parts[2]))
		if err1 != nil || err2 != nil {
			return types.IndexReport{}, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("invalid libraries.report counts")
		}
		status := strings.TrimSpace(parts[3])
		report.Libraries = append(report.Libraries, types.LibrarySummary{
			Identity: strings.TrimSpace(parts[0]),
			Rebased:  rebased,
			Skipped:  skipped,
			Failed:   status == "failed",
			Pending:  status == "pending",
		})
	}
	return report, nil
}

func groupOf(name string) string {
	name = strings.TrimPrefix(name, types.SystemPrefix)
	group, _, found := strings.Cut(name, "/")
	if !found {
		return ""
	}
	return group
}

var _ ports.IndexReportReaderPort = ReportReaderAdapter{}
