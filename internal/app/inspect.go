package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"resmap/internal/core"
	"resmap/internal/types"
)

// Inspect summarizes the merged index. With ReportDir set it reads
// reports written earlier instead of building the engine.
func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	if reportDir := strings.TrimSpace(req.ReportDir); reportDir != "" {
		report, err := s.ReportReader.ReadIndexReport(reportDir)
		if err != nil {
			return InspectResult{}, err
		}
		return InspectResult{
			Stats:  statsFromReport(report),
			Groups: summarizeGroups(report.Entries),
			Report: report,
		}, nil
	}

	built, err := s.Build(ctx, BuildRequest{ProjectPath: req.ProjectPath})
	if err != nil {
		return InspectResult{}, err
	}
	report := built.Engine.Report()
	if outputDir := strings.TrimSpace(req.OutputDir); outputDir != "" {
		if err := s.NewReport(outputDir).WriteIndexReport(report); err != nil {
			return InspectResult{}, err
		}
	}
	return InspectResult{
		Stats:  built.Engine.Stats(),
		Groups: summarizeGroups(report.Entries),
		Report: report,
	}, nil
}

type groupKey struct {
	name      string
	namespace types.Namespace
}

func summarizeGroups(entries []types.IndexEntry) []InspectGroupSummary {
	counts := map[groupKey]int{}
	for _, entry := range entries {
		counts[groupKey{name: entry.Group, namespace: entry.Namespace}]++
	}
	var summaries []InspectGroupSummary
	for _, key := range sortedKeys(counts) {
		summaries = append(summaries, InspectGroupSummary{
			Name:      key.name,
			Namespace: key.namespace,
			Count:     counts[key],
		})
	}
	return summaries
}

func statsFromReport(report types.IndexReport) core.Stats {
	stats := core.Stats{Libraries: len(report.Libraries)}
	for _, entry := range report.Entries {
		switch entry.Namespace {
		case types.NamespaceApplication:
			stats.Application++
		case types.NamespaceSystem:
			stats.System++
		}
	}
	for _, library := range report.Libraries {
		stats.Rebased += library.Rebased
		if library.Pending {
			stats.Pending++
		}
	}
	return stats
}

func sortedKeys[K comparable, V any](input map[K]V) []K {
	keys := make([]K, 0, len(input))
	for key := range input {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i]) < fmt.Sprint(keys[j])
	})
	return keys
}
