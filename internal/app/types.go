package app

import (
	"resmap/internal/core"
	"resmap/internal/types"
)

type BuildRequest struct {
	ProjectPath string
}

type BuildResult struct {
	Project   types.ProjectSpec
	Package   string
	Engine    *core.Engine
	Libraries []types.LibraryProject
}

type ValidateRequest struct {
	ProjectPath string
}

type ValidateResult struct {
	Package   string
	Stats     core.Stats
	Libraries []types.LibrarySummary
}

type ResolveIDRequest struct {
	ProjectPath string
	Reference   string
	// Namespace pins the lookup; empty infers it from the reference.
	Namespace types.Namespace
}

type ResolveIDResult struct {
	Reference string
	ID        int32
}

type ResolveNameRequest struct {
	ProjectPath string
	ID          int32
	// Library interprets ID as a library-local id of that library.
	Library string
	// Group restricts the answer to one resource group.
	Group string
}

type ResolveNameResult struct {
	ID   int32
	Name string
}

type InspectRequest struct {
	ProjectPath string
	// OutputDir receives index.report and libraries.report when set.
	OutputDir string
	// ReportDir reads previously written reports instead of building.
	ReportDir string
}

type InspectResult struct {
	Stats  core.Stats
	Groups []InspectGroupSummary
	Report types.IndexReport
}

type InspectGroupSummary struct {
	Name      string
	Namespace types.Namespace
	Count     int
}

type StringRequest struct {
	ProjectPath string
	Reference   string
	ID          int32
}

type StringResult struct {
	ID    int32
	Name  string
	Value string
}

type LibrariesRequest struct {
	ProjectPath string
}

type LibrariesResult struct {
	Libraries []types.LibraryProject
}
