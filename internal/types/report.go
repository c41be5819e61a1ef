package types

type IndexEntry struct {
	ID        int32
	Name      string
	Group     string
	Namespace Namespace
}

type LibrarySummary struct {
	Identity string
	Rebased  int
	Skipped  int
	Failed   bool
	Pending  bool
}

// Status is "pending", "failed" or "ok".
func (s LibrarySummary) Status() string {
	switch {
	case s.Pending:
		return "pending"
	case s.Failed:
		return "failed"
	default:
		return "ok"
	}
}

type IndexReport struct {
	Entries   []IndexEntry
	Libraries []LibrarySummary
}
