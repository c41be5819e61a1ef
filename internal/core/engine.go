package core

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"

	"resmap/internal/policies"
	"resmap/internal/ports"
	"resmap/internal/types"
)

type State int

const (
	StateEmpty State = iota
	// StateApplicationPending means something was registered but the
	// application table has not arrived yet.
	StateApplicationPending
	StateApplicationResolved
	StateLibraryDrain
	StateStable
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateApplicationPending:
		return "application-pending"
	case StateApplicationResolved:
		return "application-resolved"
	case StateLibraryDrain:
		return "library-drain"
	case StateStable:
		return "stable"
	default:
		return "unknown"
	}
}

type indexEntry struct {
	name      string
	group     string
	namespace types.Namespace
}

type rebaseKey struct {
	library string
	id      int32
}

type pendingLibrary struct {
	identity string
	records  []types.IdentifierRecord
}

type libraryStatus struct {
	rebased int
	skipped int
	failed  bool
	pending bool
}

// Engine owns the merged identifier index of one test project. It is built
// by a single goroutine; once every table is registered it is read only and
// safe for concurrent queries.
type Engine struct {
	policy ports.LibraryPolicyPort
	state  State

	applicationRegistered bool
	appNames              map[string]int32
	systemNames           map[string]int32
	systemIDs             []int32
	idToName              map[int32]indexEntry

	rebase       map[rebaseKey]int32
	libraries    map[string]*libraryStatus
	libraryOrder []string
	pending      []pendingLibrary
}

type Stats struct {
	Application int
	System      int
	Libraries   int
	Rebased     int
	Pending     int
}

func NewEngine(policy ports.LibraryPolicyPort) *Engine {
	if policy == nil {
		policy = policies.StrictLibraryPolicy()
	}
	return &Engine{
		policy:      policy,
		appNames:    map[string]int32{},
		systemNames: map[string]int32{},
		idToName:    map[int32]indexEntry{},
		rebase:      map[rebaseKey]int32{},
		libraries:   map[string]*libraryStatus{},
	}
}

func (e *Engine) State() State {
	return e.state
}

// Register dispatches an ingested table to the matching Register* call.
func (e *Engine) Register(ctx context.Context, table types.IngestedTable) error {
	switch table.Namespace {
	case types.NamespaceApplication:
		return e.RegisterApplication(ctx, table.Records)
	case types.NamespaceSystem:
		return e.RegisterSystem(ctx, table.Records)
	case types.NamespaceLibrary:
		return e.RegisterLibrary(ctx, table.Identity, table.Records)
	default:
		return configurationError(ErrUnknownNamespace, string(table.Namespace))
	}
}

// RegisterApplication merges the application table and then drains every
// library table queued before it. A collision aborts the merge; records
// merged before it stay visible.
func (e *Engine) RegisterApplication(ctx context.Context, records []types.IdentifierRecord) error {
	if e.applicationRegistered {
		return configurationError(ErrMultipleApplicationTables, "")
	}
	e.applicationRegistered = true
	for _, record := range records {
		record = normalizeRecord(record, types.NamespaceApplication)
		if record.Group == types.GroupStyleable {
			continue
		}
		if existing, ok := e.appNames[record.Name]; ok && existing != record.ID {
			return &DuplicateIdentifierError{
				Table:    string(types.NamespaceApplication),
				Name:     record.Name,
				FirstID:  existing,
				SecondID: record.ID,
			}
		}
		e.appNames[record.Name] = record.ID
		if err := e.index(record, types.NamespaceApplication); err != nil {
			return err
		}
	}
	e.state = StateApplicationResolved
	log.Ctx(ctx).Debug().Int("records", len(e.appNames)).Int("queued_libraries", len(e.pending)).Msg("application table resolved")
	return e.drain(ctx)
}

// RegisterSystem installs the platform table. A later call replaces the
// earlier table instead of merging with it.
func (e *Engine) RegisterSystem(ctx context.Context, records []types.IdentifierRecord) error {
	if len(e.systemNames) > 0 {
		log.Ctx(ctx).Debug().Int("records", len(e.systemNames)).Msg("replacing system table")
	}
	e.clearSystem()
	for _, record := range records {
		record = normalizeRecord(record, types.NamespaceSystem)
		if record.Group == types.GroupStyleable {
			continue
		}
		e.systemNames[record.Name] = record.ID
		e.systemIDs = append(e.systemIDs, record.ID)
		if err := e.index(record, types.NamespaceSystem); err != nil {
			return err
		}
	}
	if e.state == StateEmpty {
		e.state = StateApplicationPending
	}
	log.Ctx(ctx).Debug().Int("records", len(e.systemNames)).Msg("system table registered")
	return nil
}

// RegisterLibrary rebases a library table onto the application ids. Before
// the application table is known the library is queued and replayed later.
func (e *Engine) RegisterLibrary(ctx context.Context, identity string, records []types.IdentifierRecord) error {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return configurationError(ErrMissingLibraryIdentity, "")
	}
	if _, ok := e.libraries[identity]; ok {
		return configurationError(ErrDuplicateLibraryIdentity, identity)
	}
	status := &libraryStatus{}
	e.libraries[identity] = status
	e.libraryOrder = append(e.libraryOrder, identity)

	if e.state < StateApplicationResolved {
		status.pending = true
		e.pending = append(e.pending, pendingLibrary{identity: identity, records: records})
		if e.state == StateEmpty {
			e.state = StateApplicationPending
		}
		log.Ctx(ctx).Debug().Str("library", identity).Msg("library table queued until application table is registered")
		return nil
	}
	return e.rebaseLibrary(ctx, identity, records)
}

func (e *Engine) drain(ctx context.Context) error {
	if len(e.pending) == 0 {
		e.state = StateStable
		return nil
	}
	e.state = StateLibraryDrain
	var errs []error
	for len(e.pending) > 0 {
		next := e.pending[0]
		e.pending = e.pending[1:]
		e.libraries[next.identity].pending = false
		if err := e.rebaseLibrary(ctx, next.identity, next.records); err != nil {
			errs = append(errs, err)
		}
	}
	e.pending = nil
	e.state = StateStable
	return errors.Join(errs...)
}

func (e *Engine) rebaseLibrary(ctx context.Context, identity string, records []types.IdentifierRecord) error {
	status := e.libraries[identity]
	for _, record := range records {
		record = normalizeRecord(record, types.NamespaceLibrary)
		if record.Group == types.GroupStyleable {
			continue
		}
		appID, ok := e.appNames[record.Name]
		if !ok {
			if e.policy.UnknownResource(identity, record.Name) == types.UnknownResourceSkip {
				status.skipped++
				log.Ctx(ctx).Debug().Str("library", identity).Str("resource", record.Name).Msg("unknown library resource dropped")
				continue
			}
			status.failed = true
			return &UnknownLibraryResourceError{Library: identity, Name: record.Name}
		}
		key := rebaseKey{library: identity, id: record.ID}
		if existing, ok := e.rebase[key]; ok && existing != appID {
			status.failed = true
			return &IdentifierCollisionError{
				ID:           record.ID,
				ExistingName: e.idToName[existing].name,
				NewName:      record.Name,
			}
		}
		e.rebase[key] = appID
		status.rebased++
	}
	log.Ctx(ctx).Debug().
		Str("library", identity).
		Int("rebased", status.rebased).
		Int("skipped", status.skipped).
		Msg("library table rebased")
	return nil
}

func (e *Engine) index(record types.IdentifierRecord, ns types.Namespace) error {
	if existing, ok := e.idToName[record.ID]; ok {
		if existing.name == record.Name {
			return nil
		}
		return &IdentifierCollisionError{
			ID:           record.ID,
			ExistingName: existing.name,
			NewName:      record.Name,
		}
	}
	e.idToName[record.ID] = indexEntry{name: record.Name, group: record.Group, namespace: ns}
	return nil
}

func (e *Engine) clearSystem() {
	for _, id := range e.systemIDs {
		if entry, ok := e.idToName[id]; ok && entry.namespace == types.NamespaceSystem {
			delete(e.idToName, id)
		}
	}
	e.systemIDs = nil
	e.systemNames = map[string]int32{}
}

func normalizeRecord(record types.IdentifierRecord, ns types.Namespace) types.IdentifierRecord {
	if record.Name == "" {
		record.Name = types.QualifiedName(ns, record.Group, record.Field)
	}
	return record
}

// Pending lists library identities still waiting for the application table.
func (e *Engine) Pending() []string {
	out := make([]string, 0, len(e.pending))
	for _, entry := range e.pending {
		out = append(out, entry.identity)
	}
	return out
}

func (e *Engine) Stats() Stats {
	return Stats{
		Application: len(e.appNames),
		System:      len(e.systemNames),
		Libraries:   len(e.libraryOrder),
		Rebased:     len(e.rebase),
		Pending:     len(e.pending),
	}
}

// Entries returns the id index ordered by id.
func (e *Engine) Entries() []types.IndexEntry {
	entries := make([]types.IndexEntry, 0, len(e.idToName))
	for id, entry := range e.idToName {
		entries = append(entries, types.IndexEntry{
			ID:        id,
			Name:      entry.name,
			Group:     entry.group,
			Namespace: entry.namespace,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries
}

// Libraries summarizes library tables in registration order.
func (e *Engine) Libraries() []types.LibrarySummary {
	out := make([]types.LibrarySummary, 0, len(e.libraryOrder))
	for _, identity := range e.libraryOrder {
		status := e.libraries[identity]
		out = append(out, types.LibrarySummary{
			Identity: identity,
			Rebased:  status.rebased,
			Skipped:  status.skipped,
			Failed:   status.failed,
			Pending:  status.pending,
		})
	}
	return out
}

func (e *Engine) Report() types.IndexReport {
	return types.IndexReport{
		Entries:   e.Entries(),
		Libraries: e.Libraries(),
	}
}
