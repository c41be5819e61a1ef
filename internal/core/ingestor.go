package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"resmap/internal/types"
)

// Ingest normalizes one raw identifier table into qualified records. It
// only inspects the table it is given; duplicates across tables are the
// engine's concern.
func Ingest(ctx context.Context, groups []types.TableGroup, ns types.Namespace, identity string) (types.IngestedTable, error) {
	if !ns.Valid() {
		return types.IngestedTable{}, configurationError(ErrUnknownNamespace, fmt.Sprintf("%q", ns))
	}
	identity = strings.TrimSpace(identity)
	if ns != types.NamespaceLibrary {
		identity = ""
	} else if identity == "" {
		return types.IngestedTable{}, configurationError(ErrMissingLibraryIdentity, "")
	}

	table := types.IngestedTable{Namespace: ns, Identity: identity}
	label := tableLabel(ns, identity)
	seen := map[string]int32{}
	skipped := 0
	for _, group := range groups {
		groupName := strings.TrimSpace(group.Name)
		if groupName == "" {
			return types.IngestedTable{}, configurationError(ErrMalformedTable, fmt.Sprintf("%s table has a group without a name", label))
		}
		if groupName == types.GroupStyleable {
			skipped += len(group.Fields)
			continue
		}
		for _, field := range group.Fields {
			fieldName := strings.TrimSpace(field.Name)
			if fieldName == "" {
				return types.IngestedTable{}, configurationError(ErrMalformedTable, fmt.Sprintf("%s table has an unnamed field in group %s", label, groupName))
			}
			name := types.QualifiedName(ns, groupName, fieldName)
			if first, ok := seen[name]; ok {
				return types.IngestedTable{}, &DuplicateIdentifierError{
					Table:    label,
					Name:     name,
					FirstID:  first,
					SecondID: field.ID,
				}
			}
			seen[name] = field.ID
			table.Records = append(table.Records, types.IdentifierRecord{
				Group: groupName,
				Field: fieldName,
				ID:    field.ID,
				Name:  name,
			})
		}
	}

	log.Ctx(ctx).Debug().
		Str("table", label).
		Int("records", len(table.Records)).
		Int("styleable_skipped", skipped).
		Msg("identifier table ingested")
	return table, nil
}

func IngestTable(ctx context.Context, table types.IdentifierTable) (types.IngestedTable, error) {
	return Ingest(ctx, table.Groups, table.Namespace, table.Identity)
}
