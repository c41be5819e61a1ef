package adapters

import (
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"resmap/internal/ports"
	"resmap/internal/types"
)

// TableFileAdapter reads generated identifier tables stored as yaml:
//
//	namespace: application
//	package: com.example.app
//	groups:
//	  - name: string
//	    fields:
//	      - {name: app_name, id: 0x7f040000}
//
// Groups and fields are sequences so their order and any duplicates
// survive decoding.
type TableFileAdapter struct{}

func NewTableFileAdapter() TableFileAdapter {
	return TableFileAdapter{}
}

func (a TableFileAdapter) LoadTable(path string) (types.IdentifierTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.IdentifierTable{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("identifier table not found: " + path).
			WithCause(err)
	}
	var table types.IdentifierTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return types.IdentifierTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse identifier table: " + path).
			WithCause(err)
	}
	if table.Namespace == "" {
		return types.IdentifierTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("identifier table missing namespace: " + path)
	}
	if !table.Namespace.Valid() {
		return types.IdentifierTable{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("identifier table has invalid namespace '" + string(table.Namespace) + "': " + path)
	}
	log.Debug().
		Str("path", path).
		Str("namespace", string(table.Namespace)).
		Int("groups", len(table.Groups)).
		Msg("identifier table loaded")
	return table, nil
}

var _ ports.TableSourcePort = TableFileAdapter{}
