package adapters

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"resmap/internal/ports"
	"resmap/internal/types"
)

const maxStringReferenceDepth = 16

// StringValuesAdapter loads <string> resources from the default values
// directory and serves them by id through the resolver.
type StringValuesAdapter struct {
	resolver ports.ResourceResolverPort
	values   map[string]string
}

func NewStringValuesAdapter(resolver ports.ResourceResolverPort) *StringValuesAdapter {
	return &StringValuesAdapter{resolver: resolver, values: map[string]string{}}
}

type resourcesXML struct {
	Strings []stringXML `xml:"string"`
}

type stringXML struct {
	Name  string `xml:"name,attr"`
	Value string `xml:",chardata"`
}

// LoadStrings reads every xml file in resDir/values. System strings are
// stored under the platform prefix.
func (a *StringValuesAdapter) LoadStrings(resDir string, system bool) error {
	paths, err := filepath.Glob(filepath.Join(resDir, "values", "*.xml"))
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan values directory").
			WithCause(err)
	}
	sort.Strings(paths)
	ns := types.NamespaceApplication
	if system {
		ns = types.NamespaceSystem
	}
	loaded := 0
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeNotFound).
				WithMsg("failed to read values file: " + path).
				WithCause(err)
		}
		var resources resourcesXML
		if err := xml.Unmarshal(content, &resources); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("failed to parse values file: " + path).
				WithCause(err)
		}
		for _, entry := range resources.Strings {
			name := strings.TrimSpace(entry.Name)
			if name == "" {
				continue
			}
			a.values[types.QualifiedName(ns, types.GroupString, name)] = entry.Value
			loaded++
		}
	}
	log.Debug().Str("res_dir", resDir).Bool("system", system).Int("strings", loaded).Msg("string values loaded")
	return nil
}

// Value returns the string for id, following @string references.
func (a *StringValuesAdapter) Value(id int32) (string, bool) {
	name, ok := a.resolver.ResolveNameInGroup(id, types.GroupString)
	if !ok {
		return "", false
	}
	return a.lookup(name, 0)
}

// ValueByName accepts a reference such as "@string/app_name".
func (a *StringValuesAdapter) ValueByName(reference string) (string, bool) {
	id, ok := a.resolver.ResolveID(reference)
	if !ok {
		return "", false
	}
	return a.Value(id)
}

func (a *StringValuesAdapter) lookup(name string, depth int) (string, bool) {
	value, ok := a.values[name]
	if !ok {
		return "", false
	}
	if depth >= maxStringReferenceDepth {
		return value, true
	}
	if strings.HasPrefix(value, "@string/") || strings.HasPrefix(value, "@"+types.SystemPrefix+"string/") {
		return a.lookup(strings.TrimPrefix(value, "@"), depth+1)
	}
	return value, true
}

var _ ports.StringValuesPort = (*StringValuesAdapter)(nil)
