package types

import "strings"

// SystemPrefix marks names that belong to the platform namespace.
const SystemPrefix = "android:"

// Well-known resource groups. Tables may carry others.
const (
	GroupArray     = "array"
	GroupAttr      = "attr"
	GroupBool      = "bool"
	GroupColor     = "color"
	GroupDimension = "dimen"
	GroupDrawable  = "drawable"
	GroupID        = "id"
	GroupInteger   = "integer"
	GroupLayout    = "layout"
	GroupMenu      = "menu"
	GroupPlurals   = "plurals"
	GroupRaw       = "raw"
	GroupString    = "string"
	GroupStyle     = "style"
	GroupXML       = "xml"

	// GroupStyleable holds attribute arrays and is never indexed.
	GroupStyleable = "styleable"
)

type TableField struct {
	Name string `yaml:"name"`
	ID   int32  `yaml:"id"`
}

type TableGroup struct {
	Name   string       `yaml:"name"`
	Fields []TableField `yaml:"fields"`
}

// IdentifierTable is a generated identifier table as handed over by a
// collaborator, before any normalization.
type IdentifierTable struct {
	Namespace Namespace    `yaml:"namespace"`
	Identity  string       `yaml:"identity,omitempty"`
	Package   string       `yaml:"package,omitempty"`
	Groups    []TableGroup `yaml:"groups"`
}

type IdentifierRecord struct {
	Group string
	Field string
	ID    int32
	// Name is the qualified name, see QualifiedName.
	Name string
}

type IngestedTable struct {
	Namespace Namespace
	Identity  string
	Records   []IdentifierRecord
}

// QualifiedName joins group and field, adding the platform prefix for
// system resources.
func QualifiedName(ns Namespace, group string, field string) string {
	name := group + "/" + field
	if ns == NamespaceSystem {
		return SystemPrefix + name
	}
	return name
}

func IsSystemName(name string) bool {
	return strings.Contains(name, SystemPrefix)
}
