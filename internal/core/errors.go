package core

import (
	"errors"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"resmap/internal/types"
)

var (
	ErrMultipleApplicationTables = errors.New("can't have multiple application tables")
	ErrMissingLibraryIdentity    = errors.New("library table identity is required")
	ErrDuplicateLibraryIdentity  = errors.New("library table identity already registered")
	ErrMalformedTable            = errors.New("malformed identifier table")
	ErrUnknownNamespace          = errors.New("unknown namespace")
)

// ConfigurationError reports a programmer error in how tables were handed
// to the engine. Err is one of the sentinel errors above.
type ConfigurationError struct {
	Err    error
	Detail string
}

func (e *ConfigurationError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s: %s", e.Err, e.Detail)
}

func (e *ConfigurationError) Unwrap() []error {
	return []error{e.Err, errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(e.Error())}
}

// DuplicateIdentifierError reports a qualified name declared twice inside a
// single ingested table.
type DuplicateIdentifierError struct {
	Table    string
	Name     string
	FirstID  int32
	SecondID int32
}

func (e *DuplicateIdentifierError) Error() string {
	return fmt.Sprintf("%s is declared twice in %s table (ids %d and %d)", e.Name, e.Table, e.FirstID, e.SecondID)
}

func (e *DuplicateIdentifierError) Unwrap() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeAlreadyExists).
		WithMsg(e.Error())
}

// IdentifierCollisionError reports two distinct qualified names sharing one
// id across the application and system namespaces.
type IdentifierCollisionError struct {
	ID           int32
	ExistingName string
	NewName      string
}

func (e *IdentifierCollisionError) Error() string {
	return fmt.Sprintf("%d is already defined with name: %s can't also call it: %s", e.ID, e.ExistingName, e.NewName)
}

func (e *IdentifierCollisionError) Unwrap() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(e.Error())
}

// UnknownLibraryResourceError reports a library record with no application
// record of the same qualified name.
type UnknownLibraryResourceError struct {
	Library string
	Name    string
}

func (e *UnknownLibraryResourceError) Error() string {
	return fmt.Sprintf("library %s declares unknown resource %s", e.Library, e.Name)
}

func (e *UnknownLibraryResourceError) Unwrap() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(e.Error())
}

func configurationError(err error, detail string) error {
	return &ConfigurationError{Err: err, Detail: detail}
}

func tableLabel(ns types.Namespace, identity string) string {
	if ns == types.NamespaceLibrary && identity != "" {
		return fmt.Sprintf("%s %s", ns, identity)
	}
	return string(ns)
}
