package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrUnknownReport is matched by lookups of unregistered report names.
	ErrUnknownReport = errors.New("unknown report")
	// ErrDuplicateReport is returned when two definitions share a name.
	ErrDuplicateReport = errors.New("duplicate report name")
)

// UnknownReportError carries the requested name and the valid choices.
type UnknownReportError struct {
	Name  string
	Valid []string
}

func (e *UnknownReportError) Error() string {
	return fmt.Sprintf("unknown report %q (available: %s)", e.Name, strings.Join(e.Valid, ", "))
}

func (e *UnknownReportError) Unwrap() error { return ErrUnknownReport }

// Constructor builds a fresh report instance.
type Constructor func() Report

// Definition binds a display name to a report constructor.
type Definition struct {
	Name string
	New  Constructor
}

// Builtin lists the report kinds shipped with logreport.
func Builtin() []Definition {
	return []Definition{
		{Name: handlersName, New: func() Report { return NewHandlersReport() }},
		{Name: levelsName, New: func() Report { return NewLevelsReport() }},
	}
}

// Catalog maps report names to constructors. It is read-only after
// construction.
type Catalog struct {
	ctors map[string]Constructor
	names []string
}

// NewCatalog registers every definition with a non-empty name.
// A name claimed twice is rejected.
func NewCatalog(defs ...Definition) (*Catalog, error) {
	c := &Catalog{ctors: make(map[string]Constructor, len(defs))}
	for _, d := range defs {
		if d.Name == "" || d.New == nil {
			continue
		}
		if _, exists := c.ctors[d.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateReport, d.Name)
		}
		c.ctors[d.Name] = d.New
		c.names = append(c.names, d.Name)
	}
	sort.Strings(c.names)
	return c, nil
}

// DefaultCatalog returns a catalog of the built-in reports.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(Builtin()...)
	if err != nil {
		panic(err)
	}
	return c
}

// Get constructs the report registered under name.
func (c *Catalog) Get(name string) (Report, bool) {
	ctor, ok := c.ctors[name]
	if !ok {
		return nil, false
	}
	return ctor(), true
}

// Lookup is Get with an *UnknownReportError for missing names.
func (c *Catalog) Lookup(name string) (Report, error) {
	r, ok := c.Get(name)
	if !ok {
		return nil, &UnknownReportError{Name: name, Valid: c.Names()}
	}
	return r, nil
}

// Has reports whether name is registered.
func (c *Catalog) Has(name string) bool {
	_, ok := c.ctors[name]
	return ok
}

// Names returns the registered names, sorted.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}
