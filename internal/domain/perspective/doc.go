// Package perspective implements the registry of workbench perspectives.
//
// This package is pure domain code:
//   - Perspective describes a single view: menu, name, page object and distributions
//   - Registry is the ordered, read-only collection of perspectives
//   - The catalog is declared once as package variables and validated at init
//
// # Catalog
//
// Every catalog entry is an exported variable (Home, Projects, ProcessInstances, ...).
// Entries declared without distributions are present in all of them. The catalog order
// is the enumeration order used for parametrized test runs:
//
//	for _, p := range perspective.GetAllPerspectives(distribution.KieWB) {
//	    t.Run(p.ID(), func(t *testing.T) { ... })
//	}
//
// A malformed catalog (duplicate names, an entry without distributions) panics during
// package initialization instead of surfacing at query time.
//
// # Page Objects
//
// PageObject returns a reflect.Type for the page object in internal/domain/pageobject
// that models the perspective. PageObjectIs checks it against a static type:
//
//	if perspective.PageObjectIs[pageobject.Home](p) { ... }
//
// # Concurrency
//
// Nothing is mutated after initialization, so every method is safe for concurrent use.
// Query methods return fresh slices of Perspective values. Overwriting an element, or
// the whole slice, never affects the registry or later queries.
package perspective
