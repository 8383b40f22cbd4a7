package perspective

import "github.com/kiewb/perspectives/internal/domain/distribution"

// Provider defines read-only access to an ordered set of perspectives.
// Results are copies owned by the caller.
// It allows callers to be exercised against a registry other than the catalog.
type Provider interface {
	// List returns all perspectives in catalog order.
	List() []Perspective

	// ForDistribution returns the perspectives present in a distribution.
	// The result may be empty.
	ForDistribution(d distribution.Distribution) []Perspective

	// ForMenu returns the perspectives under a top level menu.
	ForMenu(menu string) []Perspective

	// GetByName returns a perspective by display name.
	// Returns ErrNotFound if no perspective matches.
	GetByName(name string) (Perspective, error)

	// GetByID returns a perspective by its test case ID.
	// Returns ErrNotFound if no perspective matches.
	GetByID(id string) (Perspective, error)

	// Menus returns the distinct menus in order of first appearance.
	Menus() []string
}

// Compile-time check that Registry implements Provider.
var _ Provider = (*Registry)(nil)
