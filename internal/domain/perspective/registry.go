package perspective

import (
	"errors"
	"fmt"

	"github.com/kiewb/perspectives/internal/domain/distribution"
)

// Registry errors
var (
	ErrNotFound        = errors.New("perspective not found")
	ErrEmptyName       = errors.New("perspective name cannot be empty")
	ErrNoPageObject    = errors.New("perspective must have a page object")
	ErrNoDistributions = errors.New("perspective must be present in at least one distribution")
	ErrDuplicateName   = errors.New("duplicate perspective name")
)

// Registry is an ordered, read-only collection of perspectives.
type Registry struct {
	perspectives []Perspective
}

// NewRegistry creates a registry holding copies of ps in the given order.
func NewRegistry(ps ...Perspective) (*Registry, error) {
	names := make(map[string]bool, len(ps))
	ids := make(map[string]bool, len(ps))

	for i, p := range ps {
		if p.name == "" {
			return nil, fmt.Errorf("entry %d: %w", i, ErrEmptyName)
		}
		if p.pageObject == nil {
			return nil, fmt.Errorf("%q: %w", p.name, ErrNoPageObject)
		}
		if p.distributions.Len() == 0 {
			return nil, fmt.Errorf("%q: %w", p.name, ErrNoDistributions)
		}
		// Distinct names can still collide once spaces become underscores.
		if names[p.name] || ids[p.ID()] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateName, p.name)
		}
		names[p.name] = true
		ids[p.ID()] = true
	}

	perspectives := make([]Perspective, len(ps))
	copy(perspectives, ps)
	return &Registry{perspectives: perspectives}, nil
}

// mustRegistry is NewRegistry for statically declared catalogs.
func mustRegistry(ps ...Perspective) *Registry {
	r, err := NewRegistry(ps...)
	if err != nil {
		panic(fmt.Sprintf("invalid perspective catalog: %v", err))
	}
	return r
}

// Len returns the number of perspectives.
func (r *Registry) Len() int {
	return len(r.perspectives)
}

// List returns copies of all perspectives in catalog order.
func (r *Registry) List() []Perspective {
	out := make([]Perspective, len(r.perspectives))
	copy(out, r.perspectives)
	return out
}

// ForDistribution returns the perspectives present in d, in catalog order.
func (r *Registry) ForDistribution(d distribution.Distribution) []Perspective {
	result := make([]Perspective, 0)
	for _, p := range r.perspectives {
		if p.AvailableIn(d) {
			result = append(result, p)
		}
	}
	return result
}

// ForMenu returns the perspectives under menu, in catalog order.
func (r *Registry) ForMenu(menu string) []Perspective {
	result := make([]Perspective, 0)
	for _, p := range r.perspectives {
		if p.Menu() == menu {
			result = append(result, p)
		}
	}
	return result
}

// GetByName returns the perspective with the given display name.
func (r *Registry) GetByName(name string) (Perspective, error) {
	for _, p := range r.perspectives {
		if p.Name() == name {
			return p, nil
		}
	}
	return Perspective{}, ErrNotFound
}

// GetByID returns the perspective whose ID is id.
func (r *Registry) GetByID(id string) (Perspective, error) {
	for _, p := range r.perspectives {
		if p.ID() == id {
			return p, nil
		}
	}
	return Perspective{}, ErrNotFound
}

// Menus returns the distinct menus in order of first appearance.
func (r *Registry) Menus() []string {
	seen := make(map[string]bool)
	menus := make([]string, 0)
	for _, p := range r.perspectives {
		if !seen[p.Menu()] {
			seen[p.Menu()] = true
			menus = append(menus, p.Menu())
		}
	}
	return menus
}
