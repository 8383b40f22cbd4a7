package perspective

import (
	"reflect"
	"strings"

	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/domain/pageobject"
)

// NoParentMenu is the menu of perspectives reached directly from the navigation bar.
const NoParentMenu = "N/A"

// Perspective describes one workbench perspective: where it sits in the menu, what it
// is called, which page object models it and which distributions ship it.
// Fields are unexported, so a copy handed to a caller cannot change the registry.
type Perspective struct {
	menu          string           // e.g., "Manage"
	name          string           // e.g., "Process Instances"
	pageObject    reflect.Type     // e.g., pageobject.ProcessInstances
	distributions distribution.Set // never empty in a valid registry
}

// define creates a perspective modelled by page object T. When no distributions are
// given the perspective is available in all of them.
func define[T pageobject.Perspective](menu, name string, ds ...distribution.Distribution) Perspective {
	if len(ds) == 0 {
		ds = distribution.All()
	}
	return Perspective{
		menu:          menu,
		name:          name,
		pageObject:    reflect.TypeFor[T](),
		distributions: distribution.NewSet(ds...),
	}
}

// Menu returns the top level menu holding the perspective's menu item, or NoParentMenu.
func (p Perspective) Menu() string {
	return p.menu
}

// Name returns the menu item label.
func (p Perspective) Name() string {
	return p.name
}

// PageObject returns the type of the page object representing the perspective.
func (p Perspective) PageObject() reflect.Type {
	return p.pageObject
}

// Distributions returns the distributions where the perspective is present.
func (p Perspective) Distributions() []distribution.Distribution {
	return p.distributions.Slice()
}

// AvailableIn reports whether the perspective is present in d.
func (p Perspective) AvailableIn(d distribution.Distribution) bool {
	return p.distributions.Contains(d)
}

// ID identifies the perspective in parametrized test cases: the name with every
// space replaced by an underscore.
func (p Perspective) ID() string {
	return strings.ReplaceAll(p.name, " ", "_")
}

func (p Perspective) String() string {
	return p.ID()
}

// PageObjectIs reports whether p is modelled by page object T.
func PageObjectIs[T pageobject.Perspective](p Perspective) bool {
	return p.pageObject == reflect.TypeFor[T]()
}
