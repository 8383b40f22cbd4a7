// Package pageobject declares the page-object types that model each perspective's UI.
//
// The types carry no behaviour here. The perspective registry only uses them as type
// tokens; the browser-driving implementations bind to these names elsewhere.
package pageobject

// Perspective is satisfied by every page object that models a whole perspective.
type Perspective interface {
	perspective()
}

// base seals Perspective to the types declared in this package.
type base struct{}

func (base) perspective() {}

type (
	Home                    struct{ base }
	Admin                   struct{ base }
	ArtifactRepository      struct{ base }
	ProjectLibrary          struct{ base }
	BusinessDashboards      struct{ base }
	ProvisioningManagement  struct{ base }
	ExecutionServers        struct{ base }
	ProcessDefinitions      struct{ base }
	ProcessInstances        struct{ base }
	TaskAdministration      struct{ base }
	Jobs                    struct{ base }
	ExecutionErrors         struct{ base }
	Tasks                   struct{ base }
	ProcessAndTaskDashboard struct{ base }
	Apps                    struct{ base }
)
