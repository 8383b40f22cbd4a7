package perspective

import (
	d "github.com/kiewb/perspectives/internal/domain/distribution"
	po "github.com/kiewb/perspectives/internal/domain/pageobject"
)

var (
	Home      = define[po.Home](NoParentMenu, "Home")
	Admin     = define[po.Admin](NoParentMenu, "Admin")
	Artifacts = define[po.ArtifactRepository](NoParentMenu, "Artifacts")

	Projects   = define[po.ProjectLibrary]("Design", "Projects", d.KieDroolsWB, d.KieWB)
	Dashboards = define[po.BusinessDashboards]("Design", "Dashboards")

	Deployments      = define[po.ProvisioningManagement]("DevOps", "Deployments")
	ExecutionServers = define[po.ExecutionServers]("DevOps", "Execution Servers")

	ProcessDefinitions = define[po.ProcessDefinitions]("Manage", "Process Definitions", d.KieWB, d.KieWBMonitoring)
	ProcessInstances   = define[po.ProcessInstances]("Manage", "Process Instances", d.KieWB, d.KieWBMonitoring)
	TaskAdministration = define[po.TaskAdministration]("Manage", "Tasks Administration", d.KieWB, d.KieWBMonitoring)
	Jobs               = define[po.Jobs]("Manage", "Jobs", d.KieWB, d.KieWBMonitoring)
	ExecutionErrors    = define[po.ExecutionErrors]("Manage", "Execution Errors", d.KieWB, d.KieWBMonitoring)

	Tasks                   = define[po.Tasks]("Track", "Task Lists", d.KieWB, d.KieWBMonitoring)
	ProcessAndTaskDashboard = define[po.ProcessAndTaskDashboard]("Track", "Process & Task Reports", d.KieWB, d.KieWBMonitoring)
	BusinessDashboards      = define[po.Apps]("Track", "Business Dashboards", d.KieWB, d.KieWBMonitoring)
)

// catalog is the enumerated set of perspectives. Artifacts is declared for direct use
// but is not enumerated for test runs.
var catalog = mustRegistry(
	Admin,
	Home,
	Projects,
	Dashboards,
	Deployments,
	ExecutionServers,
	ProcessDefinitions,
	ProcessInstances,
	TaskAdministration,
	Jobs,
	ExecutionErrors,
	Tasks,
	ProcessAndTaskDashboard,
	BusinessDashboards,
)

// Catalog returns the process-wide perspective registry.
func Catalog() *Registry {
	return catalog
}

// GetAllPerspectives returns the catalog perspectives present in dist, in catalog order.
func GetAllPerspectives(dist d.Distribution) []Perspective {
	return catalog.ForDistribution(dist)
}
