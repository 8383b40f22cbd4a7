package perspective

import (
	"slices"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/kiewb/perspectives/internal/domain/distribution"
	"github.com/kiewb/perspectives/internal/domain/pageobject"
)

func TestCatalog_Order(t *testing.T) {
	require.Equal(t, []string{
		"Admin",
		"Home",
		"Projects",
		"Dashboards",
		"Deployments",
		"Execution Servers",
		"Process Definitions",
		"Process Instances",
		"Tasks Administration",
		"Jobs",
		"Execution Errors",
		"Task Lists",
		"Process & Task Reports",
		"Business Dashboards",
	}, names(Catalog().List()))
}

func TestCatalog_Entries(t *testing.T) {
	all := distribution.All()
	wbAndMonitoring := []distribution.Distribution{distribution.KieWB, distribution.KieWBMonitoring}

	tests := []struct {
		p     Perspective
		menu  string
		name  string
		dists []distribution.Distribution
		check func(Perspective) bool
	}{
		{Home, NoParentMenu, "Home", all, PageObjectIs[pageobject.Home]},
		{Admin, NoParentMenu, "Admin", all, PageObjectIs[pageobject.Admin]},
		{Artifacts, NoParentMenu, "Artifacts", all, PageObjectIs[pageobject.ArtifactRepository]},
		{Projects, "Design", "Projects", []distribution.Distribution{distribution.KieDroolsWB, distribution.KieWB}, PageObjectIs[pageobject.ProjectLibrary]},
		{Dashboards, "Design", "Dashboards", all, PageObjectIs[pageobject.BusinessDashboards]},
		{Deployments, "DevOps", "Deployments", all, PageObjectIs[pageobject.ProvisioningManagement]},
		{ExecutionServers, "DevOps", "Execution Servers", all, PageObjectIs[pageobject.ExecutionServers]},
		{ProcessDefinitions, "Manage", "Process Definitions", wbAndMonitoring, PageObjectIs[pageobject.ProcessDefinitions]},
		{ProcessInstances, "Manage", "Process Instances", wbAndMonitoring, PageObjectIs[pageobject.ProcessInstances]},
		{TaskAdministration, "Manage", "Tasks Administration", wbAndMonitoring, PageObjectIs[pageobject.TaskAdministration]},
		{Jobs, "Manage", "Jobs", wbAndMonitoring, PageObjectIs[pageobject.Jobs]},
		{ExecutionErrors, "Manage", "Execution Errors", wbAndMonitoring, PageObjectIs[pageobject.ExecutionErrors]},
		{Tasks, "Track", "Task Lists", wbAndMonitoring, PageObjectIs[pageobject.Tasks]},
		{ProcessAndTaskDashboard, "Track", "Process & Task Reports", wbAndMonitoring, PageObjectIs[pageobject.ProcessAndTaskDashboard]},
		{BusinessDashboards, "Track", "Business Dashboards", wbAndMonitoring, PageObjectIs[pageobject.Apps]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.menu, tt.p.Menu())
			require.Equal(t, tt.name, tt.p.Name())
			require.Equal(t, tt.dists, tt.p.Distributions())
			require.True(t, tt.check(tt.p), "unexpected page object %s", tt.p.PageObject())
		})
	}
}

func TestCatalog_ArtifactsNotEnumerated(t *testing.T) {
	for _, d := range distribution.All() {
		require.NotContains(t, GetAllPerspectives(d), Artifacts)
	}
	_, err := Catalog().GetByName("Artifacts")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetAllPerspectives(t *testing.T) {
	tests := []struct {
		dist distribution.Distribution
		want []string
	}{
		{
			dist: distribution.KieDroolsWB,
			want: []string{"Admin", "Home", "Projects", "Dashboards", "Deployments", "Execution Servers"},
		},
		{
			dist: distribution.KieWB,
			want: []string{
				"Admin", "Home", "Projects", "Dashboards", "Deployments", "Execution Servers",
				"Process Definitions", "Process Instances", "Tasks Administration", "Jobs",
				"Execution Errors", "Task Lists", "Process & Task Reports", "Business Dashboards",
			},
		},
		{
			dist: distribution.KieWBMonitoring,
			want: []string{
				"Admin", "Home", "Dashboards", "Deployments", "Execution Servers",
				"Process Definitions", "Process Instances", "Tasks Administration", "Jobs",
				"Execution Errors", "Task Lists", "Process & Task Reports", "Business Dashboards",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.dist.String(), func(t *testing.T) {
			require.Equal(t, tt.want, names(GetAllPerspectives(tt.dist)))
		})
	}
}

func TestGetAllPerspectives_UnknownDistributionIsEmpty(t *testing.T) {
	got := GetAllPerspectives(distribution.Distribution("jbpm-wb"))
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestGetAllPerspectives_UnionIsCatalog(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range distribution.All() {
		for _, p := range GetAllPerspectives(d) {
			seen[p.ID()] = true
		}
	}

	require.Len(t, seen, Catalog().Len())
	for _, p := range Catalog().List() {
		require.True(t, seen[p.ID()], p.Name())
	}
}

func TestGetAllPerspectives_Concurrent(t *testing.T) {
	want := names(GetAllPerspectives(distribution.KieWB))

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := GetAllPerspectives(distribution.KieWB)
			got[0] = Perspective{}
		}()
	}
	wg.Wait()

	require.Equal(t, want, names(GetAllPerspectives(distribution.KieWB)))
}

// isSubsequence reports whether sub appears in full in the same relative order.
func isSubsequence(sub, full []Perspective) bool {
	i := 0
	for _, p := range full {
		if i < len(sub) && sub[i].ID() == p.ID() {
			i++
		}
	}
	return i == len(sub)
}

func TestGetAllPerspectives_Properties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		d := rapid.SampledFrom(distribution.All()).Draw(t, "distribution")

		first := GetAllPerspectives(d)
		second := GetAllPerspectives(d)

		// Idempotence
		require.Equal(t, first, second)

		// Order preservation
		require.True(t, isSubsequence(first, Catalog().List()))

		// Completeness and soundness
		for _, p := range Catalog().List() {
			found := slices.ContainsFunc(first, func(q Perspective) bool { return q.ID() == p.ID() })
			require.Equal(t, p.AvailableIn(d), found, p.Name())
		}

		// Mutating a result never leaks into later queries
		if len(first) > 0 {
			idx := rapid.IntRange(0, len(first)-1).Draw(t, "index")
			first[idx] = Perspective{}
			first = slices.Delete(first, 0, 1)
		}
		require.Equal(t, second, GetAllPerspectives(d))
	})
}

func TestGetAllPerspectives_DefaultMembership(t *testing.T) {
	defaults := []Perspective{Home, Admin, Dashboards, Deployments, ExecutionServers}
	for _, d := range distribution.All() {
		got := GetAllPerspectives(d)
		for _, p := range defaults {
			require.Contains(t, got, p, "%s missing from %s", p.Name(), d)
		}
	}
}

func TestCatalog_IDsUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Catalog().List() {
		require.False(t, seen[p.ID()], p.ID())
		seen[p.ID()] = true
	}
	require.Equal(t, "Process_&_Task_Reports", ProcessAndTaskDashboard.ID())
}
