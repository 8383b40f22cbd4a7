// Package perspectives implements the application layer over the perspective registry.
//
// Service is the entry point used by the CLI. It delegates to a domain
// perspective.Provider (normally perspective.Catalog()) and adds:
//   - per-distribution memoization through a cachemanager.ReadThroughCache, with
//     sliding expiry when a TTL is configured
//   - combined distribution and menu queries
//   - the test matrix: for every distribution, the ordered perspectives
//   - lookup by test case ID or display name
//
// Every slice returned by Service is freshly allocated, including cached results, and
// holds Perspective values. Callers may overwrite them freely.
package perspectives
