// Package distribution defines the product editions a perspective can ship in.
package distribution

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownDistribution is returned by Parse for input that names no known distribution.
var ErrUnknownDistribution = errors.New("unknown distribution")

// maxSuggestionDistance bounds how far off input may be before Parse stops suggesting.
const maxSuggestionDistance = 3

// Distribution identifies an edition of the workbench.
type Distribution string

const (
	KieDroolsWB     Distribution = "kie-drools-wb"     // Drools-only workbench
	KieWB           Distribution = "kie-wb"            // full workbench
	KieWBMonitoring Distribution = "kie-wb-monitoring" // monitoring-only workbench
)

var all = []Distribution{KieDroolsWB, KieWB, KieWBMonitoring}

// All returns every known distribution in declaration order.
func All() []Distribution {
	out := make([]Distribution, len(all))
	copy(out, all)
	return out
}

// Valid reports whether d is one of the known distributions.
func (d Distribution) Valid() bool {
	return d.index() >= 0
}

func (d Distribution) String() string {
	return string(d)
}

// index returns the declaration position of d, or -1.
func (d Distribution) index() int {
	for i, known := range all {
		if known == d {
			return i
		}
	}
	return -1
}

// Parse resolves user input such as "kie-wb" or "KIE_WB" to a Distribution.
func Parse(s string) (Distribution, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	if d := Distribution(normalized); d.Valid() {
		return d, nil
	}

	if suggestion, ok := closest(normalized); ok {
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownDistribution, s, suggestion)
	}
	return "", fmt.Errorf("%w %q", ErrUnknownDistribution, s)
}

func closest(s string) (Distribution, bool) {
	if s == "" {
		return "", false
	}
	best := Distribution("")
	bestDist := maxSuggestionDistance + 1
	for _, d := range all {
		if dist := levenshtein.ComputeDistance(s, string(d)); dist < bestDist {
			best, bestDist = d, dist
		}
	}
	return best, best != ""
}
