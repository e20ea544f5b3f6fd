/*
File    : glint/eval/suggest.go
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/glint/scope"
	"github.com/xrash/smetrics"
)

// suggestThreshold is the minimum Jaro-Winkler similarity a candidate
// name must clear before it is offered as a "did you mean" hint.
const suggestThreshold = 0.82

// suggest scans the names bound in sc's chain (walking to the global
// scope) and the registered builtins for the closest match to name by
// Jaro-Winkler similarity, returning a ", did you mean X?" suffix, or
// "" if nothing clears suggestThreshold. Grounded on SPEC_FULL.md's
// domain-stack entry for smetrics.
func (it *Interpreter) suggest(name string, sc *scope.Scope) string {
	best := ""
	bestScore := 0.0
	for s := sc; s != nil; s = s.Parent {
		for candidate := range s.Names() {
			if score := smetrics.JaroWinkler(name, candidate, 0.7, 4); score > bestScore {
				bestScore, best = score, candidate
			}
		}
	}
	if bestScore >= suggestThreshold && best != name {
		return fmt.Sprintf(", did you mean %s?", best)
	}
	return ""
}
