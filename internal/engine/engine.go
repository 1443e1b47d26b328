// internal/engine/engine.go

package engine

import (
	"sort"

	"github.com/rs/zerolog/log"

	"github.com/imellyn/rulebasedlt/internal/rules"
)

// Decide evaluates the rule set against the facts and returns the decision of
// the highest-priority rule whose conditions all hold. The second return is
// false when no rule matched — that is an ordinary outcome, not an error.
//
// Rules tie on priority in their original order: the sort is stable, so of two
// equal-priority matching rules the one listed first wins. The caller's slice
// is never reordered; sorting happens on a copy.
func Decide(ruleSet []rules.Rule, facts rules.Facts) (rules.Decision, bool) {
	sorted := make([]rules.Rule, len(ruleSet))
	copy(sorted, ruleSet)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority > sorted[j].Priority
	})

	for _, rule := range sorted {
		if !matches(rule, facts) {
			log.Debug().Str("rule", rule.Name).Int("priority", rule.Priority).Msg("Rule did not match")
			continue
		}

		name := rule.Name
		if name == "" {
			name = rules.UnnamedRule
		}
		log.Info().Str("rule", name).Int("priority", rule.Priority).Msg("Rule matched")
		return rules.Decision{
			RuleName: name,
			Action:   rule.Action,
			Priority: rule.Priority,
		}, true
	}

	return rules.Decision{}, false
}

// matches reports whether every condition of the rule holds. A rule with no
// conditions matches vacuously.
func matches(rule rules.Rule, facts rules.Facts) bool {
	for _, cond := range rule.Conditions {
		if !EvaluateCondition(cond, facts) {
			return false
		}
	}
	return true
}
