package rules

import (
	"fmt"
	"strings"

	"github.com/lsangers/codingame/config"
)

// DefaultRules is the rule set used by the rules policy when the config file
// names none: chase anything inside the base radius, otherwise stand guard.
func DefaultRules() []*Rule {
	return []*Rule{
		{
			Name:         "intercept-base-threats",
			Priority:     100,
			ConditionSrc: `ThreatsInBase() > 0`,
			Action:       ActionIntercept,
		},
		{
			Name:         "guard-base",
			Priority:     10,
			ConditionSrc: `true`,
			Action:       ActionGuard,
		},
	}
}

// CompileDefs resolves config rule definitions into rules. Conditions are
// compiled later by NewEngine.
func CompileDefs(defs []config.RuleDef) ([]*Rule, error) {
	out := make([]*Rule, 0, len(defs))
	for _, d := range defs {
		action, ok := actions[strings.ToLower(strings.TrimSpace(d.Do))]
		if !ok {
			return nil, fmt.Errorf("rule %q: unknown action %q", d.Name, d.Do)
		}
		out = append(out, &Rule{
			Name:         d.Name,
			Priority:     d.Priority,
			ConditionSrc: d.When,
			Action:       action,
		})
	}
	return out, nil
}
