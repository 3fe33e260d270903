package rules

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/lsangers/codingame/ipc"
)

// Engine is a Policy driven by compiled rules. For each hero the rules run in
// priority order and the first one that matches and applies wins; a hero no
// rule claims holds position.
type Engine struct {
	rules []*Rule
}

// NewEngine compiles all rule conditions into expr bytecode and sorts by priority.
func NewEngine(rules []*Rule) (*Engine, error) {
	compiled, err := compileRules(rules)
	if err != nil {
		return nil, err
	}
	names := make([]string, len(compiled))
	for i, r := range compiled {
		names[i] = r.Name
	}
	slog.Info("rule engine ready", "count", len(compiled), "rules", names)
	return &Engine{rules: compiled}, nil
}

// Commands evaluates the rules for every hero in s.
func (e *Engine) Commands(s Situation) []ipc.Command {
	cmds := make([]ipc.Command, 0, len(s.Heroes))
	for i, h := range s.Heroes {
		cmds = append(cmds, e.decide(HeroEnv{Hero: h, Index: i, State: s}))
	}
	return cmds
}

func (e *Engine) decide(env HeroEnv) ipc.Command {
	for _, r := range e.rules {
		result, err := vm.Run(r.program, env)
		if err != nil {
			slog.Warn("rule condition error", "rule", r.Name, "hero", env.Hero.ID, "error", err)
			continue
		}
		if match, ok := result.(bool); !ok || !match {
			continue
		}
		cmd, ok := r.Action(env)
		if !ok || cmd == nil {
			continue
		}
		slog.Debug("rule fired", "rule", r.Name, "priority", r.Priority, "hero", env.Hero.ID, "command", cmd.String())
		return cmd
	}
	return ipc.WaitCommand{}
}

func compileRules(rules []*Rule) ([]*Rule, error) {
	for _, r := range rules {
		if r.Action == nil {
			return nil, fmt.Errorf("rule %q: no action", r.Name)
		}
		prog, err := expr.Compile(r.ConditionSrc, expr.Env(HeroEnv{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("compile rule %q: %w", r.Name, err)
		}
		r.program = prog
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority > rules[j].Priority
	})
	return rules, nil
}
