package rules

import (
	"fmt"

	"github.com/lsangers/codingame/config"
	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

// Situation is everything a policy sees for one turn.
type Situation struct {
	Turn         int
	Heroes       []model.Unit // controlled heroes, snapshot order
	Threats      []model.Unit // units threatening my base, snapshot order
	MyBase       model.Base
	OpponentBase model.Base
}

// Policy chooses one command per controlled hero. The decision loop sends
// Commands()[i] for Heroes[i]; it pads or trims a result of the wrong length.
type Policy interface {
	Commands(s Situation) []ipc.Command
}

// PolicyFunc adapts a plain function to Policy.
type PolicyFunc func(s Situation) []ipc.Command

func (f PolicyFunc) Commands(s Situation) []ipc.Command { return f(s) }

// HoldPolicy keeps every hero in place.
type HoldPolicy struct{}

func (HoldPolicy) Commands(s Situation) []ipc.Command {
	cmds := make([]ipc.Command, len(s.Heroes))
	for i := range cmds {
		cmds[i] = ipc.WaitCommand{}
	}
	return cmds
}

// NewPolicy builds the policy selected in cfg.
func NewPolicy(cfg config.Config) (Policy, error) {
	switch cfg.Policy {
	case "", config.PolicyHold:
		return HoldPolicy{}, nil
	case config.PolicyRules:
		rules := DefaultRules()
		if len(cfg.Rules) > 0 {
			var err error
			if rules, err = CompileDefs(cfg.Rules); err != nil {
				return nil, err
			}
		}
		return NewEngine(rules)
	}
	return nil, fmt.Errorf("unknown policy %q", cfg.Policy)
}
