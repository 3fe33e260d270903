package rules

import (
	"github.com/expr-lang/expr/vm"
	"github.com/lsangers/codingame/ipc"
)

// ActionFunc turns a matched rule into a command for one hero. ok=false means
// the action does not apply right now and evaluation moves to the next rule.
type ActionFunc func(env HeroEnv) (cmd ipc.Command, ok bool)

// Rule is a condition → action pair evaluated once per hero per turn.
// The first matching rule in priority order decides the hero's command.
type Rule struct {
	Name         string
	Priority     int    // higher = evaluated first
	ConditionSrc string // expr source, kept for logging
	program      *vm.Program
	Action       ActionFunc
}
