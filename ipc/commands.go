package ipc

import (
	"fmt"
	"strings"
)

// Command verbs understood by the judge.
const (
	TypeWait  = "WAIT"
	TypeMove  = "MOVE"
	TypeSpell = "SPELL"
)

// Spell names, sent after TypeSpell.
const (
	SpellWind    = "WIND"
	SpellShield  = "SHIELD"
	SpellControl = "CONTROL"
)

// SpellCost is the mana every spell consumes.
const SpellCost = 10

// Command is a single output line for one hero.
type Command interface {
	String() string
}

type WaitCommand struct {
	Message string
}

func (c WaitCommand) String() string { return withMessage(TypeWait, c.Message) }

type MoveCommand struct {
	X       int
	Y       int
	Message string
}

func (c MoveCommand) String() string {
	return withMessage(fmt.Sprintf("%s %d %d", TypeMove, c.X, c.Y), c.Message)
}

// WindCommand pushes every non-shielded entity near the hero toward (X, Y).
type WindCommand struct {
	X       int
	Y       int
	Message string
}

func (c WindCommand) String() string {
	return withMessage(fmt.Sprintf("%s %s %d %d", TypeSpell, SpellWind, c.X, c.Y), c.Message)
}

// ShieldCommand protects EntityID from spells and damage for a few turns.
type ShieldCommand struct {
	EntityID int
	Message  string
}

func (c ShieldCommand) String() string {
	return withMessage(fmt.Sprintf("%s %s %d", TypeSpell, SpellShield, c.EntityID), c.Message)
}

// ControlCommand forces EntityID to walk toward (X, Y) next turn.
type ControlCommand struct {
	EntityID int
	X        int
	Y        int
	Message  string
}

func (c ControlCommand) String() string {
	return withMessage(fmt.Sprintf("%s %s %d %d %d", TypeSpell, SpellControl, c.EntityID, c.X, c.Y), c.Message)
}

// withMessage appends an optional debug label. The judge reads one command
// per line, so line breaks inside the label are flattened.
func withMessage(cmd, msg string) string {
	msg = strings.Join(strings.Fields(msg), " ")
	if msg == "" {
		return cmd
	}
	return cmd + " " + msg
}
