package rules

import (
	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

// HeroEnv is the expr environment for one hero. Exported fields and methods
// are callable from rule conditions, e.g. `ThreatsInBase() > 0 && Index == 0`.
type HeroEnv struct {
	Hero  model.Unit
	Index int // position among this turn's controlled heroes
	State Situation
}

func (e HeroEnv) Turn() int { return e.State.Turn }

func (e HeroEnv) Mana() int { return e.State.MyBase.Mana }

func (e HeroEnv) BaseHealth() int { return e.State.MyBase.Health }

func (e HeroEnv) OpponentBaseHealth() int { return e.State.OpponentBase.Health }

func (e HeroEnv) OpponentBaseKnown() bool { return e.State.OpponentBase.Located }

func (e HeroEnv) HeroCount() int { return len(e.State.Heroes) }

// ThreatCount counts every unit heading for my base, wherever it is.
func (e HeroEnv) ThreatCount() int { return len(e.State.Threats) }

// ThreatsInBase counts threats already inside the radius where monsters lock
// onto the base.
func (e HeroEnv) ThreatsInBase() int {
	n := 0
	for _, u := range e.State.Threats {
		if u.Pos.Within(e.State.MyBase.Pos, model.BaseAttackRadius) {
			n++
		}
	}
	return n
}

// DistToBase is the hero's distance to my base.
func (e HeroEnv) DistToBase() float64 { return e.Hero.Pos.Dist(e.State.MyBase.Pos) }

// NearestThreatDist is the hero's distance to the closest threat, or -1 if
// nothing threatens the base.
func (e HeroEnv) NearestThreatDist() float64 {
	t, ok := nearest(e.Hero.Pos, e.State.Threats)
	if !ok {
		return -1
	}
	return e.Hero.Pos.Dist(t.Pos)
}

// CanCast reports whether the base holds enough mana for one spell.
func (e HeroEnv) CanCast() bool { return e.Mana() >= ipc.SpellCost }

// nearest returns the unit in units closest to p.
func nearest(p model.Point, units []model.Unit) (model.Unit, bool) {
	var (
		best  model.Unit
		bestD = -1
	)
	for _, u := range units {
		d := p.Dist2(u.Pos)
		if bestD < 0 || d < bestD {
			best, bestD = u, d
		}
	}
	return best, bestD >= 0
}
