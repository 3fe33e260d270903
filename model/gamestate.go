package model

// Setup holds the once-per-match values read before the first turn.
type Setup struct {
	MyBase          Point
	HeroesPerPlayer int
}

// GameState is the fully parsed snapshot of one turn. Units keep the order in
// which the judge listed them.
type GameState struct {
	Turn         int
	MyBase       Base
	OpponentBase Base
	Units        []Unit
}

// Base returns the base owned by a.
func (gs GameState) Base(a Allegiance) Base {
	if a == Opponent {
		return gs.OpponentBase
	}
	return gs.MyBase
}

// Heroes returns a's heroes in snapshot order.
func (gs GameState) Heroes(a Allegiance) []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.Kind.IsHeroOf(a) {
			out = append(out, u)
		}
	}
	return out
}

// Monsters returns every neutral unit in snapshot order.
func (gs GameState) Monsters() []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.Kind == Neutral {
			out = append(out, u)
		}
	}
	return out
}

// ThreatsTo returns units whose trajectory threatens a's base, in snapshot order.
func (gs GameState) ThreatsTo(a Allegiance) []Unit {
	var out []Unit
	for _, u := range gs.Units {
		if u.ThreatFor.Threatens(a) {
			out = append(out, u)
		}
	}
	return out
}

// UnitByID finds a unit by its stable identifier.
func (gs GameState) UnitByID(id int) (Unit, bool) {
	for _, u := range gs.Units {
		if u.ID == id {
			return u, true
		}
	}
	return Unit{}, false
}
