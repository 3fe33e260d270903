package model

// Allegiance identifies which side owns a hero or a base.
type Allegiance byte

const (
	Mine     Allegiance = 1
	Opponent Allegiance = 2
)

func (a Allegiance) String() string {
	switch a {
	case Mine:
		return "mine"
	case Opponent:
		return "opponent"
	}
	return "unknown"
}

// UnitKind classifies an entity as a monster or a hero of either side.
type UnitKind byte

const (
	Neutral      UnitKind = 0 // monster
	MyHero       UnitKind = 1
	OpponentHero UnitKind = 2
)

// UnitKindFromCode maps the wire type code to a UnitKind. Unknown codes are
// monsters so a new entity type never aborts the turn.
func UnitKindFromCode(code int) UnitKind {
	switch code {
	case 1:
		return MyHero
	case 2:
		return OpponentHero
	default:
		return Neutral
	}
}

// Code returns the wire value for k.
func (k UnitKind) Code() int { return int(k) }

// Hero reports the owning side when k is a hero.
func (k UnitKind) Hero() (Allegiance, bool) {
	switch k {
	case MyHero:
		return Mine, true
	case OpponentHero:
		return Opponent, true
	}
	return 0, false
}

// IsHeroOf reports whether k is a hero owned by a.
func (k UnitKind) IsHeroOf(a Allegiance) bool {
	owner, ok := k.Hero()
	return ok && owner == a
}

func (k UnitKind) String() string {
	switch k {
	case MyHero:
		return "hero(mine)"
	case OpponentHero:
		return "hero(opponent)"
	}
	return "monster"
}

// ThreatTarget says which base, if any, a monster's trajectory threatens.
type ThreatTarget byte

const (
	NoThreat             ThreatTarget = 0
	ThreatToMyBase       ThreatTarget = 1
	ThreatToOpponentBase ThreatTarget = 2
)

// ThreatTargetFromCode maps the wire threat code. Unknown codes mean no threat.
func ThreatTargetFromCode(code int) ThreatTarget {
	switch code {
	case 1:
		return ThreatToMyBase
	case 2:
		return ThreatToOpponentBase
	default:
		return NoThreat
	}
}

func (t ThreatTarget) Code() int { return int(t) }

// Base reports the threatened side, if any.
func (t ThreatTarget) Base() (Allegiance, bool) {
	switch t {
	case ThreatToMyBase:
		return Mine, true
	case ThreatToOpponentBase:
		return Opponent, true
	}
	return 0, false
}

// Threatens reports whether t points at a's base.
func (t ThreatTarget) Threatens(a Allegiance) bool {
	side, ok := t.Base()
	return ok && side == a
}

func (t ThreatTarget) String() string {
	switch t {
	case ThreatToMyBase:
		return "base(mine)"
	case ThreatToOpponentBase:
		return "base(opponent)"
	}
	return "none"
}

// BehaviorMode is what a unit is doing this turn.
type BehaviorMode byte

const (
	Moving    BehaviorMode = 0 // no fixed destination yet
	Targeting BehaviorMode = 1 // locked onto a base
)

// BehaviorModeFromCode returns Targeting for any nonzero flag.
func BehaviorModeFromCode(code int) BehaviorMode {
	if code != 0 {
		return Targeting
	}
	return Moving
}

func (m BehaviorMode) Code() int { return int(m) }

func (m BehaviorMode) String() string {
	if m == Targeting {
		return "targeting"
	}
	return "moving"
}
