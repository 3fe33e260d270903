package model

import "strconv"

// UnitTokenCount is the number of whitespace-separated integers per entity line.
const UnitTokenCount = 11

// Unit is one visible entity for a single turn. Units are rebuilt from the
// snapshot every turn; only ID is stable across turns.
type Unit struct {
	ID         int
	Kind       UnitKind
	Pos        Point
	ShieldLife int // turns of damage immunity left, 0 = none
	Controlled int // raw control flag; nonzero while under an opponent control spell
	Health     int
	VX, VY     int
	Mode       BehaviorMode
	ThreatFor  ThreatTarget
}

// ParseUnit builds a Unit from one entity line in wire order:
// id type x y shieldLife isControlled health vx vy nearBase threatFor.
func ParseUnit(tokens []string) (Unit, error) {
	if len(tokens) != UnitTokenCount {
		return Unit{}, arityError("unit", len(tokens), UnitTokenCount)
	}

	var (
		u   Unit
		err error
		c   int
	)
	if u.ID, err = parseUint("unit.id", tokens[0]); err != nil {
		return Unit{}, err
	}
	if c, err = parseCode("unit.type", tokens[1]); err != nil {
		return Unit{}, err
	}
	u.Kind = UnitKindFromCode(c)
	if u.Pos.X, err = parseUint("unit.x", tokens[2]); err != nil {
		return Unit{}, err
	}
	if u.Pos.Y, err = parseUint("unit.y", tokens[3]); err != nil {
		return Unit{}, err
	}
	if u.ShieldLife, err = parseUint("unit.shieldLife", tokens[4]); err != nil {
		return Unit{}, err
	}
	if u.Controlled, err = parseUint("unit.isControlled", tokens[5]); err != nil {
		return Unit{}, err
	}
	if u.Health, err = parseUint("unit.health", tokens[6]); err != nil {
		return Unit{}, err
	}
	if u.VX, err = parseInt("unit.vx", tokens[7]); err != nil {
		return Unit{}, err
	}
	if u.VY, err = parseInt("unit.vy", tokens[8]); err != nil {
		return Unit{}, err
	}
	if c, err = parseCode("unit.nearBase", tokens[9]); err != nil {
		return Unit{}, err
	}
	u.Mode = BehaviorModeFromCode(c)
	if c, err = parseCode("unit.threatFor", tokens[10]); err != nil {
		return Unit{}, err
	}
	u.ThreatFor = ThreatTargetFromCode(c)
	return u, nil
}

// Tokens re-serializes u in wire order. Classification fields come back as
// their canonical codes.
func (u Unit) Tokens() []string {
	fields := [UnitTokenCount]int{
		u.ID, u.Kind.Code(), u.Pos.X, u.Pos.Y, u.ShieldLife, u.Controlled,
		u.Health, u.VX, u.VY, u.Mode.Code(), u.ThreatFor.Code(),
	}
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = strconv.Itoa(f)
	}
	return out
}

// Next returns where the unit will be next turn if it keeps its velocity.
func (u Unit) Next() Point {
	return Point{X: u.Pos.X + u.VX, Y: u.Pos.Y + u.VY}
}

// IsControlled reports whether u is under an opponent control spell.
func (u Unit) IsControlled() bool { return u.Controlled != 0 }

// Shielded reports whether spells currently bounce off u.
func (u Unit) Shielded() bool { return u.ShieldLife > 0 }
