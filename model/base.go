package model

// Base is one side's base. Position is fixed for the match; Health and Mana
// are refreshed from the snapshot at the start of every turn.
type Base struct {
	Owner  Allegiance
	Pos    Point
	Health int
	Mana   int
	// Located is false when the position was never supplied. The opponent's
	// base is only located when configured; it is never derived by reflection.
	Located bool
}

// ParseBasePosition reads the one-time setup line "baseX baseY".
func ParseBasePosition(tokens []string) (Point, error) {
	if len(tokens) != 2 {
		return Point{}, arityError("base.position", len(tokens), 2)
	}
	x, err := parseUint("base.x", tokens[0])
	if err != nil {
		return Point{}, err
	}
	y, err := parseUint("base.y", tokens[1])
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}

// ApplyStatus updates health and mana from a "health mana" line. The base is
// left untouched when the line is malformed.
func (b *Base) ApplyStatus(tokens []string) error {
	if len(tokens) != 2 {
		return arityError("base.status", len(tokens), 2)
	}
	health, err := parseUint("base.health", tokens[0])
	if err != nil {
		return err
	}
	mana, err := parseUint("base.mana", tokens[1])
	if err != nil {
		return err
	}
	b.Health = health
	b.Mana = mana
	return nil
}
