package agent

import (
	"fmt"

	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

// EventKind identifies a notable change between two consecutive turns.
type EventKind string

const (
	EventBaseDamaged         EventKind = "base_damaged"
	EventOpponentBaseDamaged EventKind = "opponent_base_damaged"
	EventThreatAppeared      EventKind = "threat_appeared"
	EventThreatCleared       EventKind = "threat_cleared"
	EventManaReady           EventKind = "mana_ready"
)

// Event is a significant change detected by diffing consecutive turns. Events
// only feed the diagnostic log; they never influence the commands sent.
type Event struct {
	Kind   EventKind
	Turn   int
	Detail string
}

// stateSnapshot keeps the diffable fields of one turn. Only stable unit IDs
// are carried over, never the unit records themselves.
type stateSnapshot struct {
	turn      int
	health    int
	oppHealth int
	mana      int
	threatIDs map[int]bool
}

func takeSnapshot(gs model.GameState) stateSnapshot {
	threats := gs.ThreatsTo(model.Mine)
	ids := make(map[int]bool, len(threats))
	for _, u := range threats {
		ids[u.ID] = true
	}
	return stateSnapshot{
		turn:      gs.Turn,
		health:    gs.MyBase.Health,
		oppHealth: gs.OpponentBase.Health,
		mana:      gs.MyBase.Mana,
		threatIDs: ids,
	}
}

// detectEvents compares prev against cur. The first turn has nothing to
// compare with and yields no events.
func detectEvents(prev *stateSnapshot, cur stateSnapshot) []Event {
	if prev == nil {
		return nil
	}
	var events []Event

	if cur.health < prev.health {
		events = append(events, Event{
			Kind:   EventBaseDamaged,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("base health %d -> %d", prev.health, cur.health),
		})
	}
	if cur.oppHealth < prev.oppHealth {
		events = append(events, Event{
			Kind:   EventOpponentBaseDamaged,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("opponent base health %d -> %d", prev.oppHealth, cur.oppHealth),
		})
	}

	var appeared, cleared int
	for id := range cur.threatIDs {
		if !prev.threatIDs[id] {
			appeared++
		}
	}
	for id := range prev.threatIDs {
		if !cur.threatIDs[id] {
			cleared++
		}
	}
	if appeared > 0 {
		events = append(events, Event{
			Kind:   EventThreatAppeared,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("%d new threat(s), %d total", appeared, len(cur.threatIDs)),
		})
	}
	if cleared > 0 {
		events = append(events, Event{
			Kind:   EventThreatCleared,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("%d threat(s) gone, %d left", cleared, len(cur.threatIDs)),
		})
	}

	if prev.mana < ipc.SpellCost && cur.mana >= ipc.SpellCost {
		events = append(events, Event{
			Kind:   EventManaReady,
			Turn:   cur.turn,
			Detail: fmt.Sprintf("mana %d", cur.mana),
		})
	}
	return events
}
