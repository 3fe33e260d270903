package agent

import (
	"errors"
	"fmt"

	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

// TokenSource yields the tokens of one input line per call and returns
// ipc.ErrClosed once the judge closes the channel.
type TokenSource interface {
	ReadTokens() ([]string, error)
}

// ParseState is the turn parser's position within one turn's input block.
type ParseState int

const (
	AwaitingMyBaseUpdate ParseState = iota
	AwaitingEnemyBaseUpdate
	AwaitingEntityCount
	AwaitingEntityLines
	TurnReady
)

func (s ParseState) String() string {
	switch s {
	case AwaitingMyBaseUpdate:
		return "awaiting my base"
	case AwaitingEnemyBaseUpdate:
		return "awaiting enemy base"
	case AwaitingEntityCount:
		return "awaiting entity count"
	case AwaitingEntityLines:
		return "awaiting entity lines"
	case TurnReady:
		return "turn ready"
	}
	return fmt.Sprintf("ParseState(%d)", int(s))
}

// ParseSetup reads the once-per-match block: base coordinates, then heroes
// per player. ipc.ErrClosed is returned only if the input was empty.
func ParseSetup(src TokenSource) (model.Setup, error) {
	tokens, err := src.ReadTokens()
	if err != nil {
		return model.Setup{}, err
	}
	pos, err := model.ParseBasePosition(tokens)
	if err != nil {
		return model.Setup{}, fmt.Errorf("setup: %w", err)
	}

	tokens, err = src.ReadTokens()
	if err != nil {
		return model.Setup{}, fmt.Errorf("setup: %w", truncated(err))
	}
	heroes, err := model.ParseCount("heroesPerPlayer", tokens)
	if err != nil {
		return model.Setup{}, fmt.Errorf("setup: %w", err)
	}
	return model.Setup{MyBase: pos, HeroesPerPlayer: heroes}, nil
}

// TurnParser turns the judge's per-turn input block into a GameState. Base
// positions are fixed at construction; health and mana are taken from each
// turn's input and committed only once the whole turn parsed.
type TurnParser struct {
	src          TokenSource
	state        ParseState
	remaining    int
	turn         int
	myBase       model.Base
	opponentBase model.Base
}

// NewTurnParser prepares a parser for the match described by setup.
// opponentBase may be nil, in which case the opponent base stays unlocated.
func NewTurnParser(src TokenSource, setup model.Setup, opponentBase *model.Point) *TurnParser {
	p := &TurnParser{
		src:          src,
		myBase:       model.Base{Owner: model.Mine, Pos: setup.MyBase, Located: true},
		opponentBase: model.Base{Owner: model.Opponent},
	}
	if opponentBase != nil {
		p.opponentBase.Pos = *opponentBase
		p.opponentBase.Located = true
	}
	return p
}

// State reports where the parser stopped; after an error it names the state
// the failure happened in.
func (p *TurnParser) State() ParseState { return p.state }

// Turns returns how many turns have been parsed so far.
func (p *TurnParser) Turns() int { return p.turn }

// Next blocks until a whole turn has been read. It returns ipc.ErrClosed when
// the channel closes between turns; every other error is a protocol violation
// or an I/O failure and the turn must be discarded.
func (p *TurnParser) Next() (model.GameState, error) {
	gs := model.GameState{
		Turn:         p.turn + 1,
		MyBase:       p.myBase,
		OpponentBase: p.opponentBase,
	}
	p.state = AwaitingMyBaseUpdate
	p.remaining = 0

	for p.state != TurnReady {
		tokens, err := p.src.ReadTokens()
		if err != nil {
			if p.state == AwaitingMyBaseUpdate && errors.Is(err, ipc.ErrClosed) {
				return model.GameState{}, err
			}
			return model.GameState{}, fmt.Errorf("turn %d, %s: %w", gs.Turn, p.state, truncated(err))
		}
		if err := p.step(tokens, &gs); err != nil {
			return model.GameState{}, fmt.Errorf("turn %d, %s: %w", gs.Turn, p.state, err)
		}
	}

	p.turn = gs.Turn
	p.myBase = gs.MyBase
	p.opponentBase = gs.OpponentBase
	return gs, nil
}

func (p *TurnParser) step(tokens []string, gs *model.GameState) error {
	switch p.state {
	case AwaitingMyBaseUpdate:
		if err := gs.MyBase.ApplyStatus(tokens); err != nil {
			return err
		}
		p.state = AwaitingEnemyBaseUpdate

	case AwaitingEnemyBaseUpdate:
		if err := gs.OpponentBase.ApplyStatus(tokens); err != nil {
			return err
		}
		p.state = AwaitingEntityCount

	case AwaitingEntityCount:
		n, err := model.ParseCount("entityCount", tokens)
		if err != nil {
			return err
		}
		p.remaining = n
		gs.Units = make([]model.Unit, 0, min(n, maxPrealloc))
		if n == 0 {
			p.state = TurnReady
		} else {
			p.state = AwaitingEntityLines
		}

	case AwaitingEntityLines:
		u, err := model.ParseUnit(tokens)
		if err != nil {
			return fmt.Errorf("entity %d: %w", len(gs.Units)+1, err)
		}
		gs.Units = append(gs.Units, u)
		p.remaining--
		if p.remaining == 0 {
			p.state = TurnReady
		}

	default:
		return fmt.Errorf("unexpected parser state %s", p.state)
	}
	return nil
}

// maxPrealloc caps the slice capacity taken from an untrusted entity count.
const maxPrealloc = 256

// truncated reclassifies a closed channel inside a block as a protocol
// violation: the judge promised more lines than it sent.
func truncated(err error) error {
	if errors.Is(err, ipc.ErrClosed) {
		return fmt.Errorf("input ended early: %w", model.ErrProtocolViolation)
	}
	return err
}
