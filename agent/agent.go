package agent

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
	"github.com/lsangers/codingame/rules"
)

// Agent owns the decision loop for one match.
type Agent struct {
	Conn         *ipc.Connection
	Policy       rules.Policy
	OpponentBase *model.Point // from config; nil leaves the opponent base unlocated
	MatchID      string

	log             *slog.Logger
	prev            *stateSnapshot
	heroesPerPlayer int // from setup; 0 until Run has read it
}

func New(conn *ipc.Connection, policy rules.Policy, opponentBase *model.Point) *Agent {
	id := uuid.NewString()[:8]
	return &Agent{
		Conn:         conn,
		Policy:       policy,
		OpponentBase: opponentBase,
		MatchID:      id,
		log:          slog.Default().With("match", id),
	}
}

// Run plays the match until the judge closes the input (nil error), ctx is
// cancelled between turns, or the input breaks the protocol.
func (a *Agent) Run(ctx context.Context) error {
	setup, err := ParseSetup(a.Conn)
	if errors.Is(err, ipc.ErrClosed) {
		a.log.Info("input closed before setup")
		return nil
	}
	if err != nil {
		return err
	}
	a.log.Info("match setup", "base", setup.MyBase, "heroesPerPlayer", setup.HeroesPerPlayer,
		"opponentBaseKnown", a.OpponentBase != nil)

	a.heroesPerPlayer = setup.HeroesPerPlayer

	parser := NewTurnParser(a.Conn, setup, a.OpponentBase)
	for {
		if err := ctx.Err(); err != nil {
			a.log.Info("match interrupted", "turns", parser.Turns(), "reason", err)
			return nil
		}

		gs, err := parser.Next()
		if errors.Is(err, ipc.ErrClosed) {
			a.log.Info("match ended", "turns", parser.Turns())
			return nil
		}
		if err != nil {
			return fmt.Errorf("line %d: %w", a.Conn.Line(), err)
		}

		if err := a.PlayTurn(gs); err != nil {
			return err
		}
	}
}

// Serve runs the match in the background and returns as soon as it ends or
// ctx is cancelled. On cancellation a read still blocked on the judge is
// abandoned, so the caller should exit rather than reuse the Agent.
func (a *Agent) Serve(ctx context.Context) error {
	done := make(chan error, 1)
	go func() {
		done <- a.Run(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		a.log.Info("shutting down", "reason", context.Cause(ctx))
		return nil
	}
}

// PlayTurn runs the policy for one parsed turn and sends exactly one command
// per controlled hero, in snapshot order.
func (a *Agent) PlayTurn(gs model.GameState) error {
	heroes := gs.Heroes(model.Mine)
	threats := gs.ThreatsTo(model.Mine)
	if a.heroesPerPlayer > 0 && len(heroes) != a.heroesPerPlayer {
		a.log.Debug("hero count differs from setup", "turn", gs.Turn,
			"visible", len(heroes), "expected", a.heroesPerPlayer)
	}

	cur := takeSnapshot(gs)
	for _, ev := range detectEvents(a.prev, cur) {
		a.log.Info("turn event", "kind", ev.Kind, "turn", ev.Turn, "detail", ev.Detail)
	}
	a.prev = &cur

	a.log.Debug("turn parsed",
		"turn", gs.Turn,
		"health", gs.MyBase.Health,
		"mana", gs.MyBase.Mana,
		"opponentHealth", gs.OpponentBase.Health,
		"opponentMana", gs.OpponentBase.Mana,
		"units", len(gs.Units),
		"heroes", len(heroes),
		"threats", len(threats),
	)

	cmds := a.Policy.Commands(rules.Situation{
		Turn:         gs.Turn,
		Heroes:       heroes,
		Threats:      threats,
		MyBase:       gs.MyBase,
		OpponentBase: gs.OpponentBase,
	})
	cmds = a.fit(gs.Turn, cmds, len(heroes))

	if err := a.Conn.Send(cmds); err != nil {
		return fmt.Errorf("turn %d: %w", gs.Turn, err)
	}
	return nil
}

// fit enforces one command per hero: missing commands become WAIT, extras
// are dropped.
func (a *Agent) fit(turn int, cmds []ipc.Command, heroes int) []ipc.Command {
	if len(cmds) == heroes {
		for i, c := range cmds {
			if c == nil {
				cmds[i] = ipc.WaitCommand{}
			}
		}
		return cmds
	}
	a.log.Warn("policy returned wrong number of commands", "turn", turn, "got", len(cmds), "want", heroes)
	out := make([]ipc.Command, heroes)
	for i := range out {
		if i < len(cmds) && cmds[i] != nil {
			out[i] = cmds[i]
		} else {
			out[i] = ipc.WaitCommand{}
		}
	}
	return out
}
