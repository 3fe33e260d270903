package rules

import (
	"log/slog"
	"math"

	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

// Built-in action names usable in the `do` field of a rule.
const (
	ActHold      = "hold"
	ActGuard     = "guard"
	ActIntercept = "intercept"
)

var actions = map[string]ActionFunc{
	ActHold:      ActionHold,
	ActGuard:     ActionGuard,
	ActIntercept: ActionIntercept,
}

// guardDistance is how far from the base centre guard posts sit.
const guardDistance = 3000

// guardSpread is the angular gap between neighbouring guard posts.
const guardSpread = math.Pi / 8

func ActionHold(env HeroEnv) (ipc.Command, bool) {
	return ipc.WaitCommand{}, true
}

// ActionGuard sends the hero to its post on an arc in front of the base,
// facing the map centre. Posts fan out by hero index.
func ActionGuard(env HeroEnv) (ipc.Command, bool) {
	post := guardPost(env.State.MyBase.Pos, env.Index, len(env.State.Heroes))
	slog.Debug("guarding", "hero", env.Hero.ID, "post", post)
	return ipc.MoveCommand{X: post.X, Y: post.Y}, true
}

// ActionIntercept moves toward where the threat closest to the base will be
// next turn. It does not apply when nothing threatens the base.
func ActionIntercept(env HeroEnv) (ipc.Command, bool) {
	target, ok := nearest(env.State.MyBase.Pos, env.State.Threats)
	if !ok {
		return nil, false
	}
	dest := target.Next().Clamp()
	slog.Debug("intercepting", "hero", env.Hero.ID, "target", target.ID, "dest", dest)
	return ipc.MoveCommand{X: dest.X, Y: dest.Y}, true
}

func guardPost(base model.Point, index, count int) model.Point {
	center := model.Point{X: model.MapWidth / 2, Y: model.MapHeight / 2}
	angle := math.Atan2(float64(center.Y-base.Y), float64(center.X-base.X))
	if count > 1 {
		angle += (float64(index) - float64(count-1)/2) * guardSpread
	}
	p := model.Point{
		X: base.X + int(math.Round(guardDistance*math.Cos(angle))),
		Y: base.Y + int(math.Round(guardDistance*math.Sin(angle))),
	}
	return p.Clamp()
}
