package rules

import (
	"strings"
	"testing"

	"github.com/lsangers/codingame/config"
	"github.com/lsangers/codingame/ipc"
	"github.com/lsangers/codingame/model"
)

func situation() Situation {
	return Situation{
		Turn: 12,
		Heroes: []model.Unit{
			{ID: 0, Kind: model.MyHero, Pos: model.Point{X: 1000, Y: 1000}},
			{ID: 1, Kind: model.MyHero, Pos: model.Point{X: 4000, Y: 1000}},
			{ID: 2, Kind: model.MyHero, Pos: model.Point{X: 1000, Y: 4000}},
		},
		MyBase:       model.Base{Owner: model.Mine, Pos: model.Point{X: 0, Y: 0}, Health: 3, Mana: 20, Located: true},
		OpponentBase: model.Base{Owner: model.Opponent, Health: 3},
	}
}

func TestDefaultRulesCompile(t *testing.T) {
	engine, err := NewEngine(DefaultRules())
	if err != nil {
		t.Fatalf("NewEngine(DefaultRules()) failed: %v", err)
	}
	if len(engine.rules) != 2 {
		t.Errorf("expected 2 rules, got %d", len(engine.rules))
	}
	for i := 1; i < len(engine.rules); i++ {
		if engine.rules[i].Priority > engine.rules[i-1].Priority {
			t.Errorf("rules not sorted by priority: %s (%d) > %s (%d)",
				engine.rules[i].Name, engine.rules[i].Priority,
				engine.rules[i-1].Name, engine.rules[i-1].Priority)
		}
	}
}

func TestHoldPolicy(t *testing.T) {
	s := situation()
	cmds := HoldPolicy{}.Commands(s)
	if len(cmds) != len(s.Heroes) {
		t.Fatalf("got %d commands, want %d", len(cmds), len(s.Heroes))
	}
	for i, c := range cmds {
		if c.String() != "WAIT" {
			t.Errorf("command %d = %q, want WAIT", i, c)
		}
	}
	if got := (HoldPolicy{}).Commands(Situation{}); len(got) != 0 {
		t.Errorf("no heroes should give no commands, got %v", got)
	}
}

func TestEngineGuardsWithoutThreats(t *testing.T) {
	engine, err := NewEngine(DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	cmds := engine.Commands(situation())
	if len(cmds) != 3 {
		t.Fatalf("got %d commands, want 3", len(cmds))
	}
	seen := make(map[string]bool)
	for i, c := range cmds {
		mv, ok := c.(ipc.MoveCommand)
		if !ok {
			t.Fatalf("command %d = %T, want MoveCommand", i, c)
		}
		p := model.Point{X: mv.X, Y: mv.Y}
		if !p.InBounds() {
			t.Errorf("guard post %v off the map", p)
		}
		if d := p.Dist(model.Point{}); d < guardDistance-2 || d > guardDistance+2 {
			t.Errorf("guard post %v is %.0f from base, want ~%d", p, d, guardDistance)
		}
		seen[c.String()] = true
	}
	if len(seen) != 3 {
		t.Errorf("expected distinct guard posts, got %v", seen)
	}
}

func TestEngineInterceptsThreatInBase(t *testing.T) {
	engine, err := NewEngine(DefaultRules())
	if err != nil {
		t.Fatal(err)
	}
	s := situation()
	s.Threats = []model.Unit{
		{ID: 30, Pos: model.Point{X: 9000, Y: 4000}, VX: -300, VY: -100, ThreatFor: model.ThreatToMyBase},
		{ID: 31, Pos: model.Point{X: 2000, Y: 2000}, VX: -200, VY: -200, ThreatFor: model.ThreatToMyBase},
	}
	for i, c := range engine.Commands(s) {
		if got := c.String(); got != "MOVE 1800 1800" {
			t.Errorf("hero %d: got %q, want MOVE 1800 1800", i, got)
		}
	}
}

func TestEngineFallsThroughInapplicableAction(t *testing.T) {
	engine, err := NewEngine([]*Rule{
		{Name: "always-intercept", Priority: 5, ConditionSrc: `true`, Action: ActionIntercept},
	})
	if err != nil {
		t.Fatal(err)
	}
	for i, c := range engine.Commands(situation()) {
		if c.String() != "WAIT" {
			t.Errorf("hero %d: got %q, want WAIT when nothing to intercept", i, c)
		}
	}
}

func TestEngineConditionUsesHeroFields(t *testing.T) {
	engine, err := NewEngine([]*Rule{
		{Name: "first-guards", Priority: 2, ConditionSrc: `Index == 0 && Hero.ID == 0`, Action: ActionGuard},
		{Name: "rest-hold", Priority: 1, ConditionSrc: `Mana() >= 10 && CanCast()`, Action: ActionHold},
	})
	if err != nil {
		t.Fatal(err)
	}
	cmds := engine.Commands(situation())
	if _, ok := cmds[0].(ipc.MoveCommand); !ok {
		t.Errorf("hero 0: got %T, want MoveCommand", cmds[0])
	}
	for _, c := range cmds[1:] {
		if c.String() != "WAIT" {
			t.Errorf("got %q, want WAIT", c)
		}
	}
}

func TestEngineRejectsBadRules(t *testing.T) {
	tests := []struct {
		name string
		rule *Rule
		want string
	}{
		{"syntax", &Rule{Name: "bad", ConditionSrc: `ThreatCount( >`, Action: ActionHold}, "compile rule"},
		{"not bool", &Rule{Name: "num", ConditionSrc: `ThreatCount()`, Action: ActionHold}, "compile rule"},
		{"unknown name", &Rule{Name: "nope", ConditionSrc: `Nope() > 1`, Action: ActionHold}, "compile rule"},
		{"no action", &Rule{Name: "empty", ConditionSrc: `true`}, "no action"},
	}
	for _, tc := range tests {
		_, err := NewEngine([]*Rule{tc.rule})
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q does not mention %q", tc.name, err, tc.want)
		}
	}
}

func TestNewPolicy(t *testing.T) {
	p, err := NewPolicy(config.Default())
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := p.(HoldPolicy); !ok {
		t.Errorf("default policy = %T, want HoldPolicy", p)
	}

	p, err = NewPolicy(config.Config{Policy: config.PolicyRules})
	if err != nil {
		t.Fatal(err)
	}
	if e, ok := p.(*Engine); !ok || len(e.rules) != len(DefaultRules()) {
		t.Errorf("rules policy without defs = %T, want default Engine", p)
	}

	p, err = NewPolicy(config.Config{
		Policy: config.PolicyRules,
		Rules:  []config.RuleDef{{Name: "hold", Priority: 1, When: "true", Do: "Hold"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	if e := p.(*Engine); len(e.rules) != 1 || e.rules[0].Name != "hold" {
		t.Errorf("unexpected rules %v", e.rules)
	}

	_, err = NewPolicy(config.Config{
		Policy: config.PolicyRules,
		Rules:  []config.RuleDef{{Name: "x", When: "true", Do: "fireball"}},
	})
	if err == nil || !strings.Contains(err.Error(), "unknown action") {
		t.Errorf("expected unknown action error, got %v", err)
	}

	if _, err := NewPolicy(config.Config{Policy: "chaos"}); err == nil {
		t.Error("expected error for unknown policy")
	}
}

func TestPolicyFunc(t *testing.T) {
	var p Policy = PolicyFunc(func(s Situation) []ipc.Command {
		return []ipc.Command{ipc.MoveCommand{X: s.Turn, Y: s.Turn}}
	})
	if got := p.Commands(Situation{Turn: 3})[0].String(); got != "MOVE 3 3" {
		t.Errorf("got %q", got)
	}
}

func TestNewPolicyFromTestdata(t *testing.T) {
	cfg, err := config.Load("../config/testdata/rules.yaml")
	if err != nil {
		t.Fatal(err)
	}
	p, err := NewPolicy(cfg)
	if err != nil {
		t.Fatalf("NewPolicy: %v", err)
	}
	s := situation()
	s.Threats = []model.Unit{{ID: 40, Pos: model.Point{X: 12000, Y: 6000}, ThreatFor: model.ThreatToMyBase}}
	cmds := p.Commands(s)
	if got := cmds[0].String(); got != "MOVE 12000 6000" {
		t.Errorf("hero 0: got %q, want intercept of the far threat", got)
	}
	if _, ok := cmds[1].(ipc.MoveCommand); !ok || cmds[1].String() == cmds[0].String() {
		t.Errorf("hero 1 should guard, got %q", cmds[1])
	}
}
