package strategy

import (
	"math/rand"
	"testing"

	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
)

func testRNG() *rand.Rand { return rand.New(rand.NewSource(1)) }

func baseCtx() engine.CurrentHandContext {
	return engine.CurrentHandContext{
		Street:          engine.Flop,
		SmallBlind:      1,
		PotTotal:        10,
		RoundHighestSet: 0,
		Self: engine.PlayerView{
			ID:   1,
			Cash: 100,
		},
	}
}

func TestBase_Decide_ChecksWhenNoBetAndNoPredicates(t *testing.T) {
	b := NewBase("test", Predicates{})
	action := b.Decide(baseCtx())
	if action.Kind != engine.ActionCheck {
		t.Errorf("expected check with no bet and no predicates, got %v", action.Kind)
	}
}

func TestBase_Decide_FoldsWhenFacingBetAndShouldCallFalse(t *testing.T) {
	preds := Predicates{
		FlopShouldCall: func(ctx engine.CurrentHandContext) bool { return false },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.RoundHighestSet = 10
	action := b.Decide(ctx)
	if action.Kind != engine.ActionFold {
		t.Errorf("expected fold, got %v", action.Kind)
	}
}

func TestBase_Decide_CallsWhenFacingBetAndShouldCallTrue(t *testing.T) {
	preds := Predicates{
		FlopShouldCall: func(ctx engine.CurrentHandContext) bool { return true },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.RoundHighestSet = 10
	action := b.Decide(ctx)
	if action.Kind != engine.ActionCall {
		t.Errorf("expected call, got %v", action.Kind)
	}
}

func TestBase_Decide_BetsWhenNotFacingBetAndShouldBet(t *testing.T) {
	preds := Predicates{
		FlopShouldBet: func(ctx engine.CurrentHandContext) bool { return true },
		FlopBetAmount: func(ctx engine.CurrentHandContext) int { return 5 },
	}
	b := NewBase("test", preds)
	action := b.Decide(baseCtx())
	if action.Kind != engine.ActionBet || action.Amount != 5 {
		t.Errorf("expected bet 5, got %v %d", action.Kind, action.Amount)
	}
}

func TestBase_Decide_RaisesWhenFacingBetAndShouldRaise(t *testing.T) {
	preds := Predicates{
		FlopShouldRaise: func(ctx engine.CurrentHandContext) bool { return true },
		FlopRaiseAmount: func(ctx engine.CurrentHandContext) int { return 30 },
		FlopShouldCall:  func(ctx engine.CurrentHandContext) bool { return true },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.RoundHighestSet = 10
	action := b.Decide(ctx)
	if action.Kind != engine.ActionRaise || action.Amount != 30 {
		t.Errorf("expected raise to 30, got %v %d", action.Kind, action.Amount)
	}
}

func TestBase_Decide_PreflopChecksOptionWhenNoRaiseAndShouldCall(t *testing.T) {
	preds := Predicates{
		PreflopShouldCall: func(ctx engine.CurrentHandContext) bool { return true },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.Street = engine.Preflop
	action := b.Decide(ctx)
	if action.Kind != engine.ActionCheck {
		t.Errorf("expected a preflop check (the option) when already matched, got %v", action.Kind)
	}
}

func TestBase_Decide_PreflopRaisesFacingABet(t *testing.T) {
	preds := Predicates{
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int { return 6 },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.Street = engine.Preflop
	ctx.RoundHighestSet = 2
	action := b.Decide(ctx)
	if action.Kind != engine.ActionRaise || action.Amount != 6 {
		t.Errorf("expected a raise to 6 facing the big blind, got %v %d", action.Kind, action.Amount)
	}
}

func TestBase_Decide_PreflopOpenRaisesWhenUnopened(t *testing.T) {
	preds := Predicates{
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int { return 6 },
	}
	b := NewBase("test", preds)
	ctx := baseCtx()
	ctx.Street = engine.Preflop
	ctx.RoundHighestSet = 0
	action := b.Decide(ctx)
	if action.Kind != engine.ActionBet || action.Amount != 6 {
		t.Errorf("expected an open-raise rendered as Bet(6) when unopened this round, got %v %d", action.Kind, action.Amount)
	}
}

func TestRegistry_New(t *testing.T) {
	rng := testRNG()
	for _, name := range Names() {
		s := New(name, rng)
		if s == nil {
			t.Errorf("expected a non-nil strategy for %q", name)
			continue
		}
		if s.Name() != name {
			t.Errorf("expected strategy name %q, got %q", name, s.Name())
		}
	}
}

func TestRegistry_UnknownName(t *testing.T) {
	if s := New("nonexistent", testRNG()); s != nil {
		t.Errorf("expected nil for an unregistered strategy name, got %v", s)
	}
}

func TestUltraTight_FoldsWithoutPremium(t *testing.T) {
	s := NewUltraTight()
	ctx := baseCtx()
	ctx.RoundHighestSet = 10
	action := s.Decide(ctx)
	if action.Kind != engine.ActionFold {
		t.Errorf("expected ultra-tight to fold a non-premium hand facing a bet, got %v", action.Kind)
	}
}

func TestUltraTight_RaisesWithSet(t *testing.T) {
	s := NewUltraTight()
	ctx := baseCtx()
	ctx.Street = engine.Preflop
	ctx.Self.Postflop.Set = true
	action := s.Decide(ctx)
	if action.Kind != engine.ActionBet && action.Kind != engine.ActionRaise {
		t.Errorf("expected ultra-tight to raise preflop holding a set, got %v", action.Kind)
	}
}
