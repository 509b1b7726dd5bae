package middleware

import (
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/telegram/state"
)

type fakeStates map[int64]state.State

func (f fakeStates) GetState(userID int64) state.State {
	if st, ok := f[userID]; ok {
		return st
	}
	return state.StateIdle
}

// gateContext implements just enough of tele.Context for the state gate.
type gateContext struct {
	tele.Context
	sender *tele.User
	store  map[string]any
}

func newGateContext(userID int64) *gateContext {
	return &gateContext{
		sender: &tele.User{ID: userID},
		store:  make(map[string]any),
	}
}

func (c *gateContext) Sender() *tele.User  { return c.sender }
func (c *gateContext) Chat() *tele.Chat    { return &tele.Chat{ID: c.sender.ID} }
func (c *gateContext) Update() tele.Update { return tele.Update{ID: 1} }
func (c *gateContext) Get(key string) any  { return c.store[key] }
func (c *gateContext) Set(key string, v any) {
	c.store[key] = v
}

func TestStateGateMatchRunsHandler(t *testing.T) {
	states := fakeStates{7: state.State("awaiting_payment")}

	var ran bool
	h := State(states, state.State("awaiting_payment"), nil)(func(c tele.Context) error {
		ran = true
		return nil
	})

	if err := h(newGateContext(7)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if !ran {
		t.Error("handler did not run on matching state")
	}
}

func TestStateGateMismatchRunsFallback(t *testing.T) {
	states := fakeStates{}

	var ran, answered bool
	h := State(states, state.State("awaiting_payment"), func(c tele.Context) error {
		answered = true
		return nil
	})(func(c tele.Context) error {
		ran = true
		return nil
	})

	if err := h(newGateContext(7)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if ran {
		t.Error("handler ran despite idle state")
	}
	if !answered {
		t.Error("mismatch handler did not run; the press would vanish silently")
	}
}

func TestStateGateMismatchWithoutFallbackDrops(t *testing.T) {
	states := fakeStates{7: state.State("awaiting_name")}

	var ran bool
	h := State(states, state.State("awaiting_payment"), nil)(func(c tele.Context) error {
		ran = true
		return nil
	})

	if err := h(newGateContext(7)); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if ran {
		t.Error("handler ran despite mismatched state")
	}
}
