package bot

import (
	"errors"
	"testing"

	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/service"
)

// sendRecorder implements just enough of tele.Context to capture outgoing
// text.
type sendRecorder struct {
	tele.Context
	sender *tele.User
	sent   []string
	store  map[string]any
}

func newSendRecorder(userID int64) *sendRecorder {
	return &sendRecorder{
		sender: &tele.User{ID: userID},
		store:  make(map[string]any),
	}
}

func (c *sendRecorder) Sender() *tele.User  { return c.sender }
func (c *sendRecorder) Chat() *tele.Chat    { return &tele.Chat{ID: c.sender.ID} }
func (c *sendRecorder) Update() tele.Update { return tele.Update{ID: 1} }
func (c *sendRecorder) Get(key string) any  { return c.store[key] }
func (c *sendRecorder) Set(key string, v any) {
	c.store[key] = v
}

func (c *sendRecorder) Send(what interface{}, opts ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func TestPayPressOutsideDialogAnswersNotStarted(t *testing.T) {
	a := testApp()
	c := newSendRecorder(7)

	err := a.onPayStateLost(c)
	if !errors.Is(err, service.ErrCheckoutNotStarted) {
		t.Fatalf("err = %v, want ErrCheckoutNotStarted", err)
	}

	want := i18n.T("uz", "checkout_not_started")
	if len(c.sent) != 1 || c.sent[0] != want {
		t.Errorf("sent = %v, want [%q]", c.sent, want)
	}
}

func TestPayPressUsesSelectedLanguage(t *testing.T) {
	a := testApp()
	a.sessions.SetLang(7, "en")
	c := newSendRecorder(7)

	if err := a.onPayStateLost(c); !errors.Is(err, service.ErrCheckoutNotStarted) {
		t.Fatalf("err = %v, want ErrCheckoutNotStarted", err)
	}

	want := i18n.T("en", "checkout_not_started")
	if len(c.sent) != 1 || c.sent[0] != want {
		t.Errorf("sent = %v, want [%q]", c.sent, want)
	}
}
