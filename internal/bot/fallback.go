package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/telegram/ui"
)

var _ ui.FallbackProvider = (*App)(nil)

// UnknownText nudges the user back to the main menu when a message matches
// neither an active dialog nor a known command.
func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.sendMainMenu(c, a.langOf(c.Sender().ID))
	}
}

// UnknownCallback handles button presses whose payload no longer resolves,
// typically keyboards from messages sent before a deploy.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return a.sendMainMenu(c, a.langOf(c.Sender().ID))
	}
}
