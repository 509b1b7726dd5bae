package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/telegram/helpers"
	"github.com/candylab/sweetbot/core/telegram/keyboard"
	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/service"
)

// InProgress reports whether the user is inside the checkout dialog, so the
// text router hands their messages here before trying command lookup.
func (a *App) InProgress(userID int64) bool {
	return a.checkout.InProgress(userID)
}

func (a *App) HandleText(c tele.Context) error {
	ctx := helpers.WithHandler(c, "checkout.text")
	ev, err := a.checkout.HandleText(ctx, c.Sender().ID, c.Text())
	if err != nil {
		return err
	}
	return a.prompt(c, ev)
}

func (a *App) HandleContact(c tele.Context) error {
	contact := c.Message().Contact
	if contact == nil {
		return nil
	}
	ctx := helpers.WithHandler(c, "checkout.contact")
	ev, err := a.checkout.HandleContact(ctx, c.Sender().ID, contact.PhoneNumber)
	if err != nil {
		return err
	}
	return a.prompt(c, ev)
}

func (a *App) prompt(c tele.Context, ev service.Event) error {
	lang := a.langOf(c.Sender().ID)
	switch ev {
	case service.EventAskPhone:
		return helpers.SendText(c, i18n.T(lang, "send_phone"),
			&tele.SendOptions{ReplyMarkup: contactRequest(lang)})
	case service.EventAskAddress:
		return helpers.SendText(c, i18n.T(lang, "enter_address"),
			&tele.SendOptions{ReplyMarkup: keyboard.RemoveKeyboard()})
	case service.EventAskPayment:
		return helpers.SendText(c, i18n.T(lang, "choose_payment"),
			&tele.SendOptions{ReplyMarkup: a.payButtons(lang)})
	}
	return nil
}
