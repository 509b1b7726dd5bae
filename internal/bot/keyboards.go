package bot

import (
	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/telegram/actions"
	"github.com/candylab/sweetbot/core/telegram/keyboard"
	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/service"
)

// Action verbs carried in callback payloads. The payloads are stable wire
// data: keyboards from old messages must keep resolving after deploys.
const (
	actCategory    = "cat"
	actAdd         = "add"
	actLang        = "lang"
	actChooseLang  = "choose_lang"
	actViewCart    = "view_cart"
	actBackMain    = "back_main"
	actCheckout    = "checkout"
	actPay         = "pay"
	actAdminAccept = "admin_accept"
	actAdminShip   = "admin_mark_shipped"
)

func (a *App) mainMenu(lang string) *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(service.Categories)+2)
	for _, cat := range service.Categories {
		buttons = append(buttons, keyboard.InlineBtn{
			Text: i18n.T(lang, "cat_"+cat),
			Data: actions.Format(actCategory, cat),
		})
	}
	buttons = append(buttons,
		keyboard.InlineBtn{Text: i18n.T(lang, "view_cart"), Data: actViewCart},
		keyboard.InlineBtn{Text: i18n.T(lang, "language_change"), Data: actChooseLang},
	)
	return keyboard.InlineButtons(buttons)
}

func (a *App) langMenu() *tele.ReplyMarkup {
	buttons := make([]keyboard.InlineBtn, 0, len(a.cfg.Shop.Languages))
	for _, lang := range a.cfg.Shop.Languages {
		name := i18n.LanguageNames[lang]
		if name == "" {
			name = lang
		}
		buttons = append(buttons, keyboard.InlineBtn{
			Text: name,
			Data: actions.Format(actLang, lang),
		})
	}
	return keyboard.InlineButtonsNPerRow(buttons, 3)
}

func (a *App) productButtons(lang string, productID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: i18n.T(lang, "add_to_cart"), Data: actions.FormatInt64(actAdd, productID)},
		{Text: i18n.T(lang, "back"), Data: actBackMain},
	})
}

func (a *App) cartButtons(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: i18n.T(lang, "checkout"), Data: actCheckout},
		{Text: i18n.T(lang, "main_menu"), Data: actBackMain},
	})
}

func (a *App) payButtons(lang string) *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: i18n.T(lang, "pay_cash"), Data: actions.Format(actPay, "cash")},
		{Text: i18n.T(lang, "pay_card"), Data: actions.Format(actPay, "card")},
	})
}

func adminOrderButtons(orderID int64) *tele.ReplyMarkup {
	return keyboard.InlineButtonsRows([]keyboard.InlineBtn{
		{Text: "Accept", Data: actions.FormatInt64(actAdminAccept, orderID)},
		{Text: "Mark shipped", Data: actions.FormatInt64(actAdminShip, orderID)},
	})
}

func contactRequest(lang string) *tele.ReplyMarkup {
	return keyboard.ContactRequest(i18n.T(lang, "send_contact"))
}
