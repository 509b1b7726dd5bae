package bot

import (
	"context"

	tele "gopkg.in/telebot.v4"

	coretelegram "github.com/candylab/sweetbot/core/telegram"
	"github.com/candylab/sweetbot/core/telegram/actions"
	"github.com/candylab/sweetbot/core/telegram/format"
	"github.com/candylab/sweetbot/core/telegram/helpers"
	"github.com/candylab/sweetbot/core/telegram/middleware"
	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/models"
	"github.com/candylab/sweetbot/internal/service"
)

func (a *App) registerActions(reg *coretelegram.Registry) error {
	// Payment buttons only make sense while the dialog waits for them. A
	// press with any other stage (stale keyboard, session lost to a
	// restart) is answered as an unstarted checkout.
	payHandler := middleware.State(a.sessions, service.StageAwaitingPayment, a.onPayStateLost)(a.onPay)

	for verb, handler := range map[string]tele.HandlerFunc{
		actCategory:    a.onCategory,
		actAdd:         a.onAddToCart,
		actLang:        a.onLangSelect,
		actChooseLang:  a.onChooseLang,
		actViewCart:    a.onViewCart,
		actBackMain:    a.onBackMain,
		actCheckout:    a.onCheckout,
		actPay:         payHandler,
		actAdminAccept: a.onAdminAccept,
		actAdminShip:   a.onAdminShip,
	} {
		if err := reg.RegisterAction(verb, handler); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) onCategory(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	lang := a.langOf(c.Sender().ID)
	category := actions.Arg(c)

	products, err := a.catalog.ListByCategory(ctx, category)
	if err != nil {
		return err
	}
	if len(products) == 0 {
		return helpers.SendText(c, i18n.T(lang, "not_found"))
	}

	for i := range products {
		p := &products[i]
		caption := a.productCaption(p, lang)
		markup := a.productButtons(lang, p.ID)
		image := format.DerefString(p.Image, "")
		if image != "" {
			if err := helpers.SendPhoto(c, image, caption, markup); err != nil {
				return err
			}
			continue
		}
		if err := helpers.SendMD(c, caption, markup); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) onAddToCart(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.langOf(userID)

	productID, err := actions.ArgInt64(c)
	if err != nil {
		return a.reportError(c, lang, service.ErrProductNotFound)
	}
	if err := a.cart.Add(ctx, userID, productID, lang); err != nil {
		return a.reportError(c, lang, err)
	}
	return helpers.SendText(c, i18n.T(lang, "added_cart"))
}

func (a *App) onLangSelect(c tele.Context) error {
	userID := c.Sender().ID
	lang := actions.Arg(c)
	if !a.supportedLang(lang) {
		return nil
	}
	a.sessions.SetLang(userID, lang)

	if err := helpers.SendText(c, i18n.T(lang, "welcome")); err != nil {
		return err
	}
	return a.sendMainMenu(c, lang)
}

// onChooseLang swaps the pressed menu message for the language picker; the
// picker's buttons then route to onLangSelect.
func (a *App) onChooseLang(c tele.Context) error {
	return helpers.EditOrSendMD(c, i18n.ChooseLanguagePrompt, a.langMenu())
}

func (a *App) onViewCart(c tele.Context) error {
	return a.showCart(c)
}

func (a *App) onBackMain(c tele.Context) error {
	return a.sendMainMenu(c, a.langOf(c.Sender().ID))
}

func (a *App) onCheckout(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.langOf(userID)

	if err := a.checkout.Start(ctx, userID); err != nil {
		return a.reportError(c, lang, err)
	}
	return helpers.SendText(c, i18n.T(lang, "enter_name"))
}

func (a *App) onPay(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.langOf(userID)

	method, ok := models.ParsePaymentMethod(actions.Arg(c))
	if !ok {
		return nil
	}

	order, err := a.checkout.Complete(ctx, userID, method)
	if err != nil {
		return a.reportError(c, lang, err)
	}

	if err := helpers.SendText(c, i18n.T(order.Lang, "order_received")); err != nil {
		return err
	}

	adminText := a.adminOrderText(i18n.T(order.Lang, "admin_notify"), order, false)
	return helpers.SendTo(c, a.cfg.Telegram.AdminID, adminText, adminOrderButtons(order.ID))
}

// onPayStateLost answers a payment press that arrives outside the payment
// stage, so the user is told to restart the checkout rather than ignored.
func (a *App) onPayStateLost(c tele.Context) error {
	return a.reportError(c, a.langOf(c.Sender().ID), service.ErrCheckoutNotStarted)
}

func (a *App) onAdminAccept(c tele.Context) error {
	return a.advanceOrder(c, "Order accepted.", a.orders.Accept)
}

func (a *App) onAdminShip(c tele.Context) error {
	return a.advanceOrder(c, "Marked shipped.", a.orders.MarkShipped)
}

func (a *App) advanceOrder(c tele.Context, ack string, advance func(ctx context.Context, actorID, orderID int64) (*models.Order, error)) error {
	ctx := helpers.BuildContext(c)
	actorID := c.Sender().ID
	lang := a.langOf(actorID)

	orderID, err := actions.ArgInt64(c)
	if err != nil {
		return a.reportError(c, lang, service.ErrOrderNotFound)
	}

	order, err := advance(ctx, actorID, orderID)
	if err != nil {
		return a.reportError(c, lang, err)
	}

	if msg := statusNotification(order); msg != "" {
		if err := helpers.SendTo(c, order.UserID, msg); err != nil {
			return err
		}
	}
	return helpers.SendText(c, ack)
}
