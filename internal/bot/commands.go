package bot

import (
	"fmt"

	tele "gopkg.in/telebot.v4"

	coretelegram "github.com/candylab/sweetbot/core/telegram"
	"github.com/candylab/sweetbot/core/telegram/commands"
	"github.com/candylab/sweetbot/core/telegram/helpers"
	"github.com/candylab/sweetbot/internal/i18n"
)

func (a *App) registerCommands(reg *coretelegram.Registry) {
	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.onStart,
		Description: "Start the conversation",
	})
	reg.RegisterCommand("/lang", commands.Command{
		Handler:     a.onLangCommand,
		Description: "Choose language",
	})
	reg.RegisterCommand("/menu", commands.Command{
		Handler:     a.onMenu,
		Description: "Show the main menu",
	})
	reg.RegisterCommand("/cart", commands.Command{
		Handler:     a.onCartCommand,
		Description: "Show your cart",
	})
	reg.RegisterCommand("/orders", commands.Command{
		Handler:     a.onOrders,
		Description: "List recent orders",
		AdminOnly:   true,
	})
	reg.RegisterCommand("/addprod", commands.Command{
		Handler:     a.onAddProduct,
		Description: "Insert a product from a JSON payload",
		AdminOnly:   true,
	})
}

func (a *App) onStart(c tele.Context) error {
	helpers.WithHandler(c, "start")
	lang := a.langOf(c.Sender().ID)
	if err := helpers.SendText(c, i18n.T(lang, "welcome")); err != nil {
		return err
	}
	return a.sendMainMenu(c, lang)
}

func (a *App) onLangCommand(c tele.Context) error {
	helpers.WithHandler(c, "lang")
	return a.sendLangMenu(c)
}

func (a *App) onMenu(c tele.Context) error {
	helpers.WithHandler(c, "menu")
	return a.sendMainMenu(c, a.langOf(c.Sender().ID))
}

func (a *App) onCartCommand(c tele.Context) error {
	helpers.WithHandler(c, "cart")
	return a.showCart(c)
}

func (a *App) onOrders(c tele.Context) error {
	ctx := helpers.WithHandler(c, "orders")
	userID := c.Sender().ID

	orders, err := a.orders.Recent(ctx, userID, 20)
	if err != nil {
		return a.reportError(c, a.langOf(userID), err)
	}
	if len(orders) == 0 {
		return helpers.SendText(c, "Orders not found.")
	}
	for i := range orders {
		o := &orders[i]
		text := a.adminOrderText("", o, true)
		if err := helpers.SendText(c, text, &tele.SendOptions{ReplyMarkup: adminOrderButtons(o.ID)}); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) onAddProduct(c tele.Context) error {
	ctx := helpers.WithHandler(c, "addprod")

	payload := c.Message().Payload
	product, err := a.catalog.AddProduct(ctx, payload)
	if err != nil {
		_ = helpers.SendText(c, "Error parsing payload.")
		return err
	}
	return helpers.SendText(c, fmt.Sprintf("Product saved: %d", product.ID))
}

func (a *App) sendMainMenu(c tele.Context, lang string) error {
	return helpers.SendText(c, i18n.T(lang, "choose_cat"), &tele.SendOptions{ReplyMarkup: a.mainMenu(lang)})
}

func (a *App) sendLangMenu(c tele.Context) error {
	return helpers.SendText(c, i18n.ChooseLanguagePrompt, &tele.SendOptions{ReplyMarkup: a.langMenu()})
}

func (a *App) showCart(c tele.Context) error {
	ctx := helpers.BuildContext(c)
	userID := c.Sender().ID
	lang := a.langOf(userID)

	view, err := a.cart.View(ctx, userID, lang)
	if err != nil {
		return a.reportError(c, lang, err)
	}
	return helpers.SendText(c, a.cartText(view, lang), &tele.SendOptions{ReplyMarkup: a.cartButtons(lang)})
}
