// Package bot wires the storefront services to the Telegram transport:
// commands, button actions, and the checkout conversation.
package bot

import (
	"errors"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	coreconfig "github.com/candylab/sweetbot/core/config"
	coretelegram "github.com/candylab/sweetbot/core/telegram"
	"github.com/candylab/sweetbot/core/telegram/router"
	"github.com/candylab/sweetbot/core/telegram/state"
	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/service"
	"github.com/candylab/sweetbot/internal/storage"
)

// App aggregates services and session state behind the Telegram handlers.
type App struct {
	cfg      *coreconfig.Config
	sessions state.Manager
	catalog  *service.Catalog
	cart     *service.Cart
	checkout *service.Checkout
	orders   *service.Orders
}

// New wires services on top of an open database connection.
func New(cfg *coreconfig.Config, db *sqlx.DB) *App {
	sessions := state.NewMemoryManager()
	products := storage.NewProducts(db)
	carts := storage.NewCarts(db)
	orderRepo := storage.NewOrders(db)
	defaultLang := cfg.Shop.DefaultLanguage
	i18n.DefaultLang = defaultLang

	return &App{
		cfg:      cfg,
		sessions: sessions,
		catalog:  service.NewCatalog(products, products),
		cart:     service.NewCart(products, carts, defaultLang),
		checkout: service.NewCheckout(sessions, products, carts, orderRepo, defaultLang),
		orders:   service.NewOrders(orderRepo, cfg.Telegram.AdminID),
	}
}

// TelegramRunOptions assembles the registry, routes, and middleware chain.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()
	a.registerCommands(reg)
	if err := a.registerActions(reg); err != nil {
		return coretelegram.RunOptions{}, err
	}
	reg.SetTextFallback(a.UnknownText())
	reg.SetActionNotFound(a.UnknownCallback())

	routes := []coretelegram.Route{
		router.CallbackRoute(reg, router.CallbackOptions{}),
	}
	routes = append(routes, router.TextRoutes(a, reg, router.TextOptions{})...)
	routes = append(routes, router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
		OnAdminReject: func(c tele.Context) error {
			return c.Send(i18n.T(a.langOf(c.Sender().ID), "only_admin"))
		},
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
	}, nil
}

// langOf returns the user's selected language, or the shop default.
func (a *App) langOf(userID int64) string {
	if lang := a.sessions.GetLang(userID); lang != "" {
		return lang
	}
	return a.cfg.Shop.DefaultLanguage
}

func (a *App) supportedLang(lang string) bool {
	for _, l := range a.cfg.Shop.Languages {
		if l == lang {
			return i18n.Supported(lang)
		}
	}
	return false
}

// reportError sends the short user-facing acknowledgment for a domain error
// and passes the error on for the handler summary log. Unknown errors are
// propagated without a user message.
func (a *App) reportError(c tele.Context, lang string, err error) error {
	var key string
	switch {
	case errors.Is(err, service.ErrEmptyCart):
		key = "empty_cart"
	case errors.Is(err, service.ErrProductNotFound):
		key = "not_found"
	case errors.Is(err, service.ErrCheckoutNotStarted):
		key = "checkout_not_started"
	case errors.Is(err, service.ErrOrderNotFound):
		key = "order_not_found"
	case errors.Is(err, service.ErrForbidden):
		key = "only_admin"
	default:
		return err
	}
	_ = c.Send(i18n.T(lang, key))
	return err
}
