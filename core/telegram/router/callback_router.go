package router

import (
	"time"

	tg "github.com/candylab/sweetbot/core/telegram"
	"github.com/candylab/sweetbot/core/telegram/actions"
	"github.com/candylab/sweetbot/core/telegram/middleware"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// CallbackOptions customises fallback behaviour for callbacks.
type CallbackOptions struct {
	NotFound tele.HandlerFunc
}

// CallbackRoute returns the single callback dispatcher. It decodes the raw
// callback payload as verb_argument against the registered verbs and invokes
// the matching handler with the argument stored on the context.
func CallbackRoute(reg *tg.Registry, opts CallbackOptions) tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		if c.Callback() == nil {
			return nil
		}

		_ = c.Respond()

		data := actions.Raw(c)
		verb, arg, ok := actions.Match(data, reg.HasAction)
		if !ok {
			fallback := reg.ActionNotFound()
			if fallback == nil {
				fallback = opts.NotFound
			}
			extras := []slog.Attr{
				slog.String("action", data),
				slog.String("reason", "not_found"),
			}
			return handleWithSummary(c, "callback.unknown", start, "", "", func() error {
				if fallback != nil {
					return fallback(c)
				}
				return nil
			}, extras...)
		}

		actions.StoreArg(c, arg)
		actionHandler, _ := reg.GetAction(verb)
		name := "callback." + normalizeHandlerName(verb)
		extras := []slog.Attr{slog.String("action", data)}
		return handleWithSummary(c, name, start, "", "", func() error {
			return actionHandler(c)
		}, extras...)
	}
	return tg.Route{
		Endpoint: tele.OnCallback,
		Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
	}
}
