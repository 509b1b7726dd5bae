package router

import (
	"time"

	tg "github.com/candylab/sweetbot/core/telegram"
	"github.com/candylab/sweetbot/core/telegram/middleware"

	tele "gopkg.in/telebot.v4"
)

// Conversation is the minimal interface for an in-progress dialog consumer.
// Free-form text and shared contacts are handed to it before any other
// routing while the user has an active dialog state.
type Conversation interface {
	InProgress(userID int64) bool
	HandleText(c tele.Context) error
	HandleContact(c tele.Context) error
}

// TextOptions controls fallback behaviour for text and contact updates.
type TextOptions struct {
	UnknownText tele.HandlerFunc
}

// TextRoutes builds handlers for text and contact routing. Dialog state wins
// over command lookup so a user typing their delivery address is never
// misread as an unknown command.
func TextRoutes(conv Conversation, reg *tg.Registry, opts TextOptions) []tg.Route {
	handler := func(c tele.Context) error {
		start := time.Now()
		text := c.Text()

		if conv != nil && conv.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "dialog", start, "", "", func() error {
				return conv.HandleText(c)
			})
		}

		if reg != nil {
			if key, cmd, ok := reg.LookupCommand(text); ok && cmd.Handler != nil {
				name := normalizeHandlerName(key)
				return handleWithSummary(c, name, start, "", "", func() error {
					return cmd.Handler(c)
				})
			}
		}

		if reg != nil {
			if fb := reg.TextFallback(); fb != nil {
				return handleWithSummary(c, "fallback", start, "", "", func() error {
					return fb(c)
				})
			}
		}

		if opts.UnknownText != nil {
			return handleWithSummary(c, "unknown_text", start, "", "", func() error {
				return opts.UnknownText(c)
			})
		}

		logHandlerSummary(c, "unknown_text", start, "skip", "ok", nil)
		return nil
	}

	contactHandler := func(c tele.Context) error {
		start := time.Now()
		if conv != nil && conv.InProgress(c.Sender().ID) {
			return handleWithSummary(c, "dialog_contact", start, "", "", func() error {
				return conv.HandleContact(c)
			})
		}
		logHandlerSummary(c, "unexpected_contact", start, "skip", "ok", nil)
		return nil
	}

	return []tg.Route{
		{
			Endpoint: tele.OnText,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(handler)),
		},
		{
			Endpoint: tele.OnContact,
			Handler:  middleware.RecoverMiddleware(middleware.LoggerMiddleware(contactHandler)),
		},
	}
}
