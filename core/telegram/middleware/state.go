package middleware

import (
	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/logger"
	tghelpers "github.com/candylab/sweetbot/core/telegram/helpers"
	"github.com/candylab/sweetbot/core/telegram/state"
)

// StateGetter is the minimal interface required from a session manager.
type StateGetter interface {
	GetState(userID int64) state.State
}

// State returns a middleware that runs the handler only when the user is in
// the expected dialog state. On a mismatch the update goes to the mismatch
// handler instead; a nil mismatch handler drops the update silently.
func State(mgr StateGetter, expected state.State, mismatch tele.HandlerFunc) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			userID := c.Sender().ID
			current := mgr.GetState(userID)
			ctx := tghelpers.BuildContext(c)
			if current == expected {
				logger.Debug(ctx, "tg", "fsm.match",
					slog.Int64("user_id", userID),
					slog.String("state", string(current)),
					slog.String("expected", string(expected)),
				)
				return next(c)
			}
			logger.Debug(ctx, "tg", "fsm.mismatch",
				slog.Int64("user_id", userID),
				slog.String("state", string(current)),
				slog.String("expected", string(expected)),
			)
			if mismatch != nil {
				return mismatch(c)
			}
			return nil
		}
	}
}
