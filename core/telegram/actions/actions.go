// Package actions implements the `<verb>_<argument>` callback payload
// encoding used by inline buttons. Verbs may themselves contain the
// separator (admin_mark_shipped_17), so resolution always prefers the
// longest registered verb.
package actions

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v4"
)

// Sep separates the verb from its argument on the wire.
const Sep = "_"

const argContextKey = "action_arg"

// Format joins a verb and an argument into the wire form. An empty
// argument yields the bare verb.
func Format(verb, arg string) string {
	if arg == "" {
		return verb
	}
	return verb + Sep + arg
}

// FormatInt64 is Format for numeric identifiers.
func FormatInt64(verb string, id int64) string {
	return Format(verb, strconv.FormatInt(id, 10))
}

// Match resolves raw callback data against the set of registered verbs.
// It tries the longest verb first, so data "admin_mark_shipped_17" resolves
// to verb "admin_mark_shipped" with argument "17" even though the verb
// contains separators, and an argument may itself contain separators once
// the verb is fixed.
func Match(data string, registered func(verb string) bool) (verb, arg string, ok bool) {
	data = strings.TrimSpace(data)
	if data == "" || registered == nil {
		return "", "", false
	}
	tokens := strings.Split(data, Sep)
	for k := len(tokens); k >= 1; k-- {
		candidate := strings.Join(tokens[:k], Sep)
		if registered(candidate) {
			return candidate, strings.Join(tokens[k:], Sep), true
		}
	}
	return "", "", false
}

// StoreArg saves the parsed argument on the telebot context for the handler.
func StoreArg(c tele.Context, arg string) {
	if c != nil {
		c.Set(argContextKey, arg)
	}
}

// Arg returns the argument parsed from the pressed button's payload.
func Arg(c tele.Context) string {
	if c == nil {
		return ""
	}
	if v := c.Get(argContextKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// ArgInt64 parses the stored argument as a decimal identifier.
func ArgInt64(c tele.Context) (int64, error) {
	return strconv.ParseInt(Arg(c), 10, 64)
}

// Raw returns the untouched callback data for logging.
func Raw(c tele.Context) string {
	cb := c.Callback()
	if cb == nil {
		return ""
	}
	// telebot prefixes its own unique-encoded callbacks with \f; buttons
	// built by this bot carry plain data.
	return strings.TrimPrefix(cb.Data, "\f")
}
