package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"

	tele "gopkg.in/telebot.v4"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/core/telegram/commands"
)

// Registry holds bot commands and button action handlers.
// Actions are keyed by verb; incoming callback data is resolved with
// longest-verb-first matching (see the actions package).
type Registry struct {
	commands       map[string]commands.Command
	actions        map[string]tele.HandlerFunc
	actionsMu      sync.RWMutex
	actionNotFound tele.HandlerFunc
	textFallback   tele.HandlerFunc
}

// NewRegistry creates an empty Registry with default fallbacks.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]commands.Command),
		actions:  make(map[string]tele.HandlerFunc),
		actionNotFound: func(c tele.Context) error {
			_ = c.Respond(&tele.CallbackResponse{Text: "Unsupported action"})
			return nil
		},
	}
}

// RegisterCommand adds a new slash command.
func (r *Registry) RegisterCommand(name string, cmd commands.Command) {
	if r == nil || name == "" || cmd.Handler == nil || cmd.Description == "" {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "invalid"),
		)
		return
	}
	if name[0] != '/' {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.skip",
			slog.String("name", name),
			slog.String("reason", "no_slash_prefix"),
		)
		return
	}
	if _, exists := r.commands[name]; exists {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.command.duplicate",
			slog.String("name", name),
		)
		return
	}
	r.commands[name] = cmd
}

// ListCommands returns a slice of tele.Command, optionally filtering out hidden and admin-only commands.
func (r *Registry) ListCommands(visibleOnly bool) []tele.Command {
	var list []tele.Command
	for cmd, meta := range r.commands {
		if visibleOnly && (meta.Hidden || meta.AdminOnly) {
			continue
		}
		list = append(list, tele.Command{Text: cmd, Description: meta.Description})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Text < list[j].Text })
	return list
}

// LookupCommand searches for a command by name or its aliases and returns the canonical key with metadata if found.
func (r *Registry) LookupCommand(name string) (string, commands.Command, bool) {
	if !strings.HasPrefix(name, "/") {
		name = "/" + name
	}
	// Commands may carry a payload after the name, e.g. /addprod {...}.
	key := name
	if idx := strings.IndexByte(key, ' '); idx > 0 {
		key = key[:idx]
	}
	if cmd, ok := r.commands[key]; ok {
		return key, cmd, true
	}
	for canonical, cmd := range r.commands {
		for _, alias := range cmd.Aliases {
			if alias == key || "/"+alias == key {
				return canonical, cmd, true
			}
		}
	}
	return "", commands.Command{}, false
}

// Commands returns all registered commands.
func (r *Registry) Commands() map[string]commands.Command {
	return r.commands
}

// RegisterAction adds a button handler mapped to its verb.
func (r *Registry) RegisterAction(verb string, handler tele.HandlerFunc) error {
	if r == nil || verb == "" || handler == nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.action.skip",
			slog.String("verb", verb),
			slog.Bool("handler_nil", handler == nil),
		)
		return errors.New("invalid action registration")
	}
	r.actionsMu.Lock()
	defer r.actionsMu.Unlock()
	if _, exists := r.actions[verb]; exists {
		logger.TWire.LogAttrs(context.Background(), slog.LevelWarn, "register.action.duplicate",
			slog.String("verb", verb),
		)
		return fmt.Errorf("action already registered: %s", verb)
	}
	r.actions[verb] = handler
	return nil
}

// HasAction reports whether the verb is registered.
func (r *Registry) HasAction(verb string) bool {
	r.actionsMu.RLock()
	defer r.actionsMu.RUnlock()
	_, ok := r.actions[verb]
	return ok
}

// GetAction safely returns handler by verb.
func (r *Registry) GetAction(verb string) (tele.HandlerFunc, bool) {
	r.actionsMu.RLock()
	defer r.actionsMu.RUnlock()
	h, ok := r.actions[verb]
	return h, ok
}

// ListActions returns sorted verbs (for diagnostics).
func (r *Registry) ListActions() []string {
	r.actionsMu.RLock()
	defer r.actionsMu.RUnlock()
	names := make([]string, 0, len(r.actions))
	for k := range r.actions {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// SetActionNotFound replaces the fallback handler for unknown actions.
func (r *Registry) SetActionNotFound(h tele.HandlerFunc) {
	if h != nil {
		r.actionNotFound = h
	}
}

// ActionNotFound returns the current fallback action handler.
func (r *Registry) ActionNotFound() tele.HandlerFunc {
	return r.actionNotFound
}

// SetTextFallback sets a global fallback handler for unknown text messages.
func (r *Registry) SetTextFallback(h tele.HandlerFunc) {
	r.textFallback = h
}

// TextFallback returns the current text fallback handler.
func (r *Registry) TextFallback() tele.HandlerFunc {
	return r.textFallback
}

// SetupCommands sets the Telegram bot commands shown in the command menu.
func SetupCommands(bot *tele.Bot, reg *Registry) {
	visible := reg.ListCommands(true)
	if err := bot.SetCommands(visible); err != nil {
		logger.TWire.LogAttrs(context.Background(), slog.LevelError, "register.commands.set_failed",
			slog.String("err", err.Error()),
		)
	}
}
