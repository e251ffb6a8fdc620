package actions

import (
	"errors"
	"fmt"
	"log"
	"strings"
)

// ErrUnknownAction is reported when no handler is registered for an action
var ErrUnknownAction = errors.New("unknown action")

// Handler executes one action with its keyword arguments
type Handler func(kwargs map[string]any) (any, error)

// Hook observes successful executions; it runs after the handler
type Hook func(action Action, kwargs map[string]any)

// ErrorCallback receives every failed execution with a redacted copy of
// the arguments
type ErrorCallback func(err error, action Action, kwargs map[string]any)

// Bus routes actions to registered handlers. Execute never panics and
// never propagates handler errors to the caller; failures go to the log
// and the error callback with secrets redacted.
type Bus struct {
	handlers map[Action]Handler
	hooks    []Hook
	onError  ErrorCallback
}

// NewBus creates an empty action bus with an optional error callback
func NewBus(onError ErrorCallback) *Bus {
	return &Bus{handlers: map[Action]Handler{}, onError: onError}
}

// Register binds a handler to an action, replacing any previous one
func (b *Bus) Register(action Action, handler Handler) {
	b.handlers[action] = handler
}

// AddHook appends a post-execution hook
func (b *Bus) AddHook(hook Hook) {
	b.hooks = append(b.hooks, hook)
}

// Execute runs the action's handler. The returned value is the handler's
// result, or nil when the handler failed or the action is unknown.
func (b *Bus) Execute(action Action, kwargs map[string]any) any {
	handler, ok := b.handlers[action]
	if !ok {
		b.fail(fmt.Errorf("%w: %s", ErrUnknownAction, action), action, kwargs)
		return nil
	}

	result, err := func() (res any, err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("handler panic: %v", r)
			}
		}()
		return handler(kwargs)
	}()
	if err != nil {
		b.fail(err, action, kwargs)
		return nil
	}

	for _, hook := range b.hooks {
		func() {
			defer func() {
				if r := recover(); r != nil {
					log.Printf("[WARN] hook panic on %s: %v", action, r)
				}
			}()
			hook(action, kwargs)
		}()
	}
	return result
}

func (b *Bus) fail(err error, action Action, kwargs map[string]any) {
	redacted := Redact(kwargs)
	log.Printf("[WARN] action %s failed: %v, args: %v", action, err, redacted)
	if b.onError != nil {
		b.onError(err, action, redacted)
	}
}

// Redact returns a copy of kwargs with secret-bearing values masked.
// A key counts as secret when it contains api_key, token or authorization.
func Redact(kwargs map[string]any) map[string]any {
	if kwargs == nil {
		return nil
	}
	res := make(map[string]any, len(kwargs))
	for k, v := range kwargs {
		if isSecretKey(k) {
			res[k] = "***"
			continue
		}
		res[k] = v
	}
	return res
}

func isSecretKey(key string) bool {
	lower := strings.ToLower(key)
	for _, marker := range []string{"api_key", "token", "authorization"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
