// Package command runs the console commands attached to kits.
package command

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the dispatcher
type Config struct {
	Logger logrus.FieldLogger
}

// Dispatcher routes a command line to the handler registered for its first word
type Dispatcher struct {
	logger logrus.FieldLogger

	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewDispatcher creates a dispatcher with no handlers
func NewDispatcher(cfg *Config) *Dispatcher {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Dispatcher{
		logger:   logging.OrDefault(cfg.Logger),
		handlers: make(map[string]Handler),
	}
}

// Register binds a verb to a handler, replacing any previous one. Verbs are
// case-insensitive and may be written with a leading slash.
func (d *Dispatcher) Register(verb string, handler Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[normalizeVerb(verb)] = handler
}

// Execute runs the line. Unknown verbs are logged and reported as
// ErrUnknownCommand.
func (d *Dispatcher) Execute(ctx context.Context, source Source, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ErrEmptyCommand
	}

	verb := normalizeVerb(fields[0])

	d.mu.RLock()
	handler, ok := d.handlers[verb]
	d.mu.RUnlock()

	entry := d.logger.WithFields(logrus.Fields{
		"source":  source.Name,
		"command": verb,
	})

	if !ok {
		entry.Warn("unknown command")
		return fmt.Errorf("%w: %s", ErrUnknownCommand, verb)
	}

	entry.Debug("executing command")
	return handler(ctx, source, fields[1:])
}

func normalizeVerb(verb string) string {
	return strings.ToLower(strings.TrimPrefix(verb, "/"))
}

// SayHandler returns a handler that sends its arguments, joined by spaces,
// to the sink
func SayHandler(sink func(ctx context.Context, message string) error) Handler {
	return func(ctx context.Context, _ Source, args []string) error {
		if len(args) == 0 {
			return ErrMissingArgs
		}
		return sink(ctx, strings.Join(args, " "))
	}
}
