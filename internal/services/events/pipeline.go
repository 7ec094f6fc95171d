// Package events dispatches redemption hooks in registration order.
package events

import (
	"context"
	"sync"

	"github.com/KirkDiggler/kits/internal/common/logging"
	"github.com/sirupsen/logrus"
)

// Config holds configuration for the pipeline
type Config struct {
	Logger logrus.FieldLogger
}

// Pipeline runs pre-redeem hooks and post/failed listeners synchronously
type Pipeline struct {
	logger logrus.FieldLogger

	mu     sync.RWMutex
	pre    []PreRedeemHook
	post   []Listener
	failed []Listener
}

// New creates an empty Pipeline
func New(cfg *Config) *Pipeline {
	if cfg == nil {
		cfg = &Config{}
	}

	return &Pipeline{
		logger: logging.OrDefault(cfg.Logger),
	}
}

// OnPreRedeem registers a hook that runs before items are granted
func (p *Pipeline) OnPreRedeem(hook PreRedeemHook) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pre = append(p.pre, hook)
}

// OnPostRedeem registers a listener for successful redemptions
func (p *Pipeline) OnPostRedeem(listener Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.post = append(p.post, listener)
}

// OnFailedRedeem registers a listener for failed redemptions
func (p *Pipeline) OnFailedRedeem(listener Listener) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failed = append(p.failed, listener)
}

// PreRedeem runs the hooks in order. Each hook sees the overrides of the
// hooks before it; the first veto stops the chain.
func (p *Pipeline) PreRedeem(ctx context.Context, event *PreRedeemEvent) *PreRedeemResult {
	p.mu.RLock()
	hooks := append([]PreRedeemHook(nil), p.pre...)
	p.mu.RUnlock()

	result := &PreRedeemResult{}
	for _, hook := range hooks {
		decision := p.callHook(ctx, hook, event)
		if decision == nil {
			continue
		}

		if decision.Stacks != nil {
			event.Stacks = decision.Stacks
		}
		if decision.Commands != nil {
			event.Commands = decision.Commands
		}

		if decision.Cancel {
			result.Cancelled = true
			result.CancelMessage = decision.Message
			break
		}
	}

	result.Stacks = event.Stacks
	result.Commands = event.Commands
	return result
}

// PostRedeem tells every post listener about a successful redemption
func (p *Pipeline) PostRedeem(ctx context.Context, event *RedeemEvent) {
	p.mu.RLock()
	listeners := append([]Listener(nil), p.post...)
	p.mu.RUnlock()

	p.notify(ctx, listeners, event)
}

// FailedRedeem tells every failed listener about a failed redemption
func (p *Pipeline) FailedRedeem(ctx context.Context, event *RedeemEvent) {
	p.mu.RLock()
	listeners := append([]Listener(nil), p.failed...)
	p.mu.RUnlock()

	p.notify(ctx, listeners, event)
}

// callHook runs a hook; a panicking hook is logged and ignored
func (p *Pipeline) callHook(ctx context.Context, hook PreRedeemHook, event *PreRedeemEvent) (decision *PreRedeemDecision) {
	defer func() {
		if r := recover(); r != nil {
			p.logger.WithFields(logrus.Fields{
				"redemption_id": event.RedemptionID,
				"panic":         r,
			}).Error("pre-redeem hook panicked")
			decision = nil
		}
	}()

	return hook(ctx, event)
}

func (p *Pipeline) notify(ctx context.Context, listeners []Listener, event *RedeemEvent) {
	for _, listener := range listeners {
		func() {
			defer func() {
				if r := recover(); r != nil {
					p.logger.WithFields(logrus.Fields{
						"redemption_id": event.RedemptionID,
						"status":        event.Status,
						"panic":         r,
					}).Error("redeem listener panicked")
				}
			}()
			listener(ctx, event)
		}()
	}
}
