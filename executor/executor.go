// Package executor implements the action executor capability consumed by the
// wallet: given an approved (target, value, payload) triple it moves the
// custodial value to the target and applies the payload as call data.
package executor

import (
	"fmt"
	"sync"
)

// Handler processes calls addressed to a single registered target.
type Handler interface {
	HandleAction(value uint64, payload []byte) error
}

// Registry dispatches executed actions by target identifier and keeps per
// target accounting of the value delivered. Targets without a registered
// handler accept plain value transfers but reject non-empty payloads.
type Registry struct {
	mu       sync.Mutex
	handlers map[string]Handler
	received map[string]uint64
}

func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
		received: make(map[string]uint64),
	}
}

func (r *Registry) Register(target string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[target] = handler
}

// ExecuteAction satisfies the wallet's ActionExecutor capability. The value
// is credited to the target only when the handler accepts the call, so a
// failed action leaves the registry's accounting untouched.
func (r *Registry) ExecuteAction(target string, value uint64, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	handler, ok := r.handlers[target]
	if !ok && len(payload) > 0 {
		return fmt.Errorf("target \"%s\" cannot accept a payload", target)
	}

	if handler != nil {
		if err := handler.HandleAction(value, payload); err != nil {
			return fmt.Errorf("target \"%s\" rejected the call: %w", target, err)
		}
	}

	r.received[target] += value
	return nil
}

// Received returns the total value delivered to a target so far.
func (r *Registry) Received(target string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.received[target]
}
