// mediahub/client/mutate.go
package client

import (
	"context"
	"errors"
)

// mutation is the one optimistic-write shape every entity type shares:
// guard, validate, apply locally, persist remotely, and on failure revert
// plus best-effort authoritative reload.
type mutation struct {
	op       Operation
	validate func() error
	apply    func()
	revert   func()
	call     func(ctx context.Context) error
	reload   func(ctx context.Context) error
}

// run drives a mutation through the shared lifecycle. A guard or validation
// failure performs zero local or remote mutation. A remote failure reverts
// the optimistic change before surfacing, then attempts to reload the
// affected collection from the store.
func (ws *Workspace) run(ctx context.Context, m mutation) error {
	if !Allows(m.op, ws.gw.Level()) {
		return permissionDenied(m.op)
	}
	if m.validate != nil {
		if err := m.validate(); err != nil {
			var ve *ValidationError
			var nf *NotFoundError
			if errors.As(err, &ve) || errors.As(err, &nf) {
				return err
			}
			return &ValidationError{Reason: err.Error()}
		}
	}

	ws.mu.Lock()
	m.apply()
	ws.mu.Unlock()

	if err := m.call(ctx); err != nil {
		ws.mu.Lock()
		m.revert()
		ws.mu.Unlock()

		var re *RemoteError
		if errors.As(err, &re) && m.reload != nil {
			if rerr := m.reload(ctx); rerr != nil {
				ws.logger.Warn("Authoritative reload after failed mutation failed too",
					"op", string(m.op), "error", rerr)
			}
		}
		return err
	}
	return nil
}
