package resolver

import (
	"errors"

	"github.com/newfriendscc/clubsite/internal/store"
)

// outcome classifies a store response before it collapses to the public
// default-substitution contract. Keeping the three cases distinct lets
// the resolver log real failures without ever surfacing them to callers.
type outcome int

const (
	outcomeOK outcome = iota
	outcomeEmpty
	outcomeFailed
)

func classify(err error) outcome {
	switch {
	case err == nil:
		return outcomeOK
	case errors.Is(err, store.ErrNotFound):
		return outcomeEmpty
	default:
		return outcomeFailed
	}
}

// report logs the non-success outcomes. Failed reads log at warn so an
// operator can see them; empty reads are routine and log at debug.
func (r *Resolver) report(op string, o outcome, err error) {
	switch o {
	case outcomeFailed:
		r.log.Warn("store read failed, serving default", "op", op, "error", err)
	case outcomeEmpty:
		r.log.Debug("store read returned no rows", "op", op)
	}
}
