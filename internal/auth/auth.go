// Package auth carries the request-scoped site context: the settings
// singleton and the caller's admin flag, both computed once per request
// instead of once per widget.
package auth

import (
	"context"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/store"
)

// SiteContext is attached to every request by the api middleware.
type SiteContext struct {
	Settings *model.Settings
	IsAdmin  bool
}

type ctxKey struct{}

// WithSiteContext attaches a SiteContext to the request context.
func WithSiteContext(ctx context.Context, sc SiteContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, sc)
}

// FromContext returns the request's SiteContext. The zero value (no
// settings, not admin) comes back when the middleware didn't run.
func FromContext(ctx context.Context) SiteContext {
	if sc, ok := ctx.Value(ctxKey{}).(SiteContext); ok {
		return sc
	}
	return SiteContext{}
}

// CheckAdmin reports whether the email is on the admin allow-list.
// Identity is asserted upstream; this is only the authorization lookup.
// No store or no email means not an admin, as does a failed lookup —
// authorization fails closed.
func CheckAdmin(ctx context.Context, st store.Store, email string) bool {
	if st == nil || email == "" {
		return false
	}
	ok, err := st.IsAdmin(ctx, email)
	if err != nil {
		return false
	}
	return ok
}
