package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/newfriendscc/clubsite/internal/model"
	"github.com/newfriendscc/clubsite/internal/store"
)

type adminStore struct {
	store.Store
	isAdmin func(email string) (bool, error)
}

func (s *adminStore) IsAdmin(ctx context.Context, email string) (bool, error) {
	return s.isAdmin(email)
}

func TestSiteContextRoundTrip(t *testing.T) {
	sc := SiteContext{
		Settings: &model.Settings{TeamName: "New Friends Cricket Club"},
		IsAdmin:  true,
	}

	ctx := WithSiteContext(context.Background(), sc)
	got := FromContext(ctx)

	if got.Settings == nil || got.Settings.TeamName != sc.Settings.TeamName {
		t.Errorf("FromContext settings = %+v, want %+v", got.Settings, sc.Settings)
	}
	if !got.IsAdmin {
		t.Error("FromContext dropped the admin flag")
	}
}

func TestFromContextZeroValue(t *testing.T) {
	got := FromContext(context.Background())
	if got.Settings != nil || got.IsAdmin {
		t.Errorf("FromContext on bare context = %+v, want zero value", got)
	}
}

func TestCheckAdmin(t *testing.T) {
	ctx := context.Background()
	allow := &adminStore{isAdmin: func(email string) (bool, error) {
		return email == "admin@nfcc.com", nil
	}}

	tests := []struct {
		name  string
		st    store.Store
		email string
		want  bool
	}{
		{"listed admin", allow, "admin@nfcc.com", true},
		{"unlisted email", allow, "fan@example.com", false},
		{"empty email", allow, "", false},
		{"nil store", nil, "admin@nfcc.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckAdmin(ctx, tt.st, tt.email); got != tt.want {
				t.Errorf("CheckAdmin(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestCheckAdminFailsClosed(t *testing.T) {
	st := &adminStore{isAdmin: func(string) (bool, error) {
		return true, errors.New("connection refused")
	}}

	if CheckAdmin(context.Background(), st, "admin@nfcc.com") {
		t.Error("CheckAdmin granted access despite a lookup error")
	}
}
