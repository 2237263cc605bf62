package cache

import (
	"testing"
	"time"
)

func TestSetGet(t *testing.T) {
	c := New(true)

	etag := c.Set("players:all:false", []byte(`[]`), time.Minute)
	if etag == "" {
		t.Fatal("Set returned empty etag")
	}

	data, gotETag, ok := c.Get("players:all:false")
	if !ok {
		t.Fatal("Get missed a fresh entry")
	}
	if string(data) != `[]` {
		t.Errorf("data = %q, want %q", data, `[]`)
	}
	if gotETag != etag {
		t.Errorf("etag = %q, want %q", gotETag, etag)
	}
}

func TestExpiry(t *testing.T) {
	c := New(true)
	c.Set("stats", []byte(`{}`), -time.Second)

	if _, _, ok := c.Get("stats"); ok {
		t.Error("Get returned an expired entry")
	}
}

func TestInvalidatePrefix(t *testing.T) {
	c := New(true)
	c.Set("players:all:false", []byte(`a`), time.Minute)
	c.Set("players:bowler:true", []byte(`b`), time.Minute)
	c.Set("news:all", []byte(`c`), time.Minute)

	c.Invalidate("players")

	if _, _, ok := c.Get("players:all:false"); ok {
		t.Error("players entry survived invalidation")
	}
	if _, _, ok := c.Get("players:bowler:true"); ok {
		t.Error("players entry survived invalidation")
	}
	if _, _, ok := c.Get("news:all"); !ok {
		t.Error("unrelated entry was invalidated")
	}
}

func TestDisabled(t *testing.T) {
	c := New(false)
	c.Set("settings", []byte(`{}`), time.Minute)

	if _, _, ok := c.Get("settings"); ok {
		t.Error("disabled cache served an entry")
	}
}

func TestETagMatch(t *testing.T) {
	etag := ComputeETag([]byte(`{"team_name":"NFCC"}`))

	tests := []struct {
		name        string
		ifNoneMatch string
		want        bool
	}{
		{"exact match", etag, true},
		{"wildcard", "*", true},
		{"no header", "", false},
		{"stale etag", `W/"0000"`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckETagMatch(tt.ifNoneMatch, etag); got != tt.want {
				t.Errorf("CheckETagMatch(%q) = %v, want %v", tt.ifNoneMatch, got, tt.want)
			}
		})
	}
}
