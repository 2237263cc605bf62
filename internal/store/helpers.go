package store

import "github.com/google/uuid"

// newID returns a fresh row ID. The schema uses uuid primary keys so
// content created offline can be merged without collisions.
func newID() string {
	return uuid.NewString()
}

// nilEmpty converts empty strings to nil so optional text columns stay
// NULL instead of collecting empty strings.
func nilEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nilZero converts zero ints to nil for optional numeric columns.
func nilZero(n int) interface{} {
	if n == 0 {
		return nil
	}
	return n
}
