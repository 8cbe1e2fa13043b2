package apperrors

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorsAreDistinguishable(t *testing.T) {
	cause := errors.New("connection refused")

	tests := []struct {
		name string
		err  error
		as   func(error) bool
	}{
		{
			name: "validation",
			err:  NewValidation("bad folder reference %q", "xyz"),
			as: func(err error) bool {
				var target *ValidationError
				return errors.As(err, &target)
			},
		},
		{
			name: "upstream",
			err:  NewUpstream("drive listing failed", cause),
			as: func(err error) bool {
				var target *UpstreamError
				return errors.As(err, &target)
			},
		},
		{
			name: "empty result",
			err:  NewEmptyResult("no eligible images"),
			as: func(err error) bool {
				var target *EmptyResultError
				return errors.As(err, &target)
			},
		},
		{
			name: "persistence",
			err:  NewPersistence("batch insert", cause),
			as: func(err error) bool {
				var target *PersistenceError
				return errors.As(err, &target)
			},
		},
		{
			name: "invalid state",
			err:  NewInvalidState("selections already submitted"),
			as: func(err error) bool {
				var target *InvalidStateError
				return errors.As(err, &target)
			},
		},
		{
			name: "not found",
			err:  NewNotFound("gallery"),
			as: func(err error) bool {
				var target *NotFoundError
				return errors.As(err, &target)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.as(tt.err) {
				t.Errorf("errors.As failed for %T", tt.err)
			}
			// Wrapping must not hide the type
			wrapped := fmt.Errorf("while syncing: %w", tt.err)
			if !tt.as(wrapped) {
				t.Errorf("errors.As failed for wrapped %T", tt.err)
			}
			// A type must not match a different type
			for _, other := range tests {
				if other.name == tt.name {
					continue
				}
				if other.as(tt.err) {
					t.Errorf("%T matched as %s", tt.err, other.name)
				}
			}
		})
	}
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("duplicate key")
	err := NewPersistence("batch insert", cause)
	if !errors.Is(err, cause) {
		t.Error("persistence error should unwrap to its cause")
	}

	up := NewUpstream("page 3 failed", cause)
	if !errors.Is(up, cause) {
		t.Error("upstream error should unwrap to its cause")
	}
}
