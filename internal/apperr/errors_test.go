package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestExpected(t *testing.T) {
	for _, err := range []error{ErrNotFound, ErrNothingToDelete, ErrNoSelection, ErrCancelled} {
		if !Expected(fmt.Errorf("wrapped: %w", err)) {
			t.Errorf("Expected(%v) = false, want true", err)
		}
	}
	if Expected(ErrConfig) {
		t.Error("config error must not be expected")
	}
	if Expected(errors.New("disk on fire")) {
		t.Error("arbitrary error must not be expected")
	}
}
