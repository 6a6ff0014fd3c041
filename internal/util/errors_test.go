package util

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestAccountError(t *testing.T) {
	baseErr := errors.New("token validation failed")
	accountErr := WrapAccountError("main", baseErr)

	if accountErr == nil {
		t.Fatal("expected error, got nil")
	}

	expectedMsg := `account "main": token validation failed`
	if accountErr.Error() != expectedMsg {
		t.Errorf("expected %q, got %q", expectedMsg, accountErr.Error())
	}

	// Test unwrapping
	if !errors.Is(accountErr, baseErr) {
		t.Error("expected account error to wrap base error")
	}

	var target *AccountError
	if !errors.As(accountErr, &target) || target.Account != "main" {
		t.Errorf("expected errors.As to find the account, got %+v", target)
	}

	// Test nil wrapping
	nilErr := WrapAccountError("test", nil)
	if nilErr != nil {
		t.Errorf("expected nil, got %v", nilErr)
	}
}

func TestMultiError(t *testing.T) {
	t.Run("empty multi-error", func(t *testing.T) {
		m := &MultiError{}
		if m.ErrorOrNil() != nil {
			t.Error("expected nil for empty multi-error")
		}
	})

	t.Run("single error", func(t *testing.T) {
		err := errors.New("test error")
		m := NewMultiError([]error{err})

		if m.Error() != "test error" {
			t.Errorf("expected %q, got %q", "test error", m.Error())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		errors := []error{
			errors.New("error 1"),
			errors.New("error 2"),
			errors.New("error 3"),
		}
		m := NewMultiError(errors)

		msg := m.Error()
		if !strings.Contains(msg, "3 errors occurred") {
			t.Errorf("expected message to contain '3 errors occurred', got %q", msg)
		}
		if !strings.Contains(msg, "error 1") {
			t.Errorf("expected message to contain 'error 1', got %q", msg)
		}
	})

	t.Run("filtering nil errors", func(t *testing.T) {
		errors := []error{
			errors.New("error 1"),
			nil,
			errors.New("error 2"),
			nil,
		}
		m := NewMultiError(errors)

		if len(m.Errors) != 2 {
			t.Errorf("expected 2 errors, got %d", len(m.Errors))
		}
	})

	t.Run("add errors", func(t *testing.T) {
		m := &MultiError{}
		m.Add(errors.New("error 1"))
		m.Add(nil) // Should not be added
		m.Add(errors.New("error 2"))

		if len(m.Errors) != 2 {
			t.Errorf("expected 2 errors, got %d", len(m.Errors))
		}
	})

	t.Run("many errors truncation", func(t *testing.T) {
		m := &MultiError{}
		for i := 0; i < 20; i++ {
			m.Add(fmt.Errorf("error %d", i+1))
		}

		msg := m.Error()
		if !strings.Contains(msg, "and 10 more errors") {
			t.Errorf("expected truncation message, got %q", msg)
		}
	})
}

func TestValidationError(t *testing.T) {
	t.Run("with value", func(t *testing.T) {
		err := NewValidationError("downloadPath", "", "path must not be empty")
		expectedMsg := `validation failed for field "downloadPath" (value: ): path must not be empty`
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
	})

	t.Run("without value", func(t *testing.T) {
		err := NewValidationError("name", nil, "name is required")
		expectedMsg := `validation failed for field "name": name is required`
		if err.Error() != expectedMsg {
			t.Errorf("expected %q, got %q", expectedMsg, err.Error())
		}
		if !errors.Is(err, ErrInvalidConfig) {
			t.Error("expected validation error to match ErrInvalidConfig")
		}
	})
}

func TestRetryableError(t *testing.T) {
	baseErr := errors.New("temporary failure")

	t.Run("with retry after", func(t *testing.T) {
		err := NewRetryableError(baseErr, 30)
		if !strings.Contains(err.Error(), "retry after 30s") {
			t.Errorf("expected retry after message, got %q", err.Error())
		}

		if !IsRetryable(err) {
			t.Error("expected error to be retryable")
		}

		if !errors.Is(err, baseErr) {
			t.Error("expected error to wrap base error")
		}
	})

	t.Run("without retry after", func(t *testing.T) {
		err := NewRetryableError(baseErr, 0)
		if !strings.Contains(err.Error(), "retryable error") {
			t.Errorf("expected retryable error message, got %q", err.Error())
		}
	})

	t.Run("non-retryable error", func(t *testing.T) {
		err := errors.New("permanent failure")
		if IsRetryable(err) {
			t.Error("expected error to not be retryable")
		}
	})
}

func TestErrorCheckers(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		checker func(error) bool
		want    bool
	}{
		{"timeout", ErrTimeout, IsTimeout, true},
		{"wrapped timeout", fmt.Errorf("fetch: %w", ErrTimeout), IsTimeout, true},
		{"cancelled", ErrCancelled, IsCancelled, true},
		{"not found", ErrNotFound, IsNotFound, true},
		{"account not found", WrapAccountError("x", ErrAccountNotFound), IsNotFound, true},
		{"unauthorized", fmt.Errorf("get user: %w", ErrUnauthorized), IsUnauthorized, true},
		{"plain error is not timeout", errors.New("boom"), IsTimeout, false},
		{"timeout is not not-found", ErrTimeout, IsNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.checker(tt.err); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFriendlyError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		contains string
	}{
		{"nil error", nil, ""},
		{"timeout", ErrTimeout, "timed out"},
		{"cancelled", ErrCancelled, "cancelled"},
		{"no accounts", ErrNoAccounts, "blox add account"},
		{"account not found", WrapAccountError("alt", ErrAccountNotFound), "blox status"},
		{"account exists", ErrAccountExists, "different name"},
		{"unauthorized", ErrUnauthorized, ".ROBLOSECURITY"},
		{"private inventory", ErrPrivateInventory, "private"},
		{"rate limited", NewRetryableError(ErrRateLimited, 5), "Too many requests"},
		{"not found", ErrNotFound, "check the identifier"},
		{"unknown file type", ErrUnknownFileType, "nothing was written"},
		{"validation", NewValidationError("accounts", nil, "bad"), "Invalid configuration"},
		{"unknown", errors.New("something odd"), "something odd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FriendlyError(tt.err)
			if tt.contains == "" {
				if got != "" {
					t.Errorf("expected empty message, got %q", got)
				}
				return
			}
			if !strings.Contains(got, tt.contains) {
				t.Errorf("expected %q to contain %q", got, tt.contains)
			}
		})
	}
}

func TestCombineErrors(t *testing.T) {
	if err := CombineErrors(nil, nil); err != nil {
		t.Errorf("expected nil, got %v", err)
	}

	err := CombineErrors(nil, ErrNotFound, ErrTimeout)
	if err == nil {
		t.Fatal("expected combined error")
	}
	if !errors.Is(err, ErrNotFound) || !errors.Is(err, ErrTimeout) {
		t.Errorf("expected combined error to match both sentinels, got %v", err)
	}
}

func TestWrapErrorf(t *testing.T) {
	if WrapErrorf(nil, "ignored") != nil {
		t.Error("expected nil for nil error")
	}

	err := WrapErrorf(ErrNotFound, "asset %d", 1818)
	if err.Error() != "asset 1818: not found" {
		t.Errorf("unexpected message %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("expected wrapped sentinel")
	}
}
