package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrUnknownMessageType.Error() != "unknown message type" {
		t.Errorf("ErrUnknownMessageType has unexpected message: %s", ErrUnknownMessageType.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrDuplicateMessage.Error() != "message already processed" {
		t.Errorf("ErrDuplicateMessage has unexpected message: %s", ErrDuplicateMessage.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"UnknownMessageType", ErrUnknownMessageType, 4001},
		{"MissingField", ErrMissingField, 4002},
		{"InvalidAmount", ErrInvalidAmount, 4003},
		{"DuplicateMessage", ErrDuplicateMessage, 4004},
		{"ConstraintViolation", ErrConstraintViolation, 4005},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"MissingCoefficient", ErrMissingCoefficient, 5001},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrMissingField), 4002},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestParseError(t *testing.T) {
	parseErr := NewParseError("gd_cards_drop", "awarded amount", ErrMissingField)

	expectedMsg := "parse error for message type gd_cards_drop: missing or invalid awarded amount: missing required field"
	if parseErr.Error() != expectedMsg {
		t.Errorf("ParseError.Error() = %s, want %s", parseErr.Error(), expectedMsg)
	}

	if !errors.Is(parseErr, ErrMissingField) {
		t.Error("ParseError should unwrap to ErrMissingField")
	}
	if !IsParseError(parseErr) {
		t.Error("IsParseError should recognize a ParseError")
	}
	if IsConfigurationError(parseErr) {
		t.Error("IsConfigurationError should not recognize a ParseError")
	}

	var typed *ParseError
	if !errors.As(parseErr, &typed) {
		t.Fatal("errors.As should extract *ParseError")
	}
	fields := typed.LogFields()
	if fields["message_type"] != "gd_cards_drop" || fields["field"] != "awarded amount" {
		t.Errorf("unexpected log fields: %v", fields)
	}
}

func TestConfigurationError(t *testing.T) {
	confErr := NewMissingCoefficientError("Roulette")

	expectedMsg := `configuration error for game "Roulette": no coefficient configured for game`
	if confErr.Error() != expectedMsg {
		t.Errorf("ConfigurationError.Error() = %s, want %s", confErr.Error(), expectedMsg)
	}

	if !errors.Is(confErr, ErrMissingCoefficient) {
		t.Error("ConfigurationError should unwrap to ErrMissingCoefficient")
	}
	if !IsConfigurationError(confErr) {
		t.Error("IsConfigurationError should recognize a ConfigurationError")
	}
	if IsParseError(confErr) {
		t.Error("IsParseError should not recognize a ConfigurationError")
	}
}

func TestBalanceError(t *testing.T) {
	balanceErr := NewBalanceError("Alice", "GD Cards", "2.5", ErrDatabaseConnection)

	expectedMsg := `balance operation failed for player "Alice" (game: GD Cards, amount: 2.5): database connection error`
	if balanceErr.Error() != expectedMsg {
		t.Errorf("BalanceError.Error() = %s, want %s", balanceErr.Error(), expectedMsg)
	}

	if !errors.Is(balanceErr, ErrDatabaseConnection) {
		t.Error("BalanceError should unwrap to its cause")
	}
}

func TestIsUnknownMessageTypeParseError(t *testing.T) {
	// The unknown-type sentinel counts as a parse failure even when wrapped
	wrapped := NewParseError("unknown", "", ErrUnknownMessageType)
	if !IsParseError(wrapped) {
		t.Error("IsParseError should recognize a wrapped ErrUnknownMessageType")
	}
	if ErrorCode(wrapped) != CodeUnknownMessageType {
		t.Errorf("ErrorCode = %d, want %d", ErrorCode(wrapped), CodeUnknownMessageType)
	}
}

func TestIsNotFoundError(t *testing.T) {
	for _, err := range []error{ErrNotFound, ErrUserNotFound, ErrGameBalanceNotFound} {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) should be true", err)
		}
	}
	if IsNotFoundError(ErrDuplicateUser) {
		t.Error("IsNotFoundError should not recognize ErrDuplicateUser")
	}
}
