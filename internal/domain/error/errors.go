package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeUnknownMessageType  = 4001
	CodeMissingField        = 4002
	CodeInvalidAmount       = 4003
	CodeDuplicateMessage    = 4004
	CodeConstraintViolation = 4005
	CodeUserNotFound        = 4040

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeMissingCoefficient = 5001
)

// Base error types
var (
	// ErrUnknownMessageType is returned when no classifier rule matches the message text
	ErrUnknownMessageType = errors.New("unknown message type")

	// ErrMissingField is returned when a parser cannot extract a required field
	ErrMissingField = errors.New("missing required field")

	// ErrInvalidAmount is returned when a numeric field cannot be parsed as a decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrMissingCoefficient is returned when no conversion coefficient is configured for a game
	ErrMissingCoefficient = errors.New("no coefficient configured for game")

	// ErrDuplicateMessage is returned when a message fingerprint already exists
	ErrDuplicateMessage = errors.New("message already processed")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrGameBalanceNotFound is returned when no mirror balance exists for a (user, game) pair
	ErrGameBalanceNotFound = errors.New("game balance not found")

	// ErrDuplicateUser is returned when trying to create a user that already exists
	ErrDuplicateUser = errors.New("user already exists")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrUnknownMessageType):
		return CodeUnknownMessageType
	case errors.Is(err, ErrMissingField):
		return CodeMissingField
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrDuplicateMessage):
		return CodeDuplicateMessage
	case errors.Is(err, ErrMissingCoefficient):
		return CodeMissingCoefficient
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// ParseError reports which field of a message could not be extracted
type ParseError struct {
	MessageType string
	Field       string
	Err         error
}

// Error implements the error interface for ParseError
func (e *ParseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("parse error for message type %s: %v", e.MessageType, e.Err)
	}
	return fmt.Sprintf("parse error for message type %s: missing or invalid %s: %v",
		e.MessageType, e.Field, e.Err)
}

// Unwrap returns the underlying error
func (e *ParseError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ParseError) LogFields() map[string]any {
	return map[string]any{
		"error_type":   "parse_error",
		"message_type": e.MessageType,
		"field":        e.Field,
		"error":        e.Err.Error(),
		"error_code":   ErrorCode(e.Err),
	}
}

// NewParseError creates a parse error naming the specific missing or invalid field
func NewParseError(messageType, field string, err error) error {
	return &ParseError{
		MessageType: messageType,
		Field:       field,
		Err:         err,
	}
}

// ConfigurationError reports an operator-actionable misconfiguration, such as a game
// referenced by a message that has no conversion coefficient
type ConfigurationError struct {
	Game string
	Err  error
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error for game %q: %v", e.Game, e.Err)
}

// Unwrap returns the underlying error
func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *ConfigurationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "configuration_error",
		"game":       e.Game,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewMissingCoefficientError creates a configuration error for a game with no coefficient
func NewMissingCoefficientError(game string) error {
	return &ConfigurationError{
		Game: game,
		Err:  ErrMissingCoefficient,
	}
}

// BalanceError represents an error raised while mutating a player's balances
type BalanceError struct {
	UserName string
	Game     string
	Amount   string
	Err      error
}

// Error implements the error interface for BalanceError
func (e *BalanceError) Error() string {
	return fmt.Sprintf("balance operation failed for player %q (game: %s, amount: %s): %v",
		e.UserName, e.Game, e.Amount, e.Err)
}

// Unwrap returns the underlying error
func (e *BalanceError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *BalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "balance_error",
		"user_name":  e.UserName,
		"game":       e.Game,
		"amount":     e.Amount,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewBalanceError creates a detailed balance error
func NewBalanceError(userName, game, amount string, err error) error {
	return &BalanceError{
		UserName: userName,
		Game:     game,
		Amount:   amount,
		Err:      err,
	}
}

// IsParseError checks if the error originated in classification or parsing
func IsParseError(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr) || errors.Is(err, ErrUnknownMessageType)
}

// IsConfigurationError checks if the error is an operator-actionable misconfiguration
func IsConfigurationError(err error) bool {
	var confErr *ConfigurationError
	return errors.As(err, &confErr) || errors.Is(err, ErrMissingCoefficient)
}

// IsDuplicateMessageError checks if the error is a duplicate message error
func IsDuplicateMessageError(err error) bool {
	return errors.Is(err, ErrDuplicateMessage)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrGameBalanceNotFound)
}
