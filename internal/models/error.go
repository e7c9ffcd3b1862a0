package models

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrConflictData = errors.New("data conflicts with existing data")
	ErrDataNotFound = errors.New("data not found")
	ErrUnauthorized = errors.New("authentication required")
	ErrForbidden    = errors.New("forbidden")
	ErrValidation   = errors.New("validation failed")
	ErrInternal     = errors.New("internal error")

	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	ErrEventReplayed      = errors.New("gateway event already processed")
	ErrGatewayRejected    = errors.New("payment gateway rejected request")
	ErrBadSignature       = errors.New("invalid webhook signature")
)

// validation failures, distinguishable from each other but all matching
// ErrValidation
var (
	ErrTotalMismatch   = fmt.Errorf("%w: order total does not match line items", ErrValidation)
	ErrUnknownMenuItem = fmt.Errorf("%w: unknown menu item", ErrValidation)
	ErrEmptyOrder      = fmt.Errorf("%w: order has no line items", ErrValidation)
	ErrBadFilter       = fmt.Errorf("%w: malformed list filter", ErrValidation)
)

// state conflicts, all matching ErrConflictData
var (
	ErrInvalidTransition   = fmt.Errorf("%w: invalid status transition", ErrConflictData)
	ErrOrderNotPayable     = fmt.Errorf("%w: order is not payable", ErrConflictData)
	ErrPaymentInFlight     = fmt.Errorf("%w: order already has a pending payment", ErrConflictData)
	ErrOrderNotCancellable = fmt.Errorf("%w: order can no longer be cancelled", ErrConflictData)
	ErrDriverUnavailable   = fmt.Errorf("%w: driver is not available", ErrConflictData)
	ErrPaymentNotSettled   = fmt.Errorf("%w: payment has not settled", ErrConflictData)
)

// TooManyRequestsError is returned when the gateway throttles us
type TooManyRequestsError struct {
	RetryAfter time.Duration
}

func NewTooManyRequestsError(retryAfter time.Duration) TooManyRequestsError {
	return TooManyRequestsError{RetryAfter: retryAfter}
}

func (e TooManyRequestsError) Error() string {
	return fmt.Sprintf("too many requests, retry after %s", e.RetryAfter)
}
