package domain

import "errors"

// ErrInvalidPayload marks a message that can never be stored. Such deliveries
// are dropped rather than requeued.
var ErrInvalidPayload = errors.New("invalid generation payload")

// ErrDeliveriesClosed is returned by Worker.Start when the broker closes the
// delivery channel
var ErrDeliveriesClosed = errors.New("delivery channel closed")

// TransientError is a failure that may not recur on redelivery, such as a
// dropped database connection
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return e.Op + ": " + e.Err.Error()
}

func (e *TransientError) Unwrap() error { return e.Err }

// Transient wraps err so the delivery that caused it is requeued
func Transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}

// ShouldRequeue reports whether a failed delivery goes back to the queue.
// Only transient failures do; an invalid payload wins over a transient wrapper.
func ShouldRequeue(err error) bool {
	if err == nil || errors.Is(err, ErrInvalidPayload) {
		return false
	}
	var transient *TransientError
	return errors.As(err, &transient)
}
