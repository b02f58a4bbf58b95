package model

import "fmt"

const (
	DeliveryStatusOK    = "ok"
	DeliveryStatusError = "error"
)

// DeliveryResult is the outcome returned to the invoker.
type DeliveryResult struct {
	Status string `json:"status"`
	Code   int    `json:"code,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// StatusError reports a webhook that answered with a non-success HTTP status.
type StatusError struct {
	Code   int
	Reason string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook returned status %d %s", e.Code, e.Reason)
}
