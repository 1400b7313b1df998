package flow

import "errors"

var (
	// ErrUnknownQuestion rejects a submission for a question not in the
	// catalog.
	ErrUnknownQuestion = errors.New("unknown question")
	// ErrInvalidValue rejects a malformed or out-of-range response value.
	// The session is left unchanged.
	ErrInvalidValue = errors.New("invalid response value")
	// ErrSessionTerminal rejects submissions to completed or abandoned
	// sessions, and to emergency sessions before acknowledgement.
	ErrSessionTerminal = errors.New("session accepts no further responses")
	// ErrEmergencyNotAcknowledged blocks submissions between the
	// emergency result and the caller's explicit acknowledgement.
	ErrEmergencyNotAcknowledged = errors.New("emergency protocol not yet acknowledged")
)
