package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates the operation conflicts with the current state of the resource.
var ErrConflict = errors.New("operation conflicts with resource state")

// Posting errors. These are returned as typed values across the service
// boundary so callers can decide whether to retry, surface or log-and-continue.
var (
	// ErrNoLinesGenerated means the line builder produced no postable lines.
	// Nothing is persisted for that attempt.
	ErrNoLinesGenerated = errors.New("no journal lines generated for posting")

	// ErrUnbalanced means total debits and credits diverge beyond tolerance.
	// This indicates a bug in the caller's line builder and is never corrected
	// by injecting a plug line.
	ErrUnbalanced = errors.New("journal entry debits and credits do not balance")

	// ErrReconcileAmountMismatch means two intercompany legs were offered for
	// manual reconciliation with unequal amounts.
	ErrReconcileAmountMismatch = errors.New("reconciliation amounts do not match")

	// ErrAlreadyReconciled means a transaction offered for reconciliation was
	// reconciled earlier. The reconciled flag is one-way.
	ErrAlreadyReconciled = errors.New("transaction already reconciled")
)
