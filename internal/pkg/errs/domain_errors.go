package errs

// Usecase-level sentinels shared by commands, queries, and handlers.
// Ledger rule violations live in the reservation domain package.
var (
	// Idempotency errors
	ErrIdempotencyKeyInvalid  = New("invalid idempotency key")
	ErrDuplicateRequest       = New("idempotency key reused with a different request")
	ErrIdempotencyCheckFailed = New("idempotency check failed")

	// Unit of work errors
	ErrInvariantViolated = New("ledger invariant violated")
	ErrRollbackFailed    = New("ledger rollback failed")
)
