package storage

import "evdemand/pkg/serrors"

// Transaction misuse. Both are programming errors, not runtime conditions.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already a transaction.
	ErrAlreadyInTx = serrors.NewKind("ALREADY_IN_TX")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = serrors.NewKind("NOT_IN_TX")
)
