package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrInternal     = errors.New("internal error")
	ErrJobNotFound  = errors.New("job not found")

	// ErrSeedFingerprintMissing is a user-facing precondition failure: the
	// chosen seed job was never fingerprinted, so ranking against it cannot
	// proceed. Distinct from corrupt stored data, which degrades silently.
	ErrSeedFingerprintMissing = errors.New("seed job has no fingerprint")
)
