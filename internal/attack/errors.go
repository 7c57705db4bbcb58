package attack

import "errors"

// Attack failures are fatal to the attack and surfaced to the caller;
// nothing here retries or loops past a failed assumption.
var (
	// ErrProbeExhausted means the probing loop hit its iteration budget
	// without observing the expected output-length growth; the oracle does
	// not behave as an additive, padded block cipher.
	ErrProbeExhausted = errors.New("attack: probe budget exhausted")

	// ErrPrefixIndeterminate means the residual-prefix collision search
	// found no valid alignment within one block.
	ErrPrefixIndeterminate = errors.New("attack: prefix length indeterminate")

	// ErrByteRecovery means none of the 256 candidate bytes reproduced the
	// reference block: either an alignment bug or a non-ECB oracle.
	ErrByteRecovery = errors.New("attack: no byte matches the reference block")

	// ErrModeMismatch means the oracle's observed mode contradicts the
	// assumption a forger depends on.
	ErrModeMismatch = errors.New("attack: oracle mode contradicts the attack")
)
