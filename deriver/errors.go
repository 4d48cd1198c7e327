package deriver

import "errors"

// Error kinds surfaced by the deriver. They are sentinels so callers can
// branch with errors.Is; every derivation error wraps exactly one of them.
var (
	// ErrMissingOwner is returned when no owner address was supplied. Both
	// paths need the owner, it is part of the create2 salt.
	ErrMissingOwner = errors.New("missing owner address")

	// ErrMalformedAddress is returned when an address input does not decode
	// to exactly 20 bytes. Rejected before any hashing or network call.
	ErrMalformedAddress = errors.New("malformed address")

	// ErrUnsupportedChain is returned by the EVM path when the chain id has
	// no registered network, before any call is attempted.
	ErrUnsupportedChain = errors.New("unsupported chain")

	// ErrNetworkFailure is returned when the single read-only factory call
	// did not complete. It is never retried within one invocation.
	ErrNetworkFailure = errors.New("network failure")

	// ErrEncodingFailure is returned when abi packing of the fixed internal
	// call sites fails. Should be unreachable with well-formed inputs.
	ErrEncodingFailure = errors.New("abi encoding failure")
)
