// Package elgamalerr collects the classified error kinds produced by the
// protocol (spec.md §7). Every verification routine is binary: it either
// succeeds or returns one of these errors, each carrying enough context to
// localise the fault without leaking anything about secret inputs.
package elgamalerr

import "fmt"

// InvalidProofError reports that a zero-knowledge proof failed to verify:
// the challenge re-derived from the transcript did not match the one
// carried in the proof, or a component check failed.
type InvalidProofError struct {
	Protocol string
	Reason   string
}

func (e *InvalidProofError) Error() string {
	return fmt.Sprintf("elgamal: invalid %s proof: %s", e.Protocol, e.Reason)
}

// NewInvalidProof constructs an InvalidProofError for the named protocol.
func NewInvalidProof(protocol, reason string) error {
	return &InvalidProofError{Protocol: protocol, Reason: reason}
}

// InvalidShareError reports that a Feldman VSS check rejected a secret share
// received from the given sender during DKG.
type InvalidShareError struct {
	Sender int
}

func (e *InvalidShareError) Error() string {
	return fmt.Sprintf("elgamal: invalid share from participant %d", e.Sender)
}

// DuplicateParticipantError reports that a DKG orchestration step was asked
// to add a participant index that was already present.
type DuplicateParticipantError struct {
	Index int
}

func (e *DuplicateParticipantError) Error() string {
	return fmt.Sprintf("elgamal: participant %d already added", e.Index)
}

// MissingParticipantError reports that an operation referenced a
// participant index that is out of range or was never added.
type MissingParticipantError struct {
	Index int
}

func (e *MissingParticipantError) Error() string {
	return fmt.Sprintf("elgamal: participant %d is missing", e.Index)
}

// IncompleteSharesError reports that ExchangingSecrets.Complete was called
// before shares from every other participant were received, or that
// PartialPublicKeySet.Complete was called before every participant's
// commitments were added. Missing lists the absent participant indices.
type IncompleteSharesError struct {
	Missing []int
}

func (e *IncompleteSharesError) Error() string {
	return fmt.Sprintf("elgamal: missing shares from participants %v", e.Missing)
}

// DuplicateShareError reports that a decryption-share subset passed to
// Combine referenced the same participant index twice.
type DuplicateShareError struct {
	Index int
}

func (e *DuplicateShareError) Error() string {
	return fmt.Sprintf("elgamal: duplicate decryption share for participant %d", e.Index)
}

// InsufficientSharesError reports that a decryption-share subset is smaller
// than the threshold required to combine it.
type InsufficientSharesError struct {
	Got, Need int
}

func (e *InsufficientSharesError) Error() string {
	return fmt.Sprintf("elgamal: insufficient decryption shares: got %d, need %d", e.Got, e.Need)
}

// ErrOutOfLookupRange is returned by DecryptionLookupTable.Get when a point
// does not correspond to any value in the table's declared range.
var ErrOutOfLookupRange = fmt.Errorf("elgamal: point not in decryption lookup table range")

// MalformedPointError reports that a byte string is not a canonical
// encoding of a group element.
type MalformedPointError struct {
	Cause error
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("elgamal: malformed point: %v", e.Cause)
}

func (e *MalformedPointError) Unwrap() error { return e.Cause }

// MalformedScalarError reports that a byte string is not a canonical
// encoding of a scalar.
type MalformedScalarError struct {
	Cause error
}

func (e *MalformedScalarError) Error() string {
	return fmt.Sprintf("elgamal: malformed scalar: %v", e.Cause)
}

func (e *MalformedScalarError) Unwrap() error { return e.Cause }
