// Package sharing implements the distributed-key-generation and
// threshold-decryption protocol built on top of package elgamal: Feldman
// verifiable secret sharing drives key generation (StartingParticipant ->
// ExchangingSecrets -> ActiveParticipant), and Lagrange interpolation in the
// exponent drives decryption-share combination.
//
// Each DKG phase is its own Go type, so that calling a method valid only in
// a later phase is a compile error rather than a runtime one: there is no
// single "Participant" struct with an internal status field to misuse.
package sharing

import "fmt"

// Params fixes the share count and decryption threshold for a DKG run.
// Every participant and every derived PublicKeySet in a run shares one
// Params value.
type Params struct {
	Shares    int
	Threshold int
}

// NewParams validates and returns Params{shares, threshold}. Shares and
// threshold are protocol setup constants chosen by the caller, not
// attacker-controlled input, so a malformed choice panics rather than
// returning an error (spec.md §7: "Params::new with t > n may be signalled
// by a panic-equivalent hard failure at construction").
func NewParams(shares, threshold int) Params {
	if shares < 1 {
		panic(fmt.Sprintf("sharing: shares must be >= 1, got %d", shares))
	}
	if threshold < 1 || threshold > shares {
		panic(fmt.Sprintf("sharing: threshold must be in [1,%d], got %d", shares, threshold))
	}
	return Params{Shares: shares, Threshold: threshold}
}
