package dense

import "errors"

// HashBytes is the fixed digest width of the standard SHA-256 construction.
// The tree itself works with whatever width the injected hasher produces;
// the proof wire form commits to this width.
const HashBytes = 32

// Side records which side of the running digest a proof sibling takes when
// the pair is concatenated during verification.
type Side uint8

const (
	// SiblingLeft means the sibling is the left operand of HashPair.
	SiblingLeft Side = 0
	// SiblingRight means the sibling is the right operand of HashPair.
	SiblingRight Side = 1
)

var (
	ErrLeafNotFound    = errors.New("dense: leaf not found")
	ErrIndexOutOfRange = errors.New("dense: leaf index out of range")
	ErrBadDigestSize   = errors.New("dense: sibling digest must be 32 bytes")
	ErrBadProofSize    = errors.New("dense: proof buffer size invalid")
	ErrBadSide         = errors.New("dense: proof side tag invalid")
)
