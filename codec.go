package dense

// Proof wire form, big-endian:
//
//	+---------------+  4B step count
//	| count_be4     |
//	+---------------+  per step, in leaf to root order
//	| side_u8       |  0 = sibling left, 1 = sibling right
//	| sibling[32]   |
//	+---------------+

const proofStepBytes = 1 + HashBytes

// MarshalBinary encodes the proof in the fixed wire form above. Step order,
// side tags and raw sibling bytes are preserved exactly. Siblings must be
// HashBytes wide; anything else is ErrBadDigestSize.
func (p Proof) MarshalBinary() ([]byte, error) {
	b := make([]byte, 4+len(p.Steps)*proofStepBytes)
	writeU32BE(b, uint32(len(p.Steps)))

	off := 4
	for _, s := range p.Steps {
		if s.Side != SiblingLeft && s.Side != SiblingRight {
			return nil, ErrBadSide
		}
		if len(s.Sibling) != HashBytes {
			return nil, ErrBadDigestSize
		}
		b[off] = byte(s.Side)
		copy(b[off+1:off+proofStepBytes], s.Sibling)
		off += proofStepBytes
	}
	return b, nil
}

// UnmarshalBinary decodes the wire form produced by MarshalBinary. The
// buffer must be exactly the declared size; truncated or over long buffers
// are ErrBadProofSize and an unrecognized side tag is ErrBadSide. The
// receiver is only modified on success.
func (p *Proof) UnmarshalBinary(data []byte) error {
	if len(data) < 4 {
		return ErrBadProofSize
	}
	count := readU32BE(data)
	if uint64(len(data)) != 4+uint64(count)*proofStepBytes {
		return ErrBadProofSize
	}

	var steps []ProofStep
	if count > 0 {
		steps = make([]ProofStep, count)
	}
	off := 4
	for i := range steps {
		side := Side(data[off])
		if side != SiblingLeft && side != SiblingRight {
			return ErrBadSide
		}
		sibling := make([]byte, HashBytes)
		copy(sibling, data[off+1:off+proofStepBytes])
		steps[i] = ProofStep{Side: side, Sibling: sibling}
		off += proofStepBytes
	}

	p.Steps = steps
	return nil
}
