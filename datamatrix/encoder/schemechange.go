// Copyright 2006 Jeremias Maerki in part, and ZXing Authors in part.
// Use of this source code is governed by the Apache 2.0
// license that can be found in the LICENSE file.

package encoder

// UnlatchMode tells changeScheme whether to write the current scheme's
// unlatch before the new scheme's latch (Explicit) or to fall straight
// through (Implicit). ASCII and Base 256 have no unlatch codeword; for
// EDIFACT, changeScheme writes the unlatch value through the EDIFACT packer.
type UnlatchMode int

const (
	UnlatchExplicit UnlatchMode = iota
	UnlatchImplicit
)

// changeScheme transitions the stream from its current scheme to target,
// writing whatever unlatch/latch codewords the transition requires and
// resetting the chain counters. Grounded on EncodeChangeScheme.
func changeScheme(s *Stream, target Scheme, mode UnlatchMode) error {
	if s.scheme == target {
		return nil
	}

	if mode == UnlatchExplicit {
		switch s.scheme {
		case SchemeC40, SchemeText, SchemeX12:
			if err := encodeUnlatchCTX(s); err != nil {
				return err
			}
		case SchemeEDIFACT:
			if err := encodeValueEdifact(s, unlatchEDIFACT); err != nil {
				return err
			}
		case SchemeBase256:
			// Base 256 has no unlatch codeword; its length header
			// self-delimits the chain.
		}
	}

	switch target {
	case SchemeASCII:
		// No latch codeword: ASCII is the implicit base scheme.
	case SchemeC40:
		if err := s.outputChainAppend(latchC40); err != nil {
			return err
		}
	case SchemeText:
		if err := s.outputChainAppend(latchText); err != nil {
			return err
		}
	case SchemeX12:
		if err := s.outputChainAppend(latchX12); err != nil {
			return err
		}
	case SchemeEDIFACT:
		if err := s.outputChainAppend(latchEDIFACT); err != nil {
			return err
		}
	case SchemeBase256:
		if err := s.outputChainAppend(latchBase256); err != nil {
			return err
		}
	}

	s.scheme = target
	s.resetChain()

	if target == SchemeBase256 {
		// Insert the as-yet-empty one-byte length header; it grows to
		// two bytes once the payload passes 249 bytes.
		if err := updateBase256ChainHeader(s, SizeAuto); err != nil {
			return err
		}
	}
	return nil
}
