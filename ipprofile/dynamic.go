package ipprofile

import "braces.dev/errtrace"

// DynamicIpParser parses the IP-only dynamic chain: a single 2-byte
// big-endian SN (spec.md §4.2). It sets bits.Sn to that value with
// SnNr=16 and IsSnEnc=false, and returns the number of bytes consumed
// (always 2 on success).
//
// It returns [ErrTooShort] if fewer than 2 bytes remain; bits is left
// untouched on failure.
func DynamicIpParser(data []byte, bits *ExtractedBits) (int, error) {
	c := NewBitCursor(data)

	sn, err := c.Uint16()
	if err != nil {
		return 0, errtrace.Wrap(err)
	}

	bits.Sn = uint32(sn)
	bits.SnNr = 16
	bits.IsSnEnc = false

	return c.Pos(), nil
}
