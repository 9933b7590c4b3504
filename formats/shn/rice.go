package shn

// Rice-coded primitives layered on bitReader. All three are MSB-first and
// share the same "zeros before one" unary quotient used throughout Shorten:
// count zero bits until a one bit (which is consumed) to produce the
// quotient, then append k mantissa bits as the remainder.

// maxRiceQuotient bounds the unary quotient scan so a corrupt or
// adversarial stream can't spin forever counting zero bits.
const maxRiceQuotient = 64

// uvar reads an unsigned Rice code with k mantissa bits.
func uvar(b *bitReader, k int) (uint32, error) {
	var q uint32
	for {
		bit, err := b.readBits(1)
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		q++
		if q > maxRiceQuotient {
			return 0, ErrInvalidData
		}
	}

	if k == 0 {
		return q, nil
	}
	r, err := b.readBits(k)
	if err != nil {
		return 0, err
	}
	return q<<uint(k) | r, nil
}

// svar reads a signed Rice code with k mantissa bits. It reads uvar(k+1)
// and unfolds the sign: even values map to non-negative, odd to negative.
func svar(b *bitReader, k int) (int32, error) {
	u, err := uvar(b, k+1)
	if err != nil {
		return 0, err
	}
	if u&1 == 0 {
		return int32(u >> 1), nil
	}
	return -int32(u>>1) - 1, nil
}

// ulong reads Shorten's two-level variable-length unsigned integer: a
// 2-bit-mantissa uvar gives the mantissa width of the value that follows.
func ulong(b *bitReader) (uint32, error) {
	nbits, err := uvar(b, ulongSize)
	if err != nil {
		return 0, err
	}
	if nbits > 32 {
		return 0, ErrInvalidData
	}
	return uvar(b, int(nbits))
}
