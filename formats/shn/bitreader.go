package shn

import (
	"errors"
	"fmt"
	"io"
)

// bitReader extracts MSB-first bit fields from an underlying byte source.
// Shorten packs its bitstream so the first bit pulled from a byte is that
// byte's most significant bit; bitReader refills one byte at a time and has
// no look-back or rewind.
type bitReader struct {
	r io.Reader

	buf   byte // unread bits of the current byte, right-aligned in the low nbits bits
	nbits uint // number of unread bits remaining in buf

	scratch [1]byte // reused read buffer to avoid per-byte allocation
}

func newBitReader(r io.Reader) *bitReader {
	return &bitReader{r: r}
}

// readByteDirect reads one raw byte, bypassing the bit buffer. Used only
// for the magic and version fields, which precede bitstream mode.
func (b *bitReader) readByteDirect() (byte, error) {
	if _, err := io.ReadFull(b.r, b.scratch[:]); err != nil {
		return 0, wrapReadErr(err)
	}
	return b.scratch[0], nil
}

// readBits returns the next n bits (1..=32), MSB-first, as the low bits of
// a uint32.
func (b *bitReader) readBits(n int) (uint32, error) {
	var v uint32
	for n > 0 {
		if b.nbits == 0 {
			if _, err := io.ReadFull(b.r, b.scratch[:]); err != nil {
				return 0, wrapReadErr(err)
			}
			b.buf = b.scratch[0]
			b.nbits = 8
		}

		take := n
		if take > int(b.nbits) {
			take = int(b.nbits)
		}

		shift := b.nbits - uint(take)
		mask := byte(1<<uint(take) - 1)
		bits := (b.buf >> shift) & mask

		v = v<<uint(take) | uint32(bits)
		b.nbits -= uint(take)
		n -= take
	}
	return v, nil
}

// wrapReadErr turns an io.EOF encountered mid-value into ErrUnexpectedEOF
// and anything else into an ordinary wrapped I/O error.
func wrapReadErr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrUnexpectedEOF
	}
	return fmt.Errorf("shn: reading stream: %w", err)
}
