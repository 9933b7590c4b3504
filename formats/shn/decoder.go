// SPDX-License-Identifier: EPL-2.0

package shn

import (
	"fmt"
	"io"
	"os"

	"github.com/lexicone42/shorten/audio"
)

// Reader decodes a single Shorten stream. It is single-pass: once Samples
// has been drained, the Reader has nothing further to offer.
type Reader struct {
	closer io.Closer
	br     *bitReader

	hdr    streamHeader
	params blockParams

	bitshift int
	channels []*channelState
	cursor   int
	row      [][]int64

	probe  waveHeaderProbe
	quit   bool
	err    error
}

// Open opens path and parses its Shorten header, leaving the reader
// positioned at the first block command.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	r, err := New(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	r.closer = f
	return r, nil
}

// New wraps an already-open stream. The caller retains ownership of r
// unless it happens to implement io.Closer, in which case Reader.Close
// will close it too.
func New(r io.Reader) (*Reader, error) {
	br := newBitReader(r)
	hdr, params, err := parseStreamHeader(br)
	if err != nil {
		return nil, err
	}

	historyLen := params.maxnlpc
	if historyLen < nwrap {
		historyLen = nwrap
	}
	channels := make([]*channelState, hdr.channels)
	for i := range channels {
		channels[i] = newChannelState(historyLen, params.nmean)
	}

	dec := &Reader{
		br:       br,
		hdr:      hdr,
		params:   params,
		channels: channels,
		row:      make([][]int64, hdr.channels),
	}
	if c, ok := r.(io.Closer); ok {
		dec.closer = c
	}
	return dec, nil
}

// Info reports the channel count from the Shorten header plus whatever
// sample rate and bit depth were recovered from the embedded container
// header. SampleRate and BitsPerSample are 0 until a verbatim block carrying
// a complete header has been decoded, and stay 0 if none ever is.
func (r *Reader) Info() AudioInfo {
	return AudioInfo{
		Channels:      r.hdr.channels,
		SampleRate:    r.probe.sampleRate,
		BitsPerSample: r.probe.bitsPerSample,
		BigEndian:     r.hdr.bigEndian,
	}
}

// Close releases the underlying stream, if Reader owns one.
func (r *Reader) Close() error {
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}

// Samples returns a fresh, lazy, single-pass iterator over this Reader's
// interleaved PCM. Samples must not be called more than once.
func (r *Reader) Samples() *SampleIterator {
	return &SampleIterator{r: r}
}

// nextRow decodes commands until a full round-robin row (one block per
// channel) is ready, FN_QUIT is reached, or an error occurs. A nil row
// with a nil error never happens; io.EOF signals a clean FN_QUIT.
func (r *Reader) nextRow() ([]int64, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.quit {
		return nil, io.EOF
	}

	for {
		fn, err := uvar(r.br, fnSize)
		if err != nil {
			return nil, r.fail(err)
		}

		switch int(fn) {
		case fnDiff0, fnDiff1, fnDiff2, fnDiff3:
			cs := r.channels[r.cursor]
			block, err := decodeFixedBlock(r.br, int(fn), cs, r.params.nmean, r.params.blocksize)
			if err != nil {
				return nil, r.fail(err)
			}
			cs.finishBlock(block, r.params.nmean)
			if row, ready := r.commit(block); ready {
				return row, nil
			}

		case fnQLPC:
			cs := r.channels[r.cursor]
			block, err := decodeQLPCBlock(r.br, r.params.maxnlpc, cs, r.params.nmean, r.params.blocksize)
			if err != nil {
				return nil, r.fail(err)
			}
			cs.finishBlock(block, r.params.nmean)
			if row, ready := r.commit(block); ready {
				return row, nil
			}

		case fnZero:
			cs := r.channels[r.cursor]
			block := decodeZeroBlock(r.params.blocksize)
			cs.finishBlock(block, r.params.nmean)
			if row, ready := r.commit(block); ready {
				return row, nil
			}

		case fnBlocksize:
			bs, err := ulong(r.br)
			if err != nil {
				return nil, r.fail(err)
			}
			if bs == 0 || bs > maxBlockSize {
				return nil, r.fail(fmt.Errorf("%w: blocksize %d", ErrInvalidParameter, bs))
			}
			r.params.blocksize = int(bs)

		case fnBitshift:
			bits, err := uvar(r.br, bitshiftSize)
			if err != nil {
				return nil, r.fail(err)
			}
			r.bitshift = int(bits)

		case fnVerbatim:
			n, err := uvar(r.br, verbatimSize)
			if err != nil {
				return nil, r.fail(err)
			}
			if n > maxVerbatim {
				return nil, r.fail(ErrInvalidData)
			}
			chunk := make([]byte, n)
			for i := range chunk {
				v, err := uvar(r.br, verbatimByte)
				if err != nil {
					return nil, r.fail(err)
				}
				chunk[i] = byte(v)
			}
			r.probe.feed(chunk)

		case fnQuit:
			r.quit = true
			return nil, io.EOF

		default:
			return nil, r.fail(fmt.Errorf("%w: unknown command %d", ErrInvalidData, fn))
		}
	}
}

// commit stores a decoded channel block into the in-flight row and, once
// every channel has contributed one, interleaves and bitshifts the row
// for emission. bitshift is applied here and only here: history and
// means upstream always operate in the pre-shift domain.
func (r *Reader) commit(block []int64) ([]int64, bool) {
	r.row[r.cursor] = block
	r.cursor++
	if r.cursor < len(r.channels) {
		return nil, false
	}
	r.cursor = 0

	blocksize := len(r.row[0])
	out := make([]int64, blocksize*len(r.row))
	shift := uint(r.bitshift)
	for i := 0; i < blocksize; i++ {
		for c, chBlock := range r.row {
			out[i*len(r.row)+c] = chBlock[i] << shift
		}
	}
	return out, true
}

func (r *Reader) fail(err error) error {
	r.err = err
	return err
}

var _ audio.Decoder = Decoder{}

// Decoder adapts Reader to audio.Decoder so it can be registered
// alongside the wav, aiff, mp3 and vorbis decoders.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := New(r)
	if err != nil {
		return nil, err
	}
	// Decode the first row up front: the verbatim container header precedes
	// the first audio block, so SampleRate is known before a consumer such
	// as audio.NewResampler reads it.
	it := dec.Samples()
	row, err := dec.nextRow()
	if err != nil && err != io.EOF {
		return nil, err
	}
	it.buf = row
	return &source{r: dec, it: it}, nil
}
