// SPDX-License-Identifier: EPL-2.0

package shn

import "io"

// source adapts a Reader's SampleIterator to audio.Source, normalizing
// interleaved 16-bit PCM to float32 in [-1,1].
type source struct {
	r  *Reader
	it *SampleIterator
}

func (s *source) SampleRate() int { return s.r.Info().SampleRate }
func (s *source) Channels() int   { return s.r.Info().Channels }
func (s *source) Close() error    { return s.r.Close() }
func (s *source) BufSize() int    { return s.r.params.blocksize * s.r.hdr.channels }

func (s *source) ReadSamples(dst []float32) (int, error) {
	n := 0
	for n < len(dst) {
		if !s.it.Next() {
			if err := s.it.Err(); err != nil {
				return n, err
			}
			break
		}
		dst[n] = float32(s.it.Sample()) / 32768.0
		n++
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}
