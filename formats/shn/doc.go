// SPDX-License-Identifier: EPL-2.0

// Package shn decodes Shorten (SHN) lossless audio streams.
//
// Shorten predates FLAC as a lossless PCM compressor: it Rice-codes the
// residual of a small fixed or LPC predictor per block, round-robins blocks
// across channels, and carries the original RIFF/WAVE or AIFF header as
// verbatim bytes at the front of the bitstream. This package implements a
// streaming, single-pass decoder for versions 1 through 3 of the format,
// restricted to 16-bit signed PCM payloads.
//
// # Decoding
//
//	r, err := shn.Open("track.shn")
//	if err != nil {
//	    // handle error
//	}
//	defer r.Close()
//
//	it := r.Samples()
//	for it.Next() {
//	    sample := it.Sample() // interleaved int32 PCM
//	}
//	if err := it.Err(); err != nil {
//	    // handle decode error
//	}
//
//	// SampleRate and BitsPerSample come from the verbatim container header,
//	// so they are known once decoding has passed it.
//	info := r.Info()
//	fmt.Printf("%dch %dHz %dbit\n", info.Channels, info.SampleRate, info.BitsPerSample)
//
// Decoder also implements audio.Decoder, so it can be registered alongside
// the wav, aiff, mp3 and vorbis decoders in an audio.Registry and driven
// through the same Resampler/MonoMixer pipeline as any other format.
//
// # Scope
//
// Only file_type values for 16-bit signed little-endian (WAVE) and its
// big-endian (AIFF) counterpart are accepted; encoding, seeking, and
// reconstruction of non-audio container chunks are out of scope.
package shn
