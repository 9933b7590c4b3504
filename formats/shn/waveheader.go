package shn

import (
	"bytes"

	"github.com/go-audio/aiff"
	"github.com/go-audio/wav"
)

// waveHeaderProbe is a passive sink for the verbatim bytes a Shorten
// encoder carries at the front of the bitstream: the original RIFF/WAVE
// or FORM/AIFF container header, byte-for-byte. It never blocks the audio
// pipeline and never fails the decode — until it has accumulated enough
// bytes to resolve a sample rate and bit depth it simply keeps absorbing,
// and if it never does, the caller is left with a zero sample rate.
type waveHeaderProbe struct {
	buf       bytes.Buffer
	done      bool
	giveUp    bool
	sampleRate    int
	bitsPerSample int
	bigEndian     bool
}

// feed appends a verbatim block to the probe's buffer and retries parsing.
// Once populated, further blocks are ignored.
func (p *waveHeaderProbe) feed(data []byte) {
	if p.done || p.giveUp {
		return
	}
	p.buf.Write(data)
	p.tryParse()
}

func (p *waveHeaderProbe) populated() bool {
	return p.done
}

func (p *waveHeaderProbe) tryParse() {
	raw := p.buf.Bytes()
	if len(raw) < 12 {
		return
	}

	switch {
	case bytes.Equal(raw[0:4], []byte("RIFF")) && bytes.Equal(raw[8:12], []byte("WAVE")):
		p.tryParseWAV(raw)
	case bytes.Equal(raw[0:4], []byte("FORM")) && bytes.Equal(raw[8:12], []byte("AIFF")):
		p.tryParseAIFF(raw)
	default:
		// Not a container this probe understands; no point retrying as
		// more bytes arrive, since the magic at the front won't change.
		p.giveUp = true
	}
}

func (p *waveHeaderProbe) tryParseWAV(raw []byte) {
	dec := wav.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return
	}
	if err := dec.FwdToPCM(); err != nil {
		return // incomplete so far; wait for more verbatim bytes
	}
	p.sampleRate = int(dec.SampleRate)
	p.bitsPerSample = int(dec.BitDepth)
	p.bigEndian = false
	p.done = true
}

func (p *waveHeaderProbe) tryParseAIFF(raw []byte) {
	dec := aiff.NewDecoder(bytes.NewReader(raw))
	if !dec.IsValidFile() {
		return
	}
	dec.ReadInfo()
	if dec.BitDepth == 0 {
		return // fmt/COMM chunk not fully buffered yet
	}
	p.sampleRate = int(dec.SampleRate)
	p.bitsPerSample = int(dec.BitDepth)
	p.bigEndian = true
	p.done = true
}
