package shn

import "errors"

var (
	// ErrBadMagic indicates the stream does not start with "ajkg".
	ErrBadMagic = errors.New("shn: not a Shorten stream (bad magic)")

	// ErrUnsupportedVersion indicates the version byte is not 1, 2 or 3.
	ErrUnsupportedVersion = errors.New("shn: unsupported stream version")

	// ErrUnsupportedFileType indicates file_type is not a 16-bit PCM code.
	ErrUnsupportedFileType = errors.New("shn: unsupported file type")

	// ErrInvalidData indicates a malformed bitstream: a bad command id, an
	// LPC order exceeding maxnlpc, or a pathological Rice quotient.
	ErrInvalidData = errors.New("shn: invalid data")

	// ErrInvalidParameter indicates a structurally invalid header field,
	// such as channels == 0 or blocksize == 0.
	ErrInvalidParameter = errors.New("shn: invalid parameter")

	// ErrUnexpectedEOF indicates the stream ended mid-value or before FN_QUIT.
	ErrUnexpectedEOF = errors.New("shn: unexpected end of stream")
)
