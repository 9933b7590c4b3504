// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
)

// InMemorySeeker adapts a byte slice to io.ReadSeeker, for decoders (wav,
// aiff) built on libraries that require seeking when the caller only has
// a plain io.Reader.
type InMemorySeeker struct {
	Data   []byte
	offset int64
}

func (rs *InMemorySeeker) Read(p []byte) (n int, err error) {
	if rs.offset >= int64(len(rs.Data)) {
		return 0, io.EOF
	}
	n = copy(p, rs.Data[rs.offset:])
	rs.offset += int64(n)
	return n, nil
}

func (rs *InMemorySeeker) Seek(offset int64, whence int) (int64, error) {
	var newOffset int64
	switch whence {
	case io.SeekStart:
		newOffset = offset
	case io.SeekCurrent:
		newOffset = rs.offset + offset
	case io.SeekEnd:
		newOffset = int64(len(rs.Data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if newOffset < 0 {
		return 0, fmt.Errorf("negative position")
	}
	rs.offset = newOffset
	return newOffset, nil
}
