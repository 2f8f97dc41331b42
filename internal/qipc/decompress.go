package qipc

import (
	"encoding/binary"
	"fmt"

	"github.com/3ok/huunq/internal/xerrors"
)

// decompress inflates the body of a compressed message. The first four bytes
// of body hold the size of the uncompressed message including its header.
func decompress(body []byte, order binary.ByteOrder) (_ []byte, err error) {
	if len(body) < 4 {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: compressed body of %d bytes", ErrTruncated, len(body)))
	}
	size := int(order.Uint32(body)) - headerSize
	if size < 0 {
		return nil, xerrors.WithStackTrace(fmt.Errorf("%w: uncompressed size %d", ErrTruncated, size))
	}
	defer func() {
		if r := recover(); r != nil {
			err = xerrors.WithStackTrace(fmt.Errorf("%w: corrupted compressed message: %v", ErrTruncated, r))
		}
	}()

	var (
		dst  = make([]byte, size)
		hash [256]int
		s, p int
		d    = 4
		f    byte
		i    uint
		n    int
	)
	for s < size {
		if i == 0 {
			f = body[d]
			d++
			i = 1
		}
		ref := f&byte(i) != 0
		if ref {
			r := hash[body[d]]
			d++
			dst[s] = dst[r]
			dst[s+1] = dst[r+1]
			s += 2
			r += 2
			n = int(body[d])
			d++
			// overlapping back references repeat the pattern, so no copy()
			for m := 0; m < n; m++ {
				dst[s+m] = dst[r+m]
			}
		} else {
			dst[s] = body[d]
			s++
			d++
		}
		for ; p < s-1; p++ {
			hash[dst[p]^dst[p+1]] = p
		}
		if ref {
			s += n
			p = s
		}
		i <<= 1
		if i == 256 {
			i = 0
		}
	}

	return dst, nil
}
