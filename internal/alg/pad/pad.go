// Package pad frames messages into whole blocks: a 0x80 marker, zeros, and
// the 64-bit little endian bit length.
package pad

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"

	"github.com/zeebo/md5/internal/consts"
)

// ErrTooLarge is returned when the padded message length does not fit in an int.
var ErrTooLarge = errors.New("pad: message too large")

// maxLen is the longest message whose padded form still fits in an int.
const maxLen = math.MaxInt - 2*consts.BlockLen

// zeros returns how many zero bytes follow the marker for an n byte message.
func zeros(n int) int {
	return (consts.BlockLen - consts.LenLen - 1 - n%consts.BlockLen + consts.BlockLen) % consts.BlockLen
}

// Len returns the length of the padded form of an n byte message.
func Len(n int) (int, error) {
	if n < 0 || n > maxLen {
		return 0, errors.WithStack(ErrTooLarge)
	}
	return n + 1 + zeros(n) + consts.LenLen, nil
}

// Pad returns a new slice holding msg followed by its padding.
func Pad(msg []byte) ([]byte, error) {
	n, err := Len(len(msg))
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, msg)
	out[len(msg)] = 0x80
	binary.LittleEndian.PutUint64(out[n-consts.LenLen:], uint64(len(msg))<<3)
	return out, nil
}

// Trailer holds the final one or two blocks of a padded message.
type Trailer struct {
	buf [2 * consts.BlockLen]byte
	n   int
}

// Bytes returns the filled portion of the trailer, either 64 or 128 bytes.
func (t *Trailer) Bytes() []byte { return t.buf[:t.n] }

// Tail returns the blocks that follow the complete blocks of msg in its padded
// form. msg[:len(msg)/64*64] followed by Tail(msg).Bytes() equals Pad(msg).
func Tail(msg []byte) (t Trailer) {
	rem := msg[len(msg)/consts.BlockLen*consts.BlockLen:]

	copy(t.buf[:], rem)
	t.buf[len(rem)] = 0x80
	t.n = len(rem) + 1 + zeros(len(rem)) + consts.LenLen
	binary.LittleEndian.PutUint64(t.buf[t.n-consts.LenLen:], uint64(len(msg))<<3)
	return t
}
