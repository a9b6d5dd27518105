package hash

import (
	"github.com/zeebo/md5/internal/alg/compress"
	"github.com/zeebo/md5/internal/alg/pad"
	"github.com/zeebo/md5/internal/consts"
)

// Sum returns the final state after compressing the padded form of msg.
// Complete blocks are read from msg directly. Only the tail is buffered.
func Sum(msg []byte) [4]uint32 {
	full := len(msg) / consts.BlockLen * consts.BlockLen

	s := compress.Blocks(consts.IV, msg[:full])
	tail := pad.Tail(msg)
	return compress.Blocks(s, tail.Bytes())
}
