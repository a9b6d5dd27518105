package compress

import (
	"testing"

	"github.com/zeebo/assert"
	"github.com/zeebo/md5/internal/alg/compress/compress_pure"
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
	"github.com/zeebo/pcg"
)

func TestBlock(t *testing.T) {
	// an extra byte lets the block start at every alignment
	var buf [consts.BlockLen + 4]byte

	for i := 0; i < 1e4; i++ {
		for j := range buf {
			buf[j] = byte(pcg.Uint32())
		}
		state := [4]uint32{pcg.Uint32(), pcg.Uint32(), pcg.Uint32(), pcg.Uint32()}

		off := i % 4
		var block [consts.BlockLen]byte
		copy(block[:], buf[off:])

		var words [16]uint32
		utils.BytesToWords(&block, &words)
		exp := compress_pure.Compress(state, &words)

		assert.Equal(t, Block(state, &block), exp)
		assert.Equal(t, Blocks(state, buf[off:off+consts.BlockLen]), exp)
	}
}

func TestBlocks(t *testing.T) {
	buf := make([]byte, 3*consts.BlockLen)
	for i := range buf {
		buf[i] = byte(i)
	}

	exp := consts.IV
	for i := 0; i < 3; i++ {
		var words [16]uint32
		var block [consts.BlockLen]byte
		copy(block[:], buf[i*consts.BlockLen:])
		utils.BytesToWords(&block, &words)
		exp = compress_pure.Compress(exp, &words)
	}

	assert.Equal(t, Blocks(consts.IV, buf), exp)
	assert.Equal(t, Blocks(consts.IV, nil), consts.IV)
}

func TestBlocks_Partial(t *testing.T) {
	defer func() {
		assert.Equal(t, recover(), "compress: partial block")
	}()
	Blocks(consts.IV, make([]byte, consts.BlockLen+1))
}
