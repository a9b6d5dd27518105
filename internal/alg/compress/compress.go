package compress

import (
	"unsafe"

	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// Block compresses one 64 byte block of message into s.
func Block(s [4]uint32, block *[consts.BlockLen]byte) [4]uint32 {
	if consts.IsLittleEndian && uintptr(unsafe.Pointer(block))%4 == 0 {
		return Compress(s, (*[16]uint32)(unsafe.Pointer(block)))
	}

	var words [16]uint32
	utils.BytesToWords(block, &words)
	return Compress(s, &words)
}

// Blocks compresses every block of buf into s in order. It panics if buf is
// not a multiple of the block size.
func Blocks(s [4]uint32, buf []byte) [4]uint32 {
	if len(buf)%consts.BlockLen != 0 {
		panic("compress: partial block")
	}
	for ; len(buf) > 0; buf = buf[consts.BlockLen:] {
		s = Block(s, (*[consts.BlockLen]byte)(buf))
	}
	return s
}
