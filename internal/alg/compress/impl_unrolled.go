//go:build !purego
// +build !purego

package compress

import "github.com/zeebo/md5/internal/alg/compress/compress_unrolled"

func Compress(s [4]uint32, m *[16]uint32) [4]uint32 {
	return compress_unrolled.Compress(s, m)
}
