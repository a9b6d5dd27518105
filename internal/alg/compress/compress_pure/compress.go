package compress_pure

import (
	"github.com/zeebo/md5/internal/consts"
)

// Compress runs the 64 steps over one block of message words and returns the
// next state.
func Compress(s [4]uint32, m *[16]uint32) [4]uint32 {
	a, b, c, d := s[0], s[1], s[2], s[3]

	for i := 0; i < consts.Steps; i++ {
		var f uint32
		switch i / 16 {
		case 0:
			f = F(b, c, d)
		case 1:
			f = G(b, c, d)
		case 2:
			f = H(b, c, d)
		default:
			f = I(b, c, d)
		}

		tmp := Add32(Add32(Add32(a, f), m[consts.X[i]]), consts.K[i])
		tmp = Add32(RotateLeft32(tmp, consts.S[i]), b)

		a, b, c, d = d, tmp, b, c
	}

	return [4]uint32{
		Add32(s[0], a),
		Add32(s[1], b),
		Add32(s[2], c),
		Add32(s[3], d),
	}
}
