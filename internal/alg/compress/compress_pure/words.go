package compress_pure

import "math/bits"

// Add32 returns a + b mod 2^32.
func Add32(a, b uint32) uint32 { return a + b }

// RotateLeft32 rotates x left by n bits, 0 <= n < 32.
func RotateLeft32(x uint32, n int) uint32 { return bits.RotateLeft32(x, n) }

func F(x, y, z uint32) uint32 { return (x & y) | (^x & z) }
func G(x, y, z uint32) uint32 { return (x & z) | (y &^ z) }
func H(x, y, z uint32) uint32 { return x ^ y ^ z }
func I(x, y, z uint32) uint32 { return y ^ (x | ^z) }
