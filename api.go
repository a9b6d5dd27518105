// Package md5 implements the MD5 hash algorithm as defined in RFC 1321.
//
// MD5 is cryptographically broken and should not be used for secure
// applications.
package md5

import (
	"encoding/hex"

	"github.com/zeebo/md5/internal/alg/hash"
	"github.com/zeebo/md5/internal/consts"
	"github.com/zeebo/md5/internal/utils"
)

// Size is the number of bytes in an MD5 digest.
const Size = consts.Size

// BlockSize is the number of bytes compressed at a time.
const BlockSize = consts.BlockLen

// Digest is the 16 byte MD5 digest of a message.
type Digest [Size]byte

// Sum returns the MD5 digest of data.
func Sum(data []byte) Digest {
	s := hash.Sum(data)

	var d Digest
	utils.WordsToBytes(&s, (*[Size]byte)(&d))
	return d
}

// SumHex returns the lowercase hex encoding of the MD5 digest of data.
func SumHex(data []byte) string {
	return Sum(data).Hex()
}

// Hex returns the digest as 32 lowercase hex characters.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements fmt.Stringer. It is the same as Hex.
func (d Digest) String() string { return d.Hex() }

// Words returns the four state words the digest was serialized from.
func (d Digest) Words() [4]uint32 {
	return utils.BytesToState((*[Size]byte)(&d))
}
