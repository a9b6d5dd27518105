package consts

import "golang.org/x/sys/cpu"

// IsLittleEndian reports if blocks can be read as words without decoding.
const IsLittleEndian = !cpu.IsBigEndian
