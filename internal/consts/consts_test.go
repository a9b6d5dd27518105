package consts

import (
	"math"
	"testing"

	"github.com/zeebo/assert"
)

func TestK(t *testing.T) {
	for i := range K {
		exp := uint32(math.Floor(math.Abs(math.Sin(float64(i+1))) * (1 << 32)))
		assert.Equal(t, K[i], exp)
	}
}

func TestX(t *testing.T) {
	for i := 0; i < 16; i++ {
		assert.Equal(t, int(X[i]), i)
		assert.Equal(t, int(X[16+i]), (5*(16+i)+1)%16)
		assert.Equal(t, int(X[32+i]), (3*(32+i)+5)%16)
		assert.Equal(t, int(X[48+i]), (7*(48+i))%16)
	}
}

func TestS(t *testing.T) {
	rounds := [4][4]int{
		{7, 12, 17, 22},
		{5, 9, 14, 20},
		{4, 11, 16, 23},
		{6, 10, 15, 21},
	}
	for i := range S {
		assert.Equal(t, S[i], rounds[i/16][i%4])
	}
}
