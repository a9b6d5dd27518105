package md5_test

import (
	"fmt"

	"github.com/zeebo/md5"
)

func ExampleSum() {
	d := md5.Sum([]byte("some data"))

	fmt.Printf("%x\n", d[:])
	fmt.Println(d)
	//output:
	// 1e50210a0202497fb79bc38b6ade6c34
	// 1e50210a0202497fb79bc38b6ade6c34
}

func ExampleSumHex() {
	fmt.Println(md5.SumHex(nil))
	fmt.Println(md5.SumHex([]byte("abc")))
	//output:
	// d41d8cd98f00b204e9800998ecf8427e
	// 900150983cd24fb0d6963f7d28e17f72
}

func ExampleDigest_Words() {
	w := md5.Sum(nil).Words()

	fmt.Printf("%08x %08x %08x %08x\n", w[0], w[1], w[2], w[3])
	//output:
	// d98c1dd4 04b2008f 980980e9 7e42f8ec
}
