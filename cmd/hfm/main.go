// Command hfm compresses and restores files with Huffman coding.
//
// Usage:
//
//	hfm [flags] encrypt <in> [out] [key]
//	hfm [flags] decrypt <in> [out] [key]
//	hfm [flags] pack <in> [out]
//	hfm [flags] unpack <in> [out]
//	hfm [flags] inspect <key>
//
// encrypt writes the payload to <in>.hfm and the key to <out>.key by default.
// decrypt reads the key from <in>.key and writes <in> without ".hfm" plus ".txt".
// pack writes a single archive holding key and payload to <in>.hfa; unpack
// restores it to <in> without ".hfa".
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
