// Package huffman builds Huffman trees and prefix codes from symbol frequencies.
//
// The pipeline is strictly linear:
//
//	ft := huffman.CountSymbols(data).WithEOS() // symbol -> count, plus end-of-stream
//	tree := huffman.BuildTree(ft)              // weighted full binary tree
//	codes, maxLen := huffman.DerivePrefixes(tree)
//
// # Symbols
//
// A Symbol is a byte value 0-255 or the end-of-stream sentinel EOS (256). EOS is
// outside the byte range, so NUL and every other byte remain ordinary payload.
//
// # Determinism
//
// BuildTree is deterministic for a given table order, not canonical. When several
// fragments share the minimum weight, the first one in fragment order wins and becomes
// the left child; merged fragments are appended at the end of the fragment list.
// Decoders must therefore rebuild the tree from a table with the same entry order,
// which is what the key file preserves.
package huffman
