// Package bitpack turns prefix codes into packed payload bytes and back.
//
// # Framing
//
// The encoded bitstring, terminated by the end-of-stream code, is split into
// 7-bit chunks (format.FramingWidth). Each chunk occupies bits 7..1 of one output
// byte, most significant bit first; bit 0 is filler. The last chunk is padded with
// zero bits. The filler bit is set when the chunk itself is zero, so a payload
// never contains a 0x00 byte, and since decoders only read bits 7..1 the remap
// does not change any code bit.
//
//	chunk  0b1011001 -> byte 0b10110010
//	chunk  0b0000000 -> byte 0b00000001
//
// # Decoding
//
// DecodeBitstream walks the Huffman tree one bit at a time, emitting a byte at
// every data leaf and stopping at the EOS leaf. Bits after EOS are padding and
// are ignored.
package bitpack
