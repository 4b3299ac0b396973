package bitpack

import (
	"bytes"
	"fmt"

	"github.com/arloliu/hfm/container"
	"github.com/arloliu/hfm/errs"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/internal/pool"
	"github.com/icza/bitio"
)

type decodeState uint8

const (
	atRoot decodeState = iota
	atInternal
)

// DecodeBitstream decodes framed payload bytes with tree until the EOS code.
//
// A tree made of a single leaf consumes no bits. If that leaf is EOS the result
// is empty; any other lone symbol makes the stream length unknowable and
// errs.ErrDegenerateTree is returned.
//
// Parameters:
//   - src: Payload produced by PackToBytes
//   - tree: Tree built from the same frequency table as the encoder's
//
// Returns:
//   - []byte: Decoded bytes, EOS not included
//   - error: errs.ErrTruncatedStream if src ends before EOS, errs.ErrEmptyTree for
//     a nil tree with a non-empty src
func DecodeBitstream(src []byte, tree *huffman.Tree) ([]byte, error) {
	if tree == nil || tree.Root() == container.NoNode {
		if len(src) == 0 {
			return []byte{}, nil
		}

		return nil, errs.ErrEmptyTree
	}

	root := tree.Root()
	if sym, ok := tree.Symbol(root); ok {
		if sym == huffman.EOS {
			return []byte{}, nil
		}

		return nil, fmt.Errorf("%w: lone symbol %s", errs.ErrDegenerateTree, sym)
	}

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)
	bb.Grow(len(src) * format.FramingWidth / 2)

	r := bitio.NewReader(bytes.NewReader(src))
	node, state := root, atRoot

	for range len(src) {
		chunk, err := r.ReadBits(format.FramingWidth)
		if err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}
		// filler bit
		if _, err := r.ReadBool(); err != nil {
			return nil, fmt.Errorf("read payload: %w", err)
		}

		for shift := format.FramingWidth - 1; shift >= 0; shift-- {
			if chunk>>shift&1 == 0 {
				node = tree.Left(node)
			} else {
				node = tree.Right(node)
			}

			sym, leaf := tree.Symbol(node)
			if !leaf {
				state = atInternal
				continue
			}
			if sym == huffman.EOS {
				return bb.Clone(), nil
			}
			_ = bb.WriteByte(sym.Byte())
			node, state = root, atRoot
		}
	}

	if state == atInternal {
		return nil, fmt.Errorf("%w: stream ends inside a code", errs.ErrTruncatedStream)
	}

	return nil, errs.ErrTruncatedStream
}
