// Package container provides the generic building blocks of the Huffman pipeline:
// an ordered growable Sequence, a key/value Pair and an arena-backed binary Tree.
//
// Elements are typed through Go generics. Element lifecycle hooks (destroyers and
// printers) are optional and supplied through constructor options, so a container
// can release resources held by its elements when it is destroyed:
//
//	seq := container.NewSequence[*container.Pair[byte, uint64]](
//	    container.WithDestroyer(func(p *container.Pair[byte, uint64]) { p.Destroy() }),
//	)
//	seq.Append(container.NewPair[byte, uint64]('A', 1))
//	defer seq.Destroy()
//
// Out of range accesses never panic: Get and RemoveAt return the zero value and false.
//
// Containers are not safe for concurrent use.
package container
