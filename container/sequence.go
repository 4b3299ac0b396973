package container

import (
	"fmt"
	"iter"
	"strings"
)

const minSequenceCapacity = 2

// SequenceOption configures a Sequence.
type SequenceOption[T any] func(*Sequence[T])

// WithDestroyer sets the function run on every live element by Destroy.
func WithDestroyer[T any](fn func(T)) SequenceOption[T] {
	return func(s *Sequence[T]) {
		if fn != nil {
			s.destroy = fn
		}
	}
}

// WithPrinter sets the function used by String to render an element.
func WithPrinter[T any](fn func(T) string) SequenceOption[T] {
	return func(s *Sequence[T]) {
		if fn != nil {
			s.print = fn
		}
	}
}

// Sequence is an ordered, growable list of T.
//
// Capacity grows by half of its current size when exhausted and shrinks to 1.5x the
// live size once usage drops below half of the capacity, so alternating appends and
// removals around a boundary do not reallocate on every call.
type Sequence[T any] struct {
	elems   []T
	destroy func(T)
	print   func(T) string
}

// NewSequence creates an empty Sequence.
func NewSequence[T any](opts ...SequenceOption[T]) *Sequence[T] {
	s := &Sequence[T]{
		destroy: func(T) {},
		print:   func(v T) string { return fmt.Sprint(v) },
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Len returns the number of live elements.
func (s *Sequence[T]) Len() int {
	return len(s.elems)
}

// Cap returns the capacity of the backing storage.
func (s *Sequence[T]) Cap() int {
	return cap(s.elems)
}

// Append adds elem at the end of the sequence.
func (s *Sequence[T]) Append(elem T) {
	if len(s.elems) == cap(s.elems) {
		newCap := cap(s.elems) + cap(s.elems)/2
		if newCap < minSequenceCapacity {
			newCap = minSequenceCapacity
		}
		s.realloc(newCap)
	}
	s.elems = append(s.elems, elem)
}

// Get returns the element at index i without transferring ownership.
func (s *Sequence[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(s.elems) {
		var zero T
		return zero, false
	}

	return s.elems[i], true
}

// Set replaces the element at index i. The previous element is not destroyed.
func (s *Sequence[T]) Set(i int, elem T) bool {
	if i < 0 || i >= len(s.elems) {
		return false
	}
	s.elems[i] = elem

	return true
}

// RemoveAt removes the element at index i and returns it; the caller owns it afterwards.
// Trailing elements shift one position left.
func (s *Sequence[T]) RemoveAt(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(s.elems) {
		return zero, false
	}

	elem := s.elems[i]
	n := len(s.elems)
	copy(s.elems[i:], s.elems[i+1:])
	s.elems[n-1] = zero
	s.elems = s.elems[:n-1]
	s.shrink()

	return elem, true
}

// Pop removes and destroys the last element. It is a no-op on an empty sequence.
func (s *Sequence[T]) Pop() {
	elem, ok := s.RemoveAt(len(s.elems) - 1)
	if ok {
		s.destroy(elem)
	}
}

// IndexFunc returns the index of the first element satisfying match, or -1.
func (s *Sequence[T]) IndexFunc(match func(T) bool) int {
	for i, elem := range s.elems {
		if match(elem) {
			return i
		}
	}

	return -1
}

// All iterates over index/element pairs in order.
func (s *Sequence[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, elem := range s.elems {
			if !yield(i, elem) {
				return
			}
		}
	}
}

// Values iterates over the elements in order.
func (s *Sequence[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, elem := range s.elems {
			if !yield(elem) {
				return
			}
		}
	}
}

// Destroy runs the destroyer on every live element and releases the storage.
// The sequence stays usable and empty afterwards.
func (s *Sequence[T]) Destroy() {
	for _, elem := range s.elems {
		s.destroy(elem)
	}
	s.elems = nil
}

// String renders the sequence as "<Sequence | size: N ; capacity: C>[e1, e2]".
func (s *Sequence[T]) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<Sequence | size: %d ; capacity: %d>[", len(s.elems), cap(s.elems))
	for i, elem := range s.elems {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(s.print(elem))
	}
	sb.WriteByte(']')

	return sb.String()
}

func (s *Sequence[T]) shrink() {
	n := len(s.elems)
	if n == 0 {
		s.elems = nil
		return
	}
	if n >= cap(s.elems)/2 {
		return
	}

	newCap := n + n/2
	if newCap < minSequenceCapacity {
		newCap = minSequenceCapacity
	}
	if newCap < cap(s.elems) {
		s.realloc(newCap)
	}
}

func (s *Sequence[T]) realloc(newCap int) {
	elems := make([]T, len(s.elems), newCap)
	copy(elems, s.elems)
	s.elems = elems
}
