package container

import "fmt"

// PairOption configures a Pair.
type PairOption[K, V any] func(*Pair[K, V])

// WithKeyDestroyer sets the function Destroy runs on the key.
func WithKeyDestroyer[K, V any](fn func(K)) PairOption[K, V] {
	return func(p *Pair[K, V]) { p.destroyKey = fn }
}

// WithValueDestroyer sets the function Destroy runs on the value.
func WithValueDestroyer[K, V any](fn func(V)) PairOption[K, V] {
	return func(p *Pair[K, V]) { p.destroyValue = fn }
}

// WithKeyPrinter sets how String renders the key.
func WithKeyPrinter[K, V any](fn func(K) string) PairOption[K, V] {
	return func(p *Pair[K, V]) { p.printKey = fn }
}

// WithValuePrinter sets how String renders the value.
func WithValuePrinter[K, V any](fn func(V) string) PairOption[K, V] {
	return func(p *Pair[K, V]) { p.printValue = fn }
}

// Pair binds a key to a value, e.g. a symbol to its count or to its prefix code.
type Pair[K, V any] struct {
	key   K
	value V

	destroyKey   func(K)
	destroyValue func(V)
	printKey     func(K) string
	printValue   func(V) string
}

// NewPair creates a Pair that takes ownership of key and value.
func NewPair[K, V any](key K, value V, opts ...PairOption[K, V]) *Pair[K, V] {
	p := &Pair[K, V]{key: key, value: value}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// NewPairByCopy creates a Pair holding copies of key and value made by copyKey and
// copyValue, for callers that keep ownership of the originals. A nil copy function
// stores the argument as-is.
func NewPairByCopy[K, V any](key K, value V, copyKey func(K) K, copyValue func(V) V, opts ...PairOption[K, V]) *Pair[K, V] {
	if copyKey != nil {
		key = copyKey(key)
	}
	if copyValue != nil {
		value = copyValue(value)
	}

	return NewPair(key, value, opts...)
}

// Key returns the key.
func (p *Pair[K, V]) Key() K {
	return p.key
}

// Value returns the value.
func (p *Pair[K, V]) Value() V {
	return p.value
}

// SetValue replaces the value. The previous value is not destroyed.
func (p *Pair[K, V]) SetValue(v V) {
	p.value = v
}

// KeyEquals reports whether the pair's key equals candidate according to eq.
func (p *Pair[K, V]) KeyEquals(candidate K, eq func(a, b K) bool) bool {
	return eq(p.key, candidate)
}

// Destroy runs the configured key and value destroyers.
func (p *Pair[K, V]) Destroy() {
	if p.destroyKey != nil {
		p.destroyKey(p.key)
	}
	if p.destroyValue != nil {
		p.destroyValue(p.value)
	}
}

func (p *Pair[K, V]) String() string {
	k := fmt.Sprint(p.key)
	if p.printKey != nil {
		k = p.printKey(p.key)
	}
	v := fmt.Sprint(p.value)
	if p.printValue != nil {
		v = p.printValue(p.value)
	}

	return "(" + k + ": " + v + ")"
}

// Equal is the equality function for comparable keys.
func Equal[K comparable](a, b K) bool {
	return a == b
}

// FindByKey scans seq in order and returns the first pair whose key equals key,
// along with its index. It returns nil and -1 when no pair matches.
func FindByKey[K, V any](seq *Sequence[*Pair[K, V]], key K, eq func(a, b K) bool) (*Pair[K, V], int) {
	idx := seq.IndexFunc(func(p *Pair[K, V]) bool {
		return p != nil && p.KeyEquals(key, eq)
	})
	if idx < 0 {
		return nil, -1
	}
	p, _ := seq.Get(idx)

	return p, idx
}
