package huffman

import (
	"strings"
	"testing"

	"github.com/dchest/uniuri"
	"github.com/stretchr/testify/require"
)

func requirePrefixFree(t *testing.T, pt *PrefixTable) {
	t.Helper()
	type coded struct {
		sym  Symbol
		code Code
	}
	var all []coded
	for sym, code := range pt.All() {
		all = append(all, coded{sym, code})
	}
	for i, a := range all {
		for j, b := range all {
			if i == j {
				continue
			}
			require.False(t, strings.HasPrefix(string(b.code), string(a.code)),
				"code %q of %s is a prefix of %q of %s", a.code, a.sym, b.code, b.sym)
		}
	}
}

func TestDerivePrefixes_TTT(t *testing.T) {
	tree := BuildTree(CountSymbols([]byte("TTT")).WithEOS())
	pt, maxLen := DerivePrefixes(tree)

	require.Equal(t, 1, maxLen)
	require.Equal(t, 2, pt.Len())

	eos, ok := pt.Code(EOS)
	require.True(t, ok)
	require.Equal(t, Code("0"), eos)

	tc, ok := pt.Code('T')
	require.True(t, ok)
	require.Equal(t, Code("1"), tc)
}

func TestDerivePrefixes_PrefixFree(t *testing.T) {
	inputs := []string{
		"Hello World!",
		"abracadabra",
		uniuri.NewLen(200),
		uniuri.NewLenChars(500, []byte("aaaaabbbcd\x00")),
	}
	for _, in := range inputs {
		tree := BuildTree(CountSymbols([]byte(in)).WithEOS())
		pt, maxLen := DerivePrefixes(tree)
		requirePrefixFree(t, pt)

		require.Equal(t, tree.Leaves(), pt.Len(), "every leaf gets exactly one code")
		longest := 0
		for _, code := range pt.All() {
			require.NotEmpty(t, code)
			longest = max(longest, len(code))
		}
		require.Equal(t, maxLen, longest)
	}
}

func TestDerivePrefixes_SingleLeaf(t *testing.T) {
	pt, maxLen := DerivePrefixes(BuildTree(CountSymbols([]byte("AAAA"))))
	require.Equal(t, 0, maxLen)
	code, ok := pt.Code('A')
	require.True(t, ok)
	require.Empty(t, code)
}

func TestDerivePrefixes_NilTree(t *testing.T) {
	pt, maxLen := DerivePrefixes(nil)
	require.Equal(t, 0, maxLen)
	require.Equal(t, 0, pt.Len())
	_, ok := pt.Code('A')
	require.False(t, ok)
}

func TestPrefixTable_LookupStringDestroy(t *testing.T) {
	pt, _ := DerivePrefixes(BuildTree(CountSymbols([]byte("TTT")).WithEOS()))

	e := pt.Lookup('T')
	require.NotNil(t, e)
	require.Equal(t, Code("1"), e.Value())
	require.Nil(t, pt.Lookup('x'))

	require.Equal(t, `<Sequence | size: 2 ; capacity: 2>[(EOS: "0"), ('T': "1")]`, pt.String())

	_, ok := pt.Code(AlphabetSize)
	require.False(t, ok)

	pt.Destroy()
	require.Equal(t, 0, pt.Len())
	_, ok = pt.Code('T')
	require.False(t, ok)
}

func BenchmarkBuildAndDerive(b *testing.B) {
	data := []byte(uniuri.NewLen(4096))
	for b.Loop() {
		tree := BuildTree(CountSymbols(data).WithEOS())
		DerivePrefixes(tree)
		tree.Release()
	}
}
