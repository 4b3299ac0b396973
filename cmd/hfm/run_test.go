package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

const sample = "Hello World! Hello Huffman!"

func writeSample(t *testing.T) (string, string) {
	t.Helper()
	dir := t.TempDir()
	in := filepath.Join(dir, "notes")
	require.NoError(t, os.WriteFile(in, []byte(sample), 0o600))

	return dir, in
}

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)

	return code, stdout.String(), stderr.String()
}

func TestRun_EncryptDecryptDefaults(t *testing.T) {
	_, in := writeSample(t)

	code, _, stderr := runCLI(t, "encrypt", in)
	require.Equal(t, 0, code, stderr)
	require.FileExists(t, in+".hfm")
	require.FileExists(t, in+".hfm.key")
	require.Contains(t, stderr, "[INFO] encrypted")

	code, _, stderr = runCLI(t, "decrypt", in+".hfm")
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(in + ".txt")
	require.NoError(t, err)
	require.Equal(t, sample, string(got))
}

func TestRun_EncryptDecryptExplicitPaths(t *testing.T) {
	dir, in := writeSample(t)
	out := filepath.Join(dir, "payload.bin")
	key := filepath.Join(dir, "table.key")
	restored := filepath.Join(dir, "restored")

	code, _, stderr := runCLI(t, "-v", "encrypt", in, out, key)
	require.Equal(t, 0, code, stderr)
	require.Contains(t, stderr, "[DEBUG]")

	code, _, stderr = runCLI(t, "decrypt", out, restored, key)
	require.Equal(t, 0, code, stderr)

	got, err := os.ReadFile(restored)
	require.NoError(t, err)
	require.Equal(t, sample, string(got))
}

func TestRun_PackUnpack(t *testing.T) {
	for _, compression := range []string{"none", "zstd", "s2", "lz4"} {
		t.Run(compression, func(t *testing.T) {
			_, in := writeSample(t)

			code, _, stderr := runCLI(t, "-key-compression", compression, "-big-endian", "pack", in)
			require.Equal(t, 0, code, stderr)
			require.FileExists(t, in+".hfa")

			require.NoError(t, os.Remove(in))
			code, _, stderr = runCLI(t, "-tree-cache", "4", "unpack", in+".hfa")
			require.Equal(t, 0, code, stderr)

			got, err := os.ReadFile(in)
			require.NoError(t, err)
			require.Equal(t, sample, string(got))
		})
	}
}

func TestRun_Inspect(t *testing.T) {
	_, in := writeSample(t)
	code, _, stderr := runCLI(t, "encrypt", in)
	require.Equal(t, 0, code, stderr)

	code, stdout, stderr := runCLI(t, "inspect", in+".hfm.key")
	require.Equal(t, 0, code, stderr)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	require.EqualValues(t, len(sample), report["input_bytes"])
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"no command", nil, 2},
		{"unknown command", []string{"compress", "x"}, 2},
		{"missing argument", []string{"encrypt"}, 2},
		{"too many arguments", []string{"inspect", "a", "b"}, 2},
		{"bad flag", []string{"-nope", "encrypt", "x"}, 2},
		{"bad compression", []string{"-key-compression", "brotli", "pack", "x"}, 2},
		{"missing input", []string{"encrypt", filepath.Join(dir, "missing")}, 1},
		{"not an archive", []string{"unpack", writeFile(t, dir, "bogus.hfa", "not an archive")}, 1},
		{"malformed key", []string{"inspect", writeFile(t, dir, "bad.key", "A:;")}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, _ := runCLI(t, tt.args...)
			require.Equal(t, tt.code, code)
		})
	}

	code, _, _ := runCLI(t, "-h")
	require.Equal(t, 0, code)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))

	return p
}
