package hfm

import (
	"fmt"
	"io"
	"os"

	"github.com/arloliu/hfm/huffman"
	"github.com/arloliu/hfm/internal/pool"
	"github.com/arloliu/hfm/keyfile"
)

const filePerm = 0o644

// EncryptToFiles compresses the file at in, writing the payload to out and the key
// to key. The input is counted while it is read. Empty input produces empty output
// and key files.
func (c *Codec) EncryptToFiles(in, out, key string) error {
	f, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	defer f.Close()

	bb := pool.GetPayloadBuffer()
	defer pool.PutPayloadBuffer(bb)

	ft, err := huffman.CountReader(io.TeeReader(f, bb))
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	defer ft.Destroy()

	src := bb.Bytes()
	enc := encoded{payload: []byte{}}
	if len(src) > 0 {
		if enc, err = c.encodeCounted(src, ft); err != nil {
			return fmt.Errorf("encode %s: %w", in, err)
		}
		defer enc.tree.Release()
	}

	if err := os.WriteFile(out, enc.payload, filePerm); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if err := writeKey(key, ft); err != nil {
		return err
	}
	c.log.Debugf("%s: %d bytes -> %s: %d bytes, key %s: %d symbols", in, len(src), out, len(enc.payload), key, ft.Len())

	return nil
}

func writeKey(path string, ft *huffman.FrequencyTable) error {
	kf, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, filePerm)
	if err != nil {
		return fmt.Errorf("write key: %w", err)
	}
	if err := keyfile.Write(kf, ft); err != nil {
		_ = kf.Close()
		return fmt.Errorf("key %s: %w", path, err)
	}
	if err := kf.Close(); err != nil {
		return fmt.Errorf("write key: %w", err)
	}

	return nil
}

// DecryptFromFiles restores the file at in using the key file at key, writing the
// original bytes to out.
func (c *Codec) DecryptFromFiles(in, out, key string) error {
	kf, err := os.Open(key)
	if err != nil {
		return fmt.Errorf("open key: %w", err)
	}
	defer kf.Close()

	ft, err := keyfile.Read(kf)
	if err != nil {
		return fmt.Errorf("key %s: %w", key, err)
	}

	payload, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	tree := c.decodeTree(ft)
	defer tree.Release()

	dst, err := c.DecryptBytes(payload, tree)
	if err != nil {
		return fmt.Errorf("decode %s: %w", in, err)
	}

	if err := os.WriteFile(out, dst, filePerm); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.log.Debugf("%s: %d bytes -> %s: %d bytes", in, len(payload), out, len(dst))

	return nil
}
