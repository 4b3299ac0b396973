package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/arloliu/hfm"
	"github.com/arloliu/hfm/format"
	"github.com/arloliu/hfm/internal/logger"
)

const (
	payloadExt = ".hfm"
	keyExt     = ".key"
	archiveExt = ".hfa"
	plainExt   = ".txt"
)

var errUsage = errors.New("usage")

const usageText = `usage: hfm [flags] <command> <args>

commands:
  encrypt <in> [out] [key]   compress <in> into a payload file and a key file
  decrypt <in> [out] [key]   restore a payload file with its key file
  pack <in> [out]            compress <in> into a single archive
  unpack <in> [out]          restore an archive
  inspect <key>              print the codes a key file produces as JSON

flags:
`

type command struct {
	codec *hfm.Codec
	log   logger.Logger
	out   io.Writer
}

// run executes the command line args and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hfm", flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "log debug messages")
	keyCompression := fs.String("key-compression", "none", "archive key compression: none, zstd, s2, lz4")
	bigEndian := fs.Bool("big-endian", false, "write archive header sizes big-endian")
	cacheSize := fs.Int("tree-cache", 0, "number of decode trees to cache, 0 disables")
	fs.Usage = func() {
		fmt.Fprint(stderr, usageText)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	level := logger.LevelInfo
	if *verbose {
		level = logger.LevelDebug
	}
	log := logger.New(stderr, level)

	compression, err := format.ParseCompressionType(*keyCompression)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	opts := []hfm.CodecOption{
		hfm.WithLogger(log),
		hfm.WithKeyCompression(compression),
		hfm.WithTreeCache(*cacheSize),
	}
	if *bigEndian {
		opts = append(opts, hfm.WithBigEndian())
	}
	codec, err := hfm.NewCodec(opts...)
	if err != nil {
		log.Errorf("%v", err)
		return 2
	}

	cmd := &command{codec: codec, log: log, out: stdout}
	if err := cmd.dispatch(fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			return 2
		}
		log.Errorf("%v", err)

		return 1
	}

	return 0
}

func (c *command) dispatch(args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	name, rest := args[0], args[1:]
	switch name {
	case "encrypt":
		return c.encrypt(rest)
	case "decrypt":
		return c.decrypt(rest)
	case "pack":
		return c.pack(rest)
	case "unpack":
		return c.unpack(rest)
	case "inspect":
		return c.inspect(rest)
	default:
		return fmt.Errorf("%w: unknown command %q", errUsage, name)
	}
}

// arg returns args[i], or def when absent.
func arg(args []string, i int, def string) string {
	if i < len(args) && args[i] != "" {
		return args[i]
	}

	return def
}

func checkArgs(args []string, maxArgs int) error {
	if len(args) == 0 || len(args) > maxArgs {
		return errUsage
	}

	return nil
}

func (c *command) encrypt(args []string) error {
	if err := checkArgs(args, 3); err != nil {
		return err
	}
	in := args[0]
	out := arg(args, 1, in+payloadExt)
	key := arg(args, 2, out+keyExt)

	if err := c.codec.EncryptToFiles(in, out, key); err != nil {
		return err
	}
	c.log.Infof("encrypted %s -> %s (key %s)", in, out, key)

	return nil
}

func (c *command) decrypt(args []string) error {
	if err := checkArgs(args, 3); err != nil {
		return err
	}
	in := args[0]
	out := arg(args, 1, strings.TrimSuffix(in, payloadExt)+plainExt)
	key := arg(args, 2, in+keyExt)

	if err := c.codec.DecryptFromFiles(in, out, key); err != nil {
		return err
	}
	c.log.Infof("decrypted %s -> %s (key %s)", in, out, key)

	return nil
}

func (c *command) pack(args []string) error {
	if err := checkArgs(args, 2); err != nil {
		return err
	}
	in := args[0]
	out := arg(args, 1, in+archiveExt)

	src, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	bundle, err := c.codec.Pack(src)
	if err != nil {
		return fmt.Errorf("pack %s: %w", in, err)
	}
	if err := os.WriteFile(out, bundle, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.log.Infof("packed %s (%d bytes) -> %s (%d bytes)", in, len(src), out, len(bundle))

	return nil
}

func (c *command) unpack(args []string) error {
	if err := checkArgs(args, 2); err != nil {
		return err
	}
	in := args[0]
	def := strings.TrimSuffix(in, archiveExt)
	if def == in {
		def = in + plainExt
	}
	out := arg(args, 1, def)

	bundle, err := os.ReadFile(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	dst, err := c.codec.Unpack(bundle)
	if err != nil {
		return fmt.Errorf("unpack %s: %w", in, err)
	}
	if err := os.WriteFile(out, dst, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	c.log.Infof("unpacked %s -> %s (%d bytes)", in, out, len(dst))

	return nil
}

func (c *command) inspect(args []string) error {
	if err := checkArgs(args, 1); err != nil {
		return err
	}

	key, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read key: %w", err)
	}
	report, err := hfm.Inspect(key)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", args[0], err)
	}

	return report.WriteJSON(c.out)
}
