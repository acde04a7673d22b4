package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/nguyengg/gzdump"
	"github.com/nguyengg/gzdump/internal"
)

// Command decodes the given gzip streams member by member and dumps every structural field of every member.
type Command struct {
	JSON   bool   `short:"j" long:"json" description:"print members as JSON instead of the text dump"`
	Verify bool   `long:"verify" description:"fail on any header CRC16, trailer CRC32, or ISIZE mismatch"`
	Cat    bool   `short:"c" long:"cat" description:"write the concatenated decoded contents instead of dumping structure"`
	Output string `short:"o" long:"output" description:"write to this file instead of stdout; a numeric suffix is added if the file already exists"`
	Args   struct {
		Files []string `positional-arg-name:"file" description:"local files, s3://bucket/key URIs, or - for stdin" required:"yes"`
	} `positional-args:"yes"`

	client GetObjectClient
	logger *log.Logger
	out    io.Writer
}

func (c *Command) Execute(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("unknown positional arguments: %s", strings.Join(args, " "))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer stop()

	if c.out == nil {
		if c.Output != "" {
			file, err := internal.OpenExclFile(c.Output)
			if err != nil {
				return err
			}
			defer file.Close()

			c.out = file
		} else {
			c.out = os.Stdout
		}
	}

	success := 0
	n := len(c.Args.Files)
	for i, file := range c.Args.Files {
		c.logger = internal.NewLogger(i, n, file)

		if err := c.inspect(ctx, file); err == nil {
			success++
			continue
		} else if errors.Is(err, context.Canceled) {
			break
		} else {
			c.logger.Printf("inspect error: %v", err)
		}
	}

	log.Printf("successfully inspected %d/%d files", success, n)
	return nil
}

func (c *Command) inspect(ctx context.Context, name string) error {
	src, size, err := c.open(ctx, name)
	if err != nil {
		return err
	}
	defer src.Close()

	var r io.Reader
	if size >= 0 {
		bar := internal.DefaultBytes(size, "decoding")
		defer bar.Close()
		r = io.TeeReader(src, bar)
	} else {
		meter := internal.NewMeter(c.logger, 5*time.Second)
		defer meter.Close()
		r = io.TeeReader(src, meter)
	}

	var optFns []func(*gzdump.Options)
	if c.Verify {
		optFns = append(optFns, gzdump.WithVerification())
	}

	members, err := gzdump.Decode(r, optFns...)
	if err != nil {
		return err
	}
	c.logger.Printf("decoded %d members", len(members))

	switch {
	case c.Cat:
		for _, m := range members {
			if _, err = c.out.Write(m.Data); err != nil {
				return fmt.Errorf("write contents error: %w", err)
			}
		}
	case c.JSON:
		enc := json.NewEncoder(c.out)
		enc.SetIndent("", "  ")
		if err = enc.Encode(members); err != nil {
			return fmt.Errorf("encode JSON error: %w", err)
		}
	default:
		for i := range members {
			if i > 0 {
				_, _ = fmt.Fprintln(c.out)
			}
			if _, err = fmt.Fprintf(c.out, "member %d:\n", i); err != nil {
				return fmt.Errorf("write dump error: %w", err)
			}
			if err = members[i].Dump(c.out); err != nil {
				return fmt.Errorf("write dump error: %w", err)
			}
		}
	}

	return nil
}
