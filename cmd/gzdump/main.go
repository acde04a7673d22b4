package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/nguyengg/gzdump/internal/inspect"
)

var opts struct {
	Profile string `short:"p" long:"profile" description:"override AWS_PROFILE if given"`

	inspect.Command
}

func main() {
	p := flags.NewParser(&opts, flags.Default)

	args, err := p.Parse()
	if err != nil {
		exit(err)
		return
	}

	if opts.Profile != "" {
		if err = os.Setenv("AWS_PROFILE", opts.Profile); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "set AWS_PROFILE error: %v\n", err)
			exit(err)
			return
		}
	}

	if err = opts.Execute(args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
	}

	exit(err)
}
