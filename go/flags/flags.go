package flags

import (
	"errors"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// ParseArgs parses the given args, without the program name, and env into opts.
// Positional arguments are rejected.
func ParseArgs(opts any, args []string) error {
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	rest, err := parser.ParseArgs(args)
	if err != nil {
		return fmt.Errorf("parsing flags: %w", err)
	}
	if len(rest) > 0 {
		return fmt.Errorf("parsing flags: unexpected arguments %q", rest)
	}
	return nil
}

// HelpMessage returns the usage text if err is a help request.
func HelpMessage(err error) (string, bool) {
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
		return flagsErr.Message, true
	}
	return "", false
}
