// Command generate-app-icon renders the application icon to a PNG file.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/malonaz/appicon/go/flags"
	"github.com/malonaz/appicon/go/icon"
	"github.com/malonaz/appicon/go/logging"
)

type options struct {
	Logging *logging.Opts `group:"Logging" namespace:"logging" env-namespace:"LOGGING"`

	Out  string `long:"out" env:"APP_ICON_OUT" description:"output PNG path" default:"apps/macos/MeetingAssistantMac/Sources/MeetingAssistantMac/Resources/Icons/app_icon_1024.png"`
	Size int    `long:"size" env:"APP_ICON_SIZE" description:"icon edge length in pixels" default:"1024"`
}

func main() {
	ctx := context.Background()
	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		if usage, ok := flags.HelpMessage(err); ok {
			fmt.Fprintln(os.Stdout, usage)
			return
		}
		slog.ErrorContext(ctx, "generating icon", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	opts := options{Logging: &logging.Opts{}}
	if err := flags.ParseArgs(&opts, args); err != nil {
		return err
	}
	if err := logging.Init(opts.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}

	slog.DebugContext(ctx, "generating icon", "size", opts.Size, "out", opts.Out)
	if err := icon.Generate(opts.Size, opts.Out); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Generated icon: %s\n", opts.Out)
	return nil
}
