package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/vitro/pkg/native"
)

func init() {
	RegisterCommand(&Command{
		Name:  "dump",
		Short: "Print the widget tree of a document",
		Long: `Load a markup document on the headless toolkit and print the native
widget tree after the first update pass.

The document is a location inside the resource root configured in
vitro.yaml. It defaults to the main document.

Flags:
  --width N          Window width (default: window.width or 800)
  --height N         Window height (default: window.height or 600)
  --elements         Print the element tree with its attributes instead
  --trace            Print populate and update spans to stderr`,
		Usage: "vitro dump [document] [--width N] [--height N] [--elements] [--trace]",
		Run:   runDump,
	})
}

type dumpOptions struct {
	document string
	width    float64
	height   float64
	elements bool
	trace    bool
}

func parseDumpArgs(args []string) (dumpOptions, error) {
	var opts dumpOptions
	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--elements":
			opts.elements = true
		case "--trace":
			opts.trace = true
		case "--width", "--height":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("%s requires a value", arg)
			}
			v, err := strconv.ParseFloat(args[i+1], 64)
			if err != nil || v <= 0 {
				return opts, fmt.Errorf("%s: invalid size %q", arg, args[i+1])
			}
			if arg == "--width" {
				opts.width = v
			} else {
				opts.height = v
			}
			i++
		default:
			if opts.document != "" {
				return opts, fmt.Errorf("unexpected argument %q", arg)
			}
			opts.document = arg
		}
	}
	return opts, nil
}

func runDump(args []string) error {
	opts, err := parseDumpArgs(args)
	if err != nil {
		return err
	}

	cfg, err := openProject()
	if err != nil {
		return err
	}
	if opts.width > 0 {
		cfg.Width = opts.width
	}
	if opts.height > 0 {
		cfg.Height = opts.height
	}
	if opts.document == "" {
		opts.document = cfg.Main
	}

	s, err := openSession(cfg, opts.trace)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.load(opts.document); err != nil {
		return err
	}
	if opts.elements {
		dumpElements(stdout, s.view, 0)
		return nil
	}
	return native.Dump(stdout, s.view.Widget())
}
