package cmd

import (
	"fmt"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/elements"
)

func init() {
	RegisterCommand(&Command{
		Name:  "tags",
		Short: "List the known element tags",
		Long: `List the markup tags the elements factory can build, one per line.
Any other tag produces a generic element without a widget.`,
		Usage: "vitro tags",
		Run:   runTags,
	})
}

func runTags(args []string) error {
	if len(args) > 0 {
		return fmt.Errorf("unexpected argument %q", args[0])
	}
	ctx := core.NewContext(core.Options{})
	defer ctx.Close()
	elements.RegisterAll(ctx.Factory())

	for _, tag := range ctx.Factory().Tags() {
		fmt.Fprintln(stdout, tag)
	}
	return nil
}
