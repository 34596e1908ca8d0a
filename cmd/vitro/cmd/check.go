package cmd

import (
	"fmt"

	"github.com/go-drift/vitro/pkg/core"
	"github.com/go-drift/vitro/pkg/markup"
)

func init() {
	RegisterCommand(&Command{
		Name:  "check",
		Short: "Validate documents and style sheets",
		Long: `Validate markup documents against the known elements and the style
sheets listed in vitro.yaml.

Each document is loaded and updated once on the headless toolkit. A
document fails when it cannot be parsed, its root is not a View, it uses
a tag no element is registered for, or the update pass reports errors.

Documents are locations inside the resource root. Without arguments the
main document is checked.`,
		Usage: "vitro check [document...]",
		Run:   runCheck,
	})
}

func runCheck(args []string) error {
	cfg, err := openProject()
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{cfg.Main}
	}

	s, err := openSession(cfg, false)
	if err != nil {
		return err
	}
	defer s.close()

	failed := 0
	for _, location := range args {
		problems := checkDocument(s, location)
		if len(problems) == 0 {
			fmt.Fprintf(stdout, "ok    %s\n", location)
			continue
		}
		failed++
		fmt.Fprintf(stdout, "FAIL  %s\n", location)
		for _, p := range problems {
			fmt.Fprintf(stdout, "      %s\n", p)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d documents failed", failed, len(args))
	}
	return nil
}

// checkDocument returns the problems found in the document at location.
func checkDocument(s *session, location string) []string {
	doc, err := s.ctx.Loader().LoadXML(location)
	if err != nil {
		return []string{err.Error()}
	}

	var problems []string
	if doc.Tag != core.ViewTag {
		problems = append(problems, fmt.Sprintf("root element is <%s>, want <%s>", doc.Tag, core.ViewTag))
	}
	for _, tag := range unknownTags(s.ctx.Factory(), doc) {
		problems = append(problems, fmt.Sprintf("unknown element <%s>", tag))
	}
	if len(problems) > 0 {
		return problems
	}

	before := s.log.count()
	if err := s.load(location); err != nil {
		return []string{err.Error()}
	}
	if n := s.log.count() - before; n > 0 {
		problems = append(problems, fmt.Sprintf("%d errors reported while updating", n))
	}
	return problems
}

// unknownTags returns the element tags below the root of doc that the
// factory has no constructor for, in document order and without repeats.
func unknownTags(f *core.ElementsFactory, doc *markup.Node) []string {
	var tags []string
	seen := make(map[string]bool)
	var walk func(n *markup.Node)
	walk = func(n *markup.Node) {
		for _, child := range n.Children {
			if child.IsText() {
				continue
			}
			if !f.IsRegistered(child.Tag) && !seen[child.Tag] {
				seen[child.Tag] = true
				tags = append(tags, child.Tag)
			}
			walk(child)
		}
	}
	walk(doc)
	return tags
}
