package style

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/go-drift/vitro/pkg/core"
)

// ErrBadSelector is returned for selectors that cannot be parsed.
var ErrBadSelector = errors.New("style: bad selector")

// Pseudo states matched against the synthetic attributes maintained by
// components.
const (
	PseudoHover  = "hover"
	PseudoActive = "active"
)

// compound matches a single element: tag, id, classes and pseudo states.
type compound struct {
	tag     string
	id      string
	classes []string
	pseudos []string
}

func (c compound) matches(e core.Element) bool {
	if c.tag != "" && c.tag != "*" && c.tag != e.Tag() {
		return false
	}
	if c.id != "" && e.Attribute(core.AttrID).String() != c.id {
		return false
	}
	if len(c.classes) > 0 {
		have := strings.Fields(e.Attribute(core.AttrClass).String())
		for _, class := range c.classes {
			if !slices.Contains(have, class) {
				return false
			}
		}
	}
	for _, p := range c.pseudos {
		if !e.Attribute(p).Bool() {
			return false
		}
	}
	return true
}

// Selector is a chain of compounds separated by descendant combinators.
type Selector struct {
	text  string
	parts []compound
}

// Specificity counts ids, classes and pseudo states, and tags.
type Specificity [3]int

// Less reports whether s ranks below o.
func (s Specificity) Less(o Specificity) bool {
	for i := range s {
		if s[i] != o[i] {
			return s[i] < o[i]
		}
	}
	return false
}

// ParseSelector parses a selector like "Panel.box:hover #title".
func ParseSelector(text string) (Selector, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return Selector{}, fmt.Errorf("%w: empty", ErrBadSelector)
	}
	sel := Selector{text: strings.Join(fields, " ")}
	for _, f := range fields {
		c, err := parseCompound(f)
		if err != nil {
			return Selector{}, fmt.Errorf("%w: %q: %v", ErrBadSelector, text, err)
		}
		sel.parts = append(sel.parts, c)
	}
	return sel, nil
}

func parseCompound(s string) (compound, error) {
	var c compound
	i := strings.IndexAny(s, "#.:")
	if i < 0 {
		c.tag = s
		return c, nil
	}
	c.tag = s[:i]
	rest := s[i:]
	for rest != "" {
		kind := rest[0]
		rest = rest[1:]
		end := strings.IndexAny(rest, "#.:")
		if end < 0 {
			end = len(rest)
		}
		name := rest[:end]
		rest = rest[end:]
		if name == "" {
			return c, fmt.Errorf("empty name after %q", kind)
		}
		switch kind {
		case '#':
			if c.id != "" {
				return c, fmt.Errorf("more than one id")
			}
			c.id = name
		case '.':
			c.classes = append(c.classes, name)
		case ':':
			if name != PseudoHover && name != PseudoActive {
				return c, fmt.Errorf("unknown pseudo state %q", name)
			}
			c.pseudos = append(c.pseudos, name)
		}
	}
	return c, nil
}

// String returns the normalized selector text.
func (s Selector) String() string {
	return s.text
}

// Specificity returns the ranking of the selector.
func (s Selector) Specificity() Specificity {
	var sp Specificity
	for _, c := range s.parts {
		if c.id != "" {
			sp[0]++
		}
		sp[1] += len(c.classes) + len(c.pseudos)
		if c.tag != "" && c.tag != "*" {
			sp[2]++
		}
	}
	return sp
}

// Matches reports whether e matches the selector. Every compound but the
// last must match some ancestor, in order.
func (s Selector) Matches(e core.Element) bool {
	if len(s.parts) == 0 || !s.parts[len(s.parts)-1].matches(e) {
		return false
	}
	i := len(s.parts) - 2
	for p := e.Parent(); p != nil && i >= 0; p = p.Parent() {
		if s.parts[i].matches(p) {
			i--
		}
	}
	return i < 0
}
