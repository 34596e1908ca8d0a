// Package style resolves element style properties from YAML style sheets.
//
// A sheet maps selectors to property blocks:
//
//	Panel:
//	  background-color: "#202020"
//	"Button:hover, .accent":
//	  shadow-color: black
//	  shadow-radius: 8
//	"#title":
//	  font-size: 24
//
// The most specific matching rule wins; among equally specific rules the
// later one wins. Declarations in an element's style attribute
// ("color: red; alpha: 0.5") override every rule.
package style

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/vitro/pkg/core"
)

type rule struct {
	selector Selector
	props    map[string]any
}

// Sheet is a parsed style sheet. It implements core.StyleResolver.
type Sheet struct {
	rules []rule
}

var _ core.StyleResolver = (*Sheet)(nil)

// Parse parses a YAML style sheet.
func Parse(data []byte) (*Sheet, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	s := &Sheet{}
	if len(doc.Content) == 0 {
		return s, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("style: line %d: top level must be a mapping of selectors", root.Line)
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, block := root.Content[i], root.Content[i+1]
		if block.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("style: line %d: rule %q must be a mapping", block.Line, key.Value)
		}
		props, err := decodeBlock(block)
		if err != nil {
			return nil, err
		}
		for _, text := range strings.Split(key.Value, ",") {
			sel, err := ParseSelector(text)
			if err != nil {
				return nil, fmt.Errorf("style: line %d: %w", key.Line, err)
			}
			s.rules = append(s.rules, rule{selector: sel, props: props})
		}
	}
	return s, nil
}

func decodeBlock(block *yaml.Node) (map[string]any, error) {
	props := make(map[string]any, len(block.Content)/2)
	for i := 0; i+1 < len(block.Content); i += 2 {
		k, v := block.Content[i], block.Content[i+1]
		if v.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("style: line %d: property %q must be a scalar", v.Line, k.Value)
		}
		var value any
		if err := v.Decode(&value); err != nil {
			return nil, fmt.Errorf("style: line %d: %w", v.Line, err)
		}
		props[k.Value] = value
	}
	return props, nil
}

// Load reads a style sheet from r.
func Load(r io.Reader) (*Sheet, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return Parse(data)
}

// LoadFile reads the style sheet at path.
func LoadFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}
	return Parse(data)
}

// Len returns the number of rules. Comma-separated selectors count once
// per selector.
func (s *Sheet) Len() int {
	return len(s.rules)
}

// Append adds the rules of other after the rules of s, so they win ties.
func (s *Sheet) Append(other *Sheet) {
	s.rules = append(s.rules, other.rules...)
}

// StyleProperty returns the value of property name for e.
func (s *Sheet) StyleProperty(e core.Element, name string) core.Var {
	if v, ok := Inline(e.Attribute(core.AttrStyle).String())[name]; ok {
		return core.VarOf(v)
	}

	var (
		best    *rule
		bestSpc Specificity
	)
	for i := range s.rules {
		r := &s.rules[i]
		v, ok := r.props[name]
		if !ok || v == nil || !r.selector.Matches(e) {
			continue
		}
		spc := r.selector.Specificity()
		if best == nil || !spc.Less(bestSpc) {
			best, bestSpc = r, spc
		}
	}
	if best == nil {
		return core.Void
	}
	return core.VarOf(best.props[name])
}

// Inline parses the declarations of a style attribute.
func Inline(decl string) map[string]string {
	if strings.TrimSpace(decl) == "" {
		return nil
	}
	out := make(map[string]string)
	for _, part := range strings.Split(decl, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		k, v = strings.TrimSpace(k), strings.TrimSpace(v)
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
