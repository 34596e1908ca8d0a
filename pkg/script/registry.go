// Package script evaluates attribute scripts as calls to registered Go
// functions.
//
// A script is a semicolon separated list of calls:
//
//	onclick="toggle(selected); notify('saved', 2)"
//
// Arguments are passed as strings; single or double quotes around an
// argument are removed. The built-in functions set, toggle and clear
// change attributes of the element the script belongs to.
package script

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/go-drift/vitro/pkg/core"
)

// ErrUnknownFunction is returned when a script calls a name nobody
// registered.
var ErrUnknownFunction = errors.New("script: unknown function")

// ErrSyntax is returned for calls that cannot be parsed.
var ErrSyntax = errors.New("script: syntax error")

// Func is a script-callable function. e is the element whose attribute
// holds the script.
type Func func(e core.Element, args []string) error

// Call is a parsed function call.
type Call struct {
	Name string
	Args []string
}

// Registry maps function names to Go functions. It implements
// core.ScriptEngine.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

var _ core.ScriptEngine = (*Registry)(nil)

// NewRegistry returns a registry holding the built-in functions.
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func)}
	r.Register("set", setAttribute)
	r.Register("toggle", toggleAttribute)
	r.Register("clear", clearAttribute)
	return r
}

// Register binds name to fn, replacing any previous binding.
func (r *Registry) Register(name string, fn Func) {
	r.mu.Lock()
	r.funcs[name] = fn
	r.mu.Unlock()
}

// Unregister removes name.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	delete(r.funcs, name)
	r.mu.Unlock()
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (r *Registry) lookup(name string) Func {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.funcs[name]
}

// Evaluate parses source and runs its calls in order. The first failing
// call stops evaluation. attr is the attribute the script was read from
// and only appears in errors.
func (r *Registry) Evaluate(e core.Element, attr, source string) error {
	calls, err := Parse(source)
	if err != nil {
		return err
	}
	for _, c := range calls {
		fn := r.lookup(c.Name)
		if fn == nil {
			return fmt.Errorf("%w %q in %s", ErrUnknownFunction, c.Name, attr)
		}
		if err := fn(e, c.Args); err != nil {
			return fmt.Errorf("%s: %w", c.Name, err)
		}
	}
	return nil
}

// Parse splits source into calls. Empty statements are skipped. A bare
// name is a call without arguments.
func Parse(source string) ([]Call, error) {
	var calls []Call
	for _, stmt := range splitOutsideQuotes(source, ';') {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		c, err := parseCall(stmt)
		if err != nil {
			return nil, err
		}
		calls = append(calls, c)
	}
	return calls, nil
}

func parseCall(stmt string) (Call, error) {
	open := strings.IndexByte(stmt, '(')
	if open < 0 {
		if !isIdent(stmt) {
			return Call{}, fmt.Errorf("%w: %q", ErrSyntax, stmt)
		}
		return Call{Name: stmt}, nil
	}
	if !strings.HasSuffix(stmt, ")") {
		return Call{}, fmt.Errorf("%w: missing ) in %q", ErrSyntax, stmt)
	}
	name := strings.TrimSpace(stmt[:open])
	if !isIdent(name) {
		return Call{}, fmt.Errorf("%w: bad function name in %q", ErrSyntax, stmt)
	}
	c := Call{Name: name}
	inner := strings.TrimSpace(stmt[open+1 : len(stmt)-1])
	if inner == "" {
		return c, nil
	}
	for _, arg := range splitOutsideQuotes(inner, ',') {
		c.Args = append(c.Args, unquote(strings.TrimSpace(arg)))
	}
	return c, nil
}

func splitOutsideQuotes(s string, sep byte) []string {
	var (
		parts []string
		quote byte
		start int
	)
	for i := 0; i < len(s); i++ {
		switch ch := s[i]; {
		case quote != 0:
			if ch == quote {
				quote = 0
			}
		case ch == '\'' || ch == '"':
			quote = ch
		case ch == sep:
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}

func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '\'' || s[0] == '"') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r == '_' || r == '.' || r == '-':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

func wantArgs(args []string, n int) error {
	if len(args) != n {
		return fmt.Errorf("want %d arguments, got %d", n, len(args))
	}
	return nil
}

func setAttribute(e core.Element, args []string) error {
	if err := wantArgs(args, 2); err != nil {
		return err
	}
	e.SetAttribute(args[0], args[1])
	return nil
}

func toggleAttribute(e core.Element, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	e.SetAttribute(args[0], !e.Attribute(args[0]).Bool())
	return nil
}

func clearAttribute(e core.Element, args []string) error {
	if err := wantArgs(args, 1); err != nil {
		return err
	}
	e.SetAttribute(args[0], nil)
	return nil
}
