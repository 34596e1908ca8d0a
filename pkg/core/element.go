package core

import (
	"fmt"
	"slices"
	"time"

	"github.com/go-drift/vitro/pkg/errors"
	"github.com/go-drift/vitro/pkg/graphics"
	"github.com/go-drift/vitro/pkg/layout"
)

// Attribute names read or written by this package.
const (
	AttrID      = "id"
	AttrClass   = "class"
	AttrStyle   = "style"
	AttrEnabled = "enabled"
	AttrVisible = "visible"
	AttrHover   = "hover"
	AttrActive  = "active"

	AttrOnMouseMove  = "onmousemove"
	AttrOnMouseEnter = "onmouseenter"
	AttrOnMouseExit  = "onmouseexit"
	AttrOnMouseDown  = "onmousedown"
	AttrOnMouseUp    = "onmouseup"
	AttrOnMove       = "onmove"
	AttrOnResize     = "onresize"
)

// Layout style properties. They are resolved by UpdateLayout rather than
// by Update.
const (
	StyleLeft          = "left"
	StyleTop           = "top"
	StyleWidth         = "width"
	StyleHeight        = "height"
	StylePadding       = "padding"
	StyleFlexDirection = "flex-direction"
)

var layoutStyleKeys = []string{StyleLeft, StyleTop, StyleWidth, StyleHeight, StylePadding, StyleFlexDirection}

// Element is a node of the declarative tree.
type Element interface {
	Tag() string
	Context() *Context

	Parent() Element
	Children() []Element
	// AddChild appends child, removing it from any previous parent.
	AddChild(child Element)
	// RemoveChild detaches child and reconciles it. The child stays usable
	// and may be added elsewhere.
	RemoveChild(child Element)
	// RemoveAllChildren detaches every child and disposes those that are
	// not stashed.
	RemoveAllChildren()
	// TopLevel returns the root of the tree containing the element.
	TopLevel() Element

	SetAttribute(name string, value any)
	Attribute(name string) Var
	AttributeChanged(name string) (bool, Var)
	AttributeNames() []string

	RegisterStyleProperty(name string)
	StyleProperty(name string) Var
	StylePropertyChanged(name string) (bool, Var)

	// Initialize runs once, before the first Update.
	Initialize()
	// Update pulls changed attributes and style properties into the
	// element's state.
	Update()
	// Reconcile synchronizes external wiring with the element's position
	// in the tree.
	Reconcile()
	// Dispose releases external resources. The element and its subtree
	// must not be used afterwards.
	Dispose()

	// LayoutBounds returns the computed layout rectangle relative to the
	// parent element.
	LayoutBounds() graphics.Rect

	InitScriptValue()
	ScriptValue() *ScriptValue
	EvaluateAttributeScript(name string)

	node() *Node
}

// Node is the generic element. Concrete elements embed it (usually through
// Component) and override the lifecycle methods they need.
type Node struct {
	self     Element
	tag      string
	ctx      *Context
	parent   Element
	children []Element

	attributes PropertySet
	styles     PropertySet
	styleKeys  []string
	layoutVals PropertySet

	box         *layout.Box
	script      *ScriptValue
	initialized bool
	disposed    bool
}

// NewNode creates a generic element carrying tag. It is what the factory
// builds for tags nobody registered.
func NewNode(tag string, ctx *Context) *Node {
	n := &Node{}
	n.InitNode(n, tag, ctx)
	return n
}

// InitNode prepares an embedded Node. self must be the outermost element
// value so overridden methods are reached from within the tree walk.
func (n *Node) InitNode(self Element, tag string, ctx *Context) {
	n.self = self
	n.tag = tag
	n.ctx = ctx
	n.box = layout.NewBox()
}

func (n *Node) node() *Node {
	return n
}

func (n *Node) Tag() string {
	return n.tag
}

func (n *Node) Context() *Context {
	return n.ctx
}

func (n *Node) String() string {
	return fmt.Sprintf("<%s>", n.tag)
}

func (n *Node) Parent() Element {
	return n.parent
}

// Children returns a copy of the child list.
func (n *Node) Children() []Element {
	return slices.Clone(n.children)
}

func (n *Node) AddChild(child Element) {
	if child == nil || child == n.self {
		return
	}
	if old := child.Parent(); old != nil {
		old.RemoveChild(child)
	}
	c := child.node()
	c.parent = n.self
	n.children = append(n.children, child)
	n.box.Append(c.box)
	n.requestUpdate()
}

func (n *Node) RemoveChild(child Element) {
	i := slices.Index(n.children, child)
	if i < 0 {
		return
	}
	n.children = slices.Delete(n.children, i, i+1)
	c := child.node()
	c.parent = nil
	n.box.Remove(c.box)
	child.Reconcile()
	n.requestUpdate()
}

func (n *Node) RemoveAllChildren() {
	for _, child := range n.Children() {
		n.RemoveChild(child)
		if n.ctx == nil || !n.ctx.Factory().IsStashed(child) {
			child.Dispose()
		}
	}
}

func (n *Node) TopLevel() Element {
	var top Element = n.self
	for p := top.Parent(); p != nil; p = p.Parent() {
		top = p
	}
	return top
}

// SetAttribute stores value under name. A changed value asks the tree's
// root for an update.
func (n *Node) SetAttribute(name string, value any) {
	if n.attributes.Set(name, VarOf(value)) {
		n.requestUpdate()
	}
}

func (n *Node) Attribute(name string) Var {
	return n.attributes.Get(name)
}

func (n *Node) AttributeChanged(name string) (bool, Var) {
	return n.attributes.Changed(name)
}

func (n *Node) AttributeNames() []string {
	return n.attributes.Names()
}

// RegisterStyleProperty makes name one of the style properties resolved on
// every Update. Registering a name twice has no effect.
func (n *Node) RegisterStyleProperty(name string) {
	if !slices.Contains(n.styleKeys, name) {
		n.styleKeys = append(n.styleKeys, name)
	}
}

// StyleProperties returns the registered style property names.
func (n *Node) StyleProperties() []string {
	return slices.Clone(n.styleKeys)
}

func (n *Node) StyleProperty(name string) Var {
	return n.styles.Get(name)
}

func (n *Node) StylePropertyChanged(name string) (bool, Var) {
	return n.styles.Changed(name)
}

func (n *Node) Initialize() {}

// Update resolves the registered style properties.
func (n *Node) Update() {
	for _, key := range n.styleKeys {
		n.styles.Set(key, n.resolveStyle(key))
	}
}

func (n *Node) Reconcile() {}

// Dispose disposes the subtree and detaches it from the layout tree.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.disposed = true
	for _, child := range n.children {
		child.node().parent = nil
		child.Dispose()
	}
	n.children = nil
	if p := n.box.Parent(); p != nil {
		p.Remove(n.box)
	}
}

// Disposed reports whether Dispose ran.
func (n *Node) Disposed() bool {
	return n.disposed
}

func (n *Node) LayoutBounds() graphics.Rect {
	return n.box.Rect()
}

// LayoutBox returns the element's node in the layout tree.
func (n *Node) LayoutBox() *layout.Box {
	return n.box
}

// UpdateChildren initializes, updates and reconciles every descendant,
// parents before children.
func (n *Node) UpdateChildren() {
	for _, child := range n.Children() {
		c := child.node()
		if c.disposed {
			continue
		}
		if !c.initialized {
			c.initialized = true
			child.Initialize()
		}
		child.Update()
		child.Reconcile()
		c.UpdateChildren()
	}
}

// UpdateLayout pulls the layout style properties of the subtree into the
// layout tree and reports whether layout needs to be recomputed.
func (n *Node) UpdateLayout() bool {
	n.updateLayoutStyle()
	for _, child := range n.children {
		child.node().UpdateLayout()
	}
	return n.box.NeedsLayout()
}

func (n *Node) updateLayoutStyle() {
	changed := false
	for _, key := range layoutStyleKeys {
		if n.layoutVals.Set(key, n.resolveStyle(key)) {
			changed = true
		}
	}
	if !changed {
		return
	}

	s := layout.Style{
		Direction: layout.ParseDirection(n.layoutVals.Get(StyleFlexDirection).String()),
		Left:      n.dimension(StyleLeft),
		Top:       n.dimension(StyleTop),
		Width:     n.dimension(StyleWidth),
		Height:    n.dimension(StyleHeight),
		Padding:   n.layoutVals.Get(StylePadding).Float(),
	}
	n.box.SetStyle(s)
}

func (n *Node) dimension(key string) layout.Dimension {
	d, err := layout.ParseDimension(n.layoutVals.Get(key).String())
	if err != nil {
		errors.Report(&errors.VitroError{Op: "core.Node.UpdateLayout", Kind: errors.KindLayout, Tag: n.tag, Err: err})
	}
	return d
}

// RecalculateLayout lays out the subtree in a width by height area and
// moves component widgets to their new bounds.
func (n *Node) RecalculateLayout(width, height float64) {
	n.box.Calculate(width, height)
	for _, child := range n.children {
		syncComponentBounds(child)
	}
}

func syncComponentBounds(e Element) {
	if c, ok := e.(interface{ UpdateComponentBoundsToLayout() }); ok {
		c.UpdateComponentBoundsToLayout()
	}
	for _, child := range e.node().children {
		syncComponentBounds(child)
	}
}

func (n *Node) resolveStyle(name string) Var {
	if n.ctx == nil || n.ctx.styles == nil {
		return Void
	}
	return n.ctx.styles.StyleProperty(n.self, name)
}

// requestUpdate asks the root of the tree, when it schedules updates, for
// a deferred pass.
func (n *Node) requestUpdate() {
	if s, ok := n.TopLevel().(UpdateScheduler); ok {
		s.ScheduleUpdate()
	}
}

// UpdateScheduler is implemented by roots that defer update passes.
type UpdateScheduler interface {
	ScheduleUpdate()
}

// InitScriptValue creates the scripting handle of the element. It is safe to
// call more than once.
func (n *Node) InitScriptValue() {
	if n.script != nil {
		return
	}
	n.script = &ScriptValue{element: n.self}
	if r, ok := n.self.(interface{ registerScriptProperties(*ScriptValue) }); ok {
		r.registerScriptProperties(n.script)
	}
}

func (n *Node) ScriptValue() *ScriptValue {
	return n.script
}

// EvaluateAttributeScript runs the script stored in the named attribute.
// Missing attributes and scripts without an engine are ignored; failures
// are reported and never propagate.
func (n *Node) EvaluateAttributeScript(name string) {
	src := n.Attribute(name)
	if src.IsVoid() || src.String() == "" || n.ctx == nil || n.ctx.scripts == nil {
		return
	}

	defer errors.Recover("core.Node.EvaluateAttributeScript")
	if err := n.ctx.scripts.Evaluate(n.self, name, src.String()); err != nil {
		errors.Report(&errors.VitroError{
			Op:        "core.Node.EvaluateAttributeScript",
			Kind:      errors.KindScript,
			Tag:       n.tag,
			Err:       fmt.Errorf("%s: %w", name, err),
			Timestamp: time.Now(),
		})
	}
}

// Walk calls fn for e and its descendants in pre-order until fn returns
// false.
func Walk(e Element, fn func(Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, child := range e.node().children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}
