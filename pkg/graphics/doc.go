// Package graphics provides the value types exchanged between elements and
// native widgets: geometry, colors, drop shadows and fonts.
package graphics
