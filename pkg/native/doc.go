// Package native defines the contract between vitro elements and the GUI
// toolkit that owns the real widgets, together with a headless toolkit that
// keeps the widget tree in memory.
//
// Elements only talk to widgets through the Widget interface. A toolkit
// binding implements Widget for its own widget type; the headless
// Component implementation backs the CLI and the tests.
//
// All widget calls happen on the UI thread.
package native
