// Package platform provides the UI-thread task loop that hosts the
// deferred update passes of a View.
package platform
