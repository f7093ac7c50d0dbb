// Package components builds the HTML nodes that directive components and the
// heading anchor render to.
//
// Each directive name (github, note, tip, ...) maps to a Component. A Component
// carries a serializable descriptor, used when stage options are written out,
// and the render function that produces golang.org/x/net/html nodes.
package components
