// Package theme provides the base "fish" integration: its bundled
// integrations and the virtual imports that page templates resolve, with user
// overrides applied.
package theme
