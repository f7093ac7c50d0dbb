// Package host models the build framework that the theme integrates with:
// the shared host configuration, integration handles carrying lifecycle hook
// chains, and a runner that drives the lifecycle.
package host
