// Package integration composes the fish theme integration from user options.
//
// Composition checks that options carry a config, adds the local custom
// stylesheet when one exists, builds the base theme integration, validates the
// config, builds the markdown pipeline and wraps two lifecycle callbacks around
// the base integration's hooks:
//
//   - config:setup applies build, bundler and markdown pipeline settings.
//   - config:done warns when the host config has no site URL.
//
// Composition is synchronous. The only filesystem access is an existence
// check of CustomStylePath.
package integration
