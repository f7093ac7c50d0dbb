// Package config validates Fish theme options and normalizes them into a
// fully-defaulted ThemeConfig.
//
// Input arrives as an untyped tree produced by a YAML, TOML or JSON decoder.
// Parse walks that tree once, applying defaults (including nested defaults
// for absent parent objects), enforcing the closed enum sets and numeric
// bounds, and collecting every failing field path instead of stopping at the
// first one. Unknown keys are dropped and reported as warnings.
package config
