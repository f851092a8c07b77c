// Package main hosts the yyccgen CLI entrypoint and command graph.
//
// The Cobra command tree turns terminal invocations into calls on the
// generator packages: encoding table generation and inspection, build script
// generation, and configuration scaffolding. Configuration resolution and
// logger setup live here so the internal packages receive explicit values and
// never read flags or files on their own.
package main
