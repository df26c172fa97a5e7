// Package main hosts the rechub CLI entrypoint and command graph.
//
// The Cobra-based command tree covers two modes of use: `rechub serve` runs
// the recommendation web server, while the remaining commands (search, moods,
// poster, cache, config) operate on the catalog and poster cache directly
// from the terminal. Configuration resolution is centralized in
// commandContext so subcommands share one loaded config.
//
// Keep this package lean: new functionality belongs in the internal packages
// first, surfaced here through dedicated commands or flags.
package main
