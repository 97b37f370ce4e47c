// Package main hosts the coursebuild CLI entrypoint and command graph.
//
// The Cobra-based command tree converts playback course folders to the flat
// builder JSON and back, scaffolds new courses, inspects tables of contents,
// and manages autosaved drafts. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
