// Package bootstrap sequences a complete run: choose a package manager,
// name the project, offer account and companion-browser setup, materialize
// the project, and print how to start it. Answers accumulate in a Config
// that lives only for the duration of Run.
package bootstrap
