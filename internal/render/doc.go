// Package render produces the literal text of generated project files. It is
// pure: the same inputs always give the same bytes, and nothing here touches
// the filesystem or probes the environment.
package render
