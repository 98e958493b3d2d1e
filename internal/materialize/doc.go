// Package materialize turns a completed configuration into a project on
// disk. The steps run in a fixed order: create the project directory, write
// tsconfig.json, initialize the manifest and install dependencies through
// the chosen manager, then write the entry file. Nothing is rolled back: a
// failure leaves the earlier steps' output in place.
//
// All paths are relative to an explicit working root. The process's current
// directory is never changed; external commands receive the project
// directory as their working directory instead.
package materialize
