// Package pkgmanager defines the Manager interface for the two supported
// dependency managers (yarn and npm). Dispatch selects the implementation by
// name; the Materializer only ever asks a Manager for command arguments and
// hands them to an exec.CommandRunner.
package pkgmanager
