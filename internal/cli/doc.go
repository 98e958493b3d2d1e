// Package cli defines the Cobra command tree. The root command runs the
// interactive project wizard; doctor, version, and config are small helper
// commands. Commands only wire dependencies and format output; the work
// happens in the internal packages they call.
package cli
