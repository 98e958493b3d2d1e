// Package prompt reads validated answers from a line-oriented input stream.
// Every question in the wizard goes through Ask: the prompt text is written,
// one line is read, an empty line selects the default, and anything else is
// handed to an accept function. Rejected answers print a diagnostic and the
// question is asked again until a valid answer arrives, the input ends, or
// the engine's attempt limit is reached.
package prompt
