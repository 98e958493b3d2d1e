// Package wizard implements the two advisory setup steps that run before a
// project is created: connecting an account (which may persist a credential
// file) and installing the companion browser (which persists nothing).
// Neither wizard blocks the run; declining simply leaves the state as it was.
package wizard
