// Package credentials owns the per-user account credential file ($HOME/.lsd).
// The file holds a single pretty-printed JSON object with the account's user
// (sign-in email) and password (API key). Its presence is what marks a
// machine as already authenticated.
package credentials
