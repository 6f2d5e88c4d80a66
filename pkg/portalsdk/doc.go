// Package portalsdk is the Go client for the registration portal API. It
// carries the wire types the server serializes, so the handlers and the
// client can never drift apart, plus a small typed client used by the e2e
// suite and any Go service that wants to drive the portal.
package portalsdk
