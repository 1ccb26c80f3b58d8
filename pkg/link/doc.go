// Package link drives API-mode frames over a shared byte transport.
package link

// The transport (a UART in the usual deployment) is a single shared
// resource. A Link wraps it with a mutex held for the whole of every
// send or receive, so two callers never interleave bytes on the wire.
//
// Receives poll: each attempt drains whatever the transport has, then
// the loop yields for a fixed interval before trying again, until the
// requested count arrives or the timeout budget is spent. Timeouts are
// cooperative and checked once per iteration; an in-progress receive
// cannot be aborted from another goroutine.
