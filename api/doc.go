// Package api exposes the help queue over HTTP. It translates requests into
// queue operations, queue errors into JSON error responses, and records an
// audit event after every successful serve or dismiss. The queue instance is
// injected at construction; the package holds no global state.
package api
