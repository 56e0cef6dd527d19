// Package bridge implements a synchronous method-call bridge between
// a host application and this library.
//
// A [*Channel] maps method names to handlers. A [*Messenger] keeps
// track of channels by name and dispatches calls to them. A call
// resolves to exactly one of three outcomes: success with a value, an
// error with a code and a message, or not implemented. Unknown
// channels and unknown methods always resolve to not implemented.
//
// The JSON functions in this package define the wire format used by
// mobile apps and by the local HTTP transport.
package bridge
