// Package trustkall implements APIs used by mobile apps. We expose
// these APIs to mobile apps using gomobile.
//
// # Semantic versioning policy
//
// This package is public for technical reasons. We cannot use `go
// mobile` on a private package. We consider this package our private
// API for interfacing with our mobile applications for Android and iOS.
//
// # Device API
//
// The app implements the [Device] interface on top of the platform
// APIs (location manager, permission checks and system settings) and
// creates a [Session] with it. The session answers the two trust
// queries directly or through the call bridge, using JSON envelopes.
//
// Only types supported by gomobile appear in the exported API.
package trustkall
