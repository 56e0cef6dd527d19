// Package trustprobe computes best-effort device trust signals.
//
// The probe answers two questions using only state available on the
// device: whether the current location is mocked and whether developer
// mode is enabled. Both answers are point-in-time booleans read through
// capabilities injected by the host (see [model.LocationAuthorizer],
// [model.LocationProviders] and [model.SettingsReader]).
//
// Every failure along the way (missing authorization, a provider that
// refuses to answer, a missing setting) is treated as "signal absent"
// and the answer degrades to false. Thus, false means that we found no
// evidence of tampering, not that the device is verified to be clean.
package trustprobe
