// Package version contains the devicetrust version.
package version

// Version is the software version.
const Version = "0.1.0-dev"
