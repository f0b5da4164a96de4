// internal/version/version.go
package version

// Version is the tool version reported by the CLI.
const Version = "0.2.0"
