// Package stockyard holds release metadata shared by the CLI commands.
package stockyard

// Version is the stockyard release version, printed by the version
// command and reported by the root command's --version flag.
const Version = "0.1.0"
