package qbdiff

const version = "1.0.0"

// Version returns the library's version string.
func Version() string { return version }
