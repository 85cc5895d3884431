package rlc

// Version information for the rlc module.
const (
	// Version is the current version of the rlc module.
	Version = "1.0.0"

	// MinCompatibleVersion is the minimum version that is compatible with this version.
	MinCompatibleVersion = "1.0.0"
)
