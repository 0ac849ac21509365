package opendata

var (
	// Version of opendata.
	Version = "v0.1.0"

	// Build timestamp, set with ldflags.
	Build = "n/a"
)
