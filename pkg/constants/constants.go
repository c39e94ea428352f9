package constants

// CLIName is the binary name used in user-facing output
const CLIName = "contentcheck"

// StopsSubdir and RoutesSubdir are the content directory layout: each kind of
// document lives in its own subdirectory of the content root, split across
// any number of files.
const (
	StopsSubdir  = "stops"
	RoutesSubdir = "routes"
)

// DocumentExtension selects which files of a content subdirectory are read
const DocumentExtension = ".yaml"

// ConfigFileName is the optional per-dataset configuration file at the content root
const ConfigFileName = "contentcheck.yaml"
