package misc

// Names of the applications and the prefix of their environment variables.
const (
	// NodeName is a name of the storage node daemon.
	NodeName = "cellar-node"

	// CLIName is a name of the command line tool.
	CLIName = "cellar-cli"

	// Prefix is an environment variables prefix shared by all applications.
	Prefix = "cellar"
)

// These variables are changed in compile time.
var (
	// Build is an application build time.
	Build = "now"

	// Version is an application version.
	Version = "dev"
)
