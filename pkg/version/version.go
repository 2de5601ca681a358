package version

// Version is replaced at build time by
// -ldflags "-X github.com/c9s/tarq/pkg/version.Version=..."
var Version = "v0.1.0-dev"

var VersionGitRef = "unknown"
