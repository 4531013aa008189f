package version

// Build information, set at release time with
// -ldflags "-X github.com/arthur-debert/cowsay/internal/version.Version=..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)
