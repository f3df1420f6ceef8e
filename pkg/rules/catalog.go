package rules

// PackageManager describes one package-manager family by the substrings that
// mark its install, index-refresh, and cache-cleanup idioms. All matching is
// done against lowercased script text.
type PackageManager struct {
	Name string
	// Install marks an install directive, e.g. "apt-get install".
	Install string
	// Update marks an index refresh, empty if the family has none.
	Update string
	// Clean lists cache-clear idioms, any one of which satisfies the
	// cleanup rules.
	Clean []string
}

// Config carries the tunable thresholds and pattern catalogs. Integrators
// adjust sensitivity here instead of touching rule logic.
type Config struct {
	// MaxRunDirectives is the RUN count above which layer sprawl is flagged.
	MaxRunDirectives int
	// HeavyImages are base-image family names known to be large.
	HeavyImages []string
	// LightMarkers are substrings identifying slim base-image variants.
	LightMarkers []string
	// PackageManagers is the recognized family table.
	PackageManagers []PackageManager
	// NoRecommendsFlag is the apt flag that skips recommended packages.
	NoRecommendsFlag string
	// FetchMarkers are substrings identifying network-fetch directives.
	FetchMarkers []string
	// CleanupMarkers are substrings identifying temp/cache path cleanup.
	CleanupMarkers []string
	// BuildToolMarkers are substrings identifying compiler or build-tool
	// invocations, used by the multi-stage recommendation.
	BuildToolMarkers []string
	// CopyNoisePatterns are substrings in COPY/ADD arguments that indicate
	// documentation or test files being copied into the image.
	CopyNoisePatterns []string
}

// DefaultConfig returns the standard thresholds and catalogs.
func DefaultConfig() Config {
	return Config{
		MaxRunDirectives: 5,
		HeavyImages: []string{
			"ubuntu", "debian", "centos", "fedora",
			"amazonlinux", "rockylinux", "oraclelinux",
		},
		LightMarkers: []string{"alpine", "slim", "scratch", "distroless", "busybox"},
		PackageManagers: []PackageManager{
			{
				Name:    "apt",
				Install: "apt-get install",
				Update:  "apt-get update",
				Clean:   []string{"apt-get clean", "rm -rf /var/lib/apt/lists"},
			},
			{
				Name:    "apk",
				Install: "apk add",
				Update:  "apk update",
				Clean:   []string{"--no-cache", "rm -rf /var/cache/apk"},
			},
			{
				Name:    "yum",
				Install: "yum install",
				Update:  "yum makecache",
				Clean:   []string{"yum clean all"},
			},
			{
				Name:    "dnf",
				Install: "dnf install",
				Update:  "dnf makecache",
				Clean:   []string{"dnf clean all"},
			},
			{
				Name:    "pip",
				Install: "pip install",
				Clean:   []string{"--no-cache-dir", "pip cache purge"},
			},
			{
				Name:    "npm",
				Install: "npm install",
				Clean:   []string{"npm cache clean"},
			},
		},
		NoRecommendsFlag: "--no-install-recommends",
		FetchMarkers:     []string{"curl ", "wget ", "git clone"},
		CleanupMarkers: []string{
			"rm -rf /tmp", "rm -rf /var/tmp", "rm -rf /var/cache",
			"rm -rf /var/lib/apt/lists", "apt-get clean", "yum clean",
			"dnf clean", "apk del", "npm cache clean", "pip cache purge",
			"--no-cache",
		},
		BuildToolMarkers: []string{
			"go build", "mvn ", "gradle", "npm run build", "cargo build",
			"make ", "gcc ", "g++ ", "javac ", "dotnet build", "tsc",
		},
		CopyNoisePatterns: []string{
			"readme", ".md", "docs/", "test/", "tests/", "license", "changelog",
		},
	}
}
