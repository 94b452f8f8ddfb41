package version

import (
	"fmt"
	"runtime"

	"github.com/Masterminds/semver/v3"

	"github.com/teranos/blockpress/errors"
)

// Build information. These variables are set at build time via ldflags.
var (
	// CommitHash is the git commit hash when the binary was built
	CommitHash = "dev"

	// BuildTime is when the binary was built
	BuildTime = "unknown"

	// Version is the semantic version (if tagged)
	Version = "dev"
)

// Info contains version and build information
type Info struct {
	CommitHash string `json:"commit_hash"`
	BuildTime  string `json:"build_time"`
	Version    string `json:"version"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

// Get returns the current version information
func Get() Info {
	return Info{
		CommitHash: CommitHash,
		BuildTime:  BuildTime,
		Version:    Version,
		GoVersion:  runtime.Version(),
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns a human-readable version string
func (i Info) String() string {
	return fmt.Sprintf("blockpress %s (commit %s, built %s)", i.Version, i.CommitHash, i.BuildTime)
}

// Short returns a short version string with just the commit hash
func (i Info) Short() string {
	if len(i.CommitHash) >= 7 {
		return i.CommitHash[:7]
	}
	return i.CommitHash
}

// CheckRemoteMinimum verifies that the remote endpoint's advertised version
// satisfies the minimum constraint this client requires. A "dev" build skips
// the check.
func CheckRemoteMinimum(remoteVersion, minimum string) error {
	if remoteVersion == "" || remoteVersion == "dev" {
		return nil
	}

	ver, err := semver.NewVersion(remoteVersion)
	if err != nil {
		return errors.Wrapf(err, "invalid remote version %q", remoteVersion)
	}

	constraint, err := semver.NewConstraint(">= " + minimum)
	if err != nil {
		return errors.Wrapf(err, "invalid minimum version %q", minimum)
	}

	if !constraint.Check(ver) {
		return errors.Newf("remote version %s is below required minimum %s", remoteVersion, minimum)
	}
	return nil
}
