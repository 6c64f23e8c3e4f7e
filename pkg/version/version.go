package version

import (
	"fmt"
	"runtime"
)

// APIVersion is the public API contract version reported by /api/health
const APIVersion = "1.0.0"

// Build information, set with -ldflags "-X .../pkg/version.Version=..."
var (
	Version   = APIVersion
	GitCommit = "unknown"
	BuildTime = "unknown"
	GoVersion = runtime.Version()
)

type Info struct {
	Version    string `json:"version"`
	APIVersion string `json:"api_version"`
	GitCommit  string `json:"git_commit"`
	BuildTime  string `json:"build_time"`
	GoVersion  string `json:"go_version"`
	Platform   string `json:"platform"`
}

func Get() Info {
	return Info{
		Version:    Version,
		APIVersion: APIVersion,
		GitCommit:  GitCommit,
		BuildTime:  BuildTime,
		GoVersion:  GoVersion,
		Platform:   fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

func (i Info) String() string {
	return fmt.Sprintf("Version: %s (API %s), Commit: %s, Built: %s, Go: %s, Platform: %s",
		i.Version, i.APIVersion, i.GitCommit, i.BuildTime, i.GoVersion, i.Platform)
}
