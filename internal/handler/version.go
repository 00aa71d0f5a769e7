package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo identifies the binary and the run it is serving. Seed and
// Version are enough to replay the run.
type VersionInfo struct {
	Version   string `json:"version"`
	Seed      uint64 `json:"seed"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Set with -ldflags "-X .../internal/handler.GitCommit=..."
var (
	BuildTime = ""
	GitCommit = ""
)

// HandleVersion reports the configured version and the run's seed.
func HandleVersion(version string, seed uint64) http.HandlerFunc {
	info := VersionInfo{
		Version:   version,
		Seed:      seed,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if info.GitCommit == "" {
		info.GitCommit = vcsRevision()
	}
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

func vcsRevision() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == "vcs.revision" {
			return s.Value
		}
	}
	return ""
}
