package handler

import (
	"encoding/json"
	"net/http"
	"runtime"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
}

// Build-time variables (injected via ldflags)
var (
	Version   = "dev"     // Set via -X flag at build time
	BuildTime = "unknown" // Set via -X flag at build time
	GitCommit = "unset"   // Set via -X flag at build time
)

// CurrentVersion returns build information for the running binary.
// configVersion is reported unless a version was injected at build time.
func CurrentVersion(configVersion string) VersionInfo {
	return VersionInfo{
		Version:   resolveVersion(configVersion),
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
}

// HandleVersion returns version information about the application.
// It is served on the internal listener only.
func HandleVersion(configVersion string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		buf := getBuffer()
		defer putBuffer(buf)

		if err := json.NewEncoder(buf).Encode(CurrentVersion(configVersion)); err != nil {
			respondText(w, r, http.StatusInternalServerError, ErrMsgInternalServerError)
			return
		}
		respondJSON(w, r, http.StatusOK, buf)
	}
}

// resolveVersion prefers the build-time version over the configured one
func resolveVersion(configVersion string) string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if configVersion != "" {
		return configVersion
	}
	return "dev"
}
