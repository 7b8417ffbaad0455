package models

// AppInfo describes the running server build. Returned by the version
// endpoint and shown in the client footer.
type AppInfo struct {
	// Version is the semantic version of the running server.
	Version string `json:"version"`

	// BuildDate is the build timestamp, "N/A" when not stamped.
	BuildDate string `json:"build_date"`

	// BuildCommit is the VCS commit the binary was built from,
	// "N/A" when not stamped.
	BuildCommit string `json:"build_commit"`
}
