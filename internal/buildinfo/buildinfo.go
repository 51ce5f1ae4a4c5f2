// Package buildinfo holds the values injected at release time, e.g.
//
//	go build -ldflags "-X github.com/zbiljic/commitlint/internal/buildinfo.Version=1.0.0"
//
// An empty Version marks a development build.
package buildinfo

var (
	Version   string
	GitCommit string
	BuiltBy   string
)
