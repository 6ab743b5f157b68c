// Copyright (c) 2026 Fielddrop Team
// Fielddrop - profile field drop pad
// This source code is licensed under the MIT license found in the LICENSE file.

// Package buildvars contains variables injected at build time, e.g.
//
//	go build -ldflags "-X github.com/toeirei/fielddrop/internal/buildvars.Version=1.2.3"
package buildvars

import "runtime/debug"

const modulePath = "github.com/toeirei/fielddrop"

var (
	Version   = "dev"
	GitCommit = "dev" // short commit SHA
	BuildDate = ""    // RFC3339
)

// Resolve prefers the module version recorded in info (or in the running
// binary when info is nil) and falls back to the linker values. Without any
// version the commit is reported instead.
func Resolve(info *debug.BuildInfo) (version, commit, date string) {
	version, commit, date = Version, GitCommit, BuildDate

	if info == nil {
		if local, ok := debug.ReadBuildInfo(); ok {
			info = local
		}
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			version = info.Main.Version
		}
		// `go install module@version` records us as a dependency
		if version == "dev" {
			for _, dep := range info.Deps {
				if dep.Path == modulePath && dep.Version != "" {
					version = dep.Version
					break
				}
			}
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					commit = s.Value
				}
			case "vcs.time":
				if s.Value != "" {
					date = s.Value
				}
			}
		}
	}

	if version == "dev" && commit != "" && commit != "dev" {
		version = commit
	}
	return version, commit, date
}

// String renders the version for --version.
func String() string {
	v, c, d := Resolve(nil)
	if c != "" && c != "dev" && c != v {
		v += " (" + c + ")"
	}
	if d != "" {
		v += " built: " + d
	}
	return v
}
