package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

const libraryPath = "github.com/joshuapare/varkit"

// version is overridden with -ldflags "-X main.version=..." for releases.
var version = ""

type buildInfo struct {
	Version   string `json:"version"`
	Library   string `json:"library"`
	Commit    string `json:"commit,omitempty"`
	Time      string `json:"time,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
	GoVersion string `json:"go"`
}

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version and build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersion()
		},
	})
}

func runVersion() error {
	info := readBuildInfo(debug.ReadBuildInfo)
	if jsonOut {
		return printJSON(info)
	}
	fmt.Printf("varctl %s (varkit %s, %s)\n", info.Version, info.Library, info.GoVersion)
	if info.Commit != "" {
		dirty := ""
		if info.Modified {
			dirty = " (modified)"
		}
		fmt.Printf("  commit: %s%s\n", info.Commit, dirty)
	}
	if info.Time != "" {
		fmt.Printf("  built: %s\n", info.Time)
	}
	return nil
}

// readBuildInfo collects the binary's module and VCS stamps. The varkit
// version is the replaced or required module version seen by the linker.
func readBuildInfo(read func() (*debug.BuildInfo, bool)) buildInfo {
	info := buildInfo{Version: "dev", Library: "unknown", GoVersion: "unknown"}
	if version != "" {
		info.Version = version
	}

	bi, ok := read()
	if !ok {
		return info
	}
	info.GoVersion = bi.GoVersion
	if version == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, dep := range bi.Deps {
		if dep.Path != libraryPath {
			continue
		}
		info.Library = dep.Version
		if dep.Replace != nil {
			info.Library = "local " + dep.Replace.Path
		}
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			info.Commit = s.Value
		case "vcs.time":
			info.Time = s.Value
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
