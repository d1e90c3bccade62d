package version

import (
	"strings"
)

var (
	Program   = "wdcontext"
	Commit    = ""
	Version   = ""
	Copyright = "(c) 2026 the wdcontext authors"
)

func ProgramVersionShort() string {
	return strings.Trim(Program+" "+VersionStringShort(), " ")
}

func VersionStringShort() string {
	result := ""
	if Version != "" {
		result += Version
		if strings.Contains(Version, "-") {
			result += " (non-release)"
		}
	}
	if Commit != "" && !strings.Contains(Version, Commit) {
		result += " (commit " + Commit + ")"
	}
	if result == "" {
		result = "(unknown build)"
	}
	return result
}

func VersionString() string {
	return ProgramVersionShort() + ", " + Copyright
}
