package chainkit

import (
	"context"
	"go/version"
	"runtime"

	"go.llib.dev/chainkit/pkg/logger"
)

// Profile is a set of runtime capabilities chainkit was adapted for.
type Profile struct {
	Name string
	// MinGoVersion is the oldest toolchain the profile was adapted for.
	MinGoVersion string
}

// profiles are ordered from the newest to the oldest.
var profiles = []Profile{
	{Name: "rangefunc", MinGoVersion: "go1.24"},
}

var capability Profile

func init() {
	c, err := selectCapability(runtime.Version())
	if err != nil {
		panic(err)
	}
	capability = c
	logger.Debug(context.Background(), "chainkit capability profile selected",
		logger.Field("profile", c.Name),
		logger.Field("go version", runtime.Version()))
}

// Capability returns the profile selected for the running toolchain.
func Capability() Profile { return capability }

// selectCapability picks the newest profile the version satisfies.
// Versions that can't be parsed, like development builds, get the newest profile.
func selectCapability(goVersion string) (Profile, error) {
	if !version.IsValid(goVersion) {
		return profiles[0], nil
	}
	for _, p := range profiles {
		if 0 <= version.Compare(goVersion, p.MinGoVersion) {
			return p, nil
		}
	}
	oldest := profiles[len(profiles)-1]
	return Profile{}, ErrUnsupportedConfiguration.F("%s is older than %s", goVersion, oldest.MinGoVersion)
}
