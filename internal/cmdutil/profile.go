package cmdutil

import (
	"fmt"

	"github.com/pkg/profile"
)

// StartProfile enables pprof output for kind ("cpu" or "mem") under dir.
// An empty kind is a no-op. Call the returned stop func before exiting.
func StartProfile(kind, dir string) (func(), error) {
	var mode func(*profile.Profile)
	switch kind {
	case "":
		return func() {}, nil
	case "cpu":
		mode = profile.CPUProfile
	case "mem":
		mode = profile.MemProfile
	default:
		return nil, fmt.Errorf("unknown profile kind %q (want cpu | mem)", kind)
	}
	opts := []func(*profile.Profile){mode, profile.Quiet, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}
	p := profile.Start(opts...)
	return p.Stop, nil
}
