package govfi

import (
	"fmt"
	"runtime/debug"
)

const modulePath = "github.com/giob1994/govfi"

// Version reports the module version stamped into the running binary. For
// the bundled commands this is the main module version; when govfi is used
// as a dependency it is the version the consumer resolved, including any
// replace redirection. Returns "(devel)" when no version information is
// recorded, mirroring what the toolchain reports for uninstalled builds.
func Version() string {
	b, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	if b.Main.Path == modulePath && b.Main.Version != "" {
		return b.Main.Version
	}
	for _, m := range b.Deps {
		if m.Path != modulePath {
			continue
		}
		if m.Replace != nil && m.Replace.Version != "" {
			return fmt.Sprintf("%s=>%s", m.Version, m.Replace.Version)
		}
		return m.Version
	}
	return "(devel)"
}
