package build

import "fmt"

// Overridden at build time with -ldflags "-X ..."
var (
	ShortVersion = "dev"
	GitRef       = "unknown"
	BuildDate    = "unknown"
)

var LongVersion = fmt.Sprintf("%s (%s, %s)", ShortVersion, GitRef, BuildDate)
