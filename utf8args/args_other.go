//go:build !windows

package utf8args

import (
	"os"
	"slices"
)

// Args returns the process arguments. The result is a copy; mutating it
// does not touch os.Args.
func Args() []string {
	return slices.Clone(os.Args)
}
