//go:build !darwin

package tap

import (
	"fmt"
	"os"
)

// DisplayNotice writes the fatal alert header to stderr.
func DisplayNotice(header string) {
	fmt.Fprintln(os.Stderr, header)
}
