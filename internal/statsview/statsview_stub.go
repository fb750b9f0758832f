//go:build !statsview

package statsview

import (
	"fmt"
	"io"
)

func Launch(output io.Writer) {
	fmt.Fprintln(output, "stats server not available: build with -tags statsview")
}

func Available() bool {
	return false
}
