//go:build !unix

package system

import (
	"fmt"
	"runtime"
)

func uname() (string, error) {
	return "", fmt.Errorf("uname not supported on %s", runtime.GOOS)
}
