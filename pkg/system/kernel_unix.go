//go:build unix

package system

import "golang.org/x/sys/unix"

func uname() (string, error) {
	var buf unix.Utsname
	if err := unix.Uname(&buf); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf.Release[:]), nil
}
