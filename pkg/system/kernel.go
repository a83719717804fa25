package system

import "strings"

// UnknownKernel is shown when the kernel release cannot be determined.
const UnknownKernel = "Unknown"

// KernelProbe reports the running kernel's release string.
type KernelProbe interface {
	KernelVersion() string
}

// UnameProbe reads the release field of uname(2).
type UnameProbe struct{}

// KernelVersion returns the trimmed kernel release, or UnknownKernel.
func (UnameProbe) KernelVersion() string {
	release, err := uname()
	if err != nil {
		return UnknownKernel
	}
	release = strings.TrimSpace(release)
	if release == "" {
		return UnknownKernel
	}
	return release
}

// StaticKernel is a KernelProbe that always returns the same value.
type StaticKernel string

// KernelVersion returns k.
func (k StaticKernel) KernelVersion() string {
	return string(k)
}
