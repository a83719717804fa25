package system

import "os/exec"

// PathLooker resolves executable names, allowing tests to fake $PATH.
type PathLooker interface {
	LookPath(file string) (string, error)
}

// ExecLooker resolves names with exec.LookPath.
type ExecLooker struct{}

// LookPath finds the path to an executable.
func (ExecLooker) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Detector finds which package managers are installed.
type Detector struct {
	looker PathLooker
}

// NewDetector creates a detector that searches $PATH.
func NewDetector() *Detector {
	return &Detector{looker: ExecLooker{}}
}

// NewDetectorWithLooker creates a detector with a custom looker (for testing).
func NewDetectorWithLooker(looker PathLooker) *Detector {
	return &Detector{looker: looker}
}

// Detect returns the candidates whose executable is present, in the order given.
func (d *Detector) Detect(candidates []string) []string {
	found := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, err := d.looker.LookPath(name); err == nil {
			found = append(found, name)
		}
	}
	return found
}

// Looker returns the underlying path looker.
func (d *Detector) Looker() PathLooker {
	return d.looker
}
