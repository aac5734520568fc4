//go:build !unix

package hooks

import "os/exec"

// configureProcess keeps the default behavior of killing the direct child.
func configureProcess(cmd *exec.Cmd) {}
