//go:build arm64

package kernel

import "golang.org/x/sys/cpu"

func init() {
	hasPopcount = cpu.ARM64.HasASIMD
	initCapabilities()
}
