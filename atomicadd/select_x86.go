//go:build !noasm && !striped && (amd64 || 386)

package atomicadd

import "github.com/klauspost/cpuid/v2"

func init() {
	// Check if the CPU can compare-and-swap eight bytes
	if cpuid.CPU.Supports(cpuid.CMPXCHG8) {
		backend = CAS
	} else {
		backend = Striped
	}
}
