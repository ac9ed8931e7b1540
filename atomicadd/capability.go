package atomicadd

import "fmt"

// Capability identifies the compute generation of a device.
type Capability struct {
	Ordinal      int
	Name         string
	Major, Minor int
}

func (c Capability) String() string {
	return fmt.Sprintf("%s (sm_%d%d)", c.Name, c.Major, c.Minor)
}

// NativeDoubleAdd reports whether the device adds doubles atomically in hardware.
// Generations before 6.0 emulate it with a compare-and-swap loop.
func (c Capability) NativeDoubleAdd() bool {
	return c.Major >= 6
}

// KernelVariant names the double precision accumulation kernel to launch.
func (c Capability) KernelVariant() string {
	if c.NativeDoubleAdd() {
		return "atomic_add_f64"
	}
	return "atomic_add_f64_cas"
}
