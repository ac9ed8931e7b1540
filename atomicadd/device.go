//go:build !cuda

package atomicadd

// QueryDevice always fails when built without the cuda tag.
func QueryDevice(ordinal int) (Capability, error) {
	return Capability{Ordinal: ordinal}, ErrNoDevice
}
