// Package atomicadd implements the floating point atomic accumulation used by the
// simulation kernels, and the fail-fast check wrapped around device calls.
package atomicadd

// Adder adds to shared floating point accumulators without losing updates. Each
// call returns the value held before its own addition. Concurrent updates to one
// address must all go through the same Adder.
type Adder interface {
	AddFloat64(addr *float64, val float64) float64
	SubFloat64(addr *float64, val float64) float64
	AddFloat32(addr *float32, val float32) float32
	SubFloat32(addr *float32, val float32) float32

	// Name reports the backend for diagnostics.
	Name() string
}

// CAS retries a compare-and-swap of the IEEE bit pattern until it lands.
var CAS Adder = cas{}

// Striped serializes updates through a lock chosen by address. It is used where
// the processor cannot swap eight bytes atomically.
var Striped Adder = new(striped)

var backend = CAS

// Backend reports the Adder selected for this machine.
func Backend() Adder {
	return backend
}

// AddFloat64 adds val to *addr through the selected backend.
func AddFloat64(addr *float64, val float64) float64 {
	return backend.AddFloat64(addr, val)
}

func SubFloat64(addr *float64, val float64) float64 {
	return backend.SubFloat64(addr, val)
}

func AddFloat32(addr *float32, val float32) float32 {
	return backend.AddFloat32(addr, val)
}

func SubFloat32(addr *float32, val float32) float32 {
	return backend.SubFloat32(addr, val)
}
