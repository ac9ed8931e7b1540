package atomicadd

import "math"
import "sync/atomic"
import "unsafe"

type cas struct{}

func (cas) Name() string {
	return "cas"
}

func (cas) AddFloat64(addr *float64, val float64) float64 {
	bits := (*uint64)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint64(bits)
		if atomic.CompareAndSwapUint64(bits, old, math.Float64bits(math.Float64frombits(old)+val)) {
			return math.Float64frombits(old)
		}
	}
}

func (c cas) SubFloat64(addr *float64, val float64) float64 {
	return c.AddFloat64(addr, -val)
}

func (cas) AddFloat32(addr *float32, val float32) float32 {
	bits := (*uint32)(unsafe.Pointer(addr))
	for {
		old := atomic.LoadUint32(bits)
		if atomic.CompareAndSwapUint32(bits, old, math.Float32bits(math.Float32frombits(old)+val)) {
			return math.Float32frombits(old)
		}
	}
}

func (c cas) SubFloat32(addr *float32, val float32) float32 {
	return c.AddFloat32(addr, -val)
}
