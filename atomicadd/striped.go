package atomicadd

import "sync"
import "unsafe"

const stripes = 64

type striped struct {
	locks [stripes]sync.Mutex
}

func (*striped) Name() string {
	return "striped"
}

func (s *striped) lock(addr unsafe.Pointer) *sync.Mutex {
	return &s.locks[(uintptr(addr)>>3)%stripes]
}

func (s *striped) AddFloat64(addr *float64, val float64) float64 {
	mu := s.lock(unsafe.Pointer(addr))
	mu.Lock()
	old := *addr
	*addr = old + val
	mu.Unlock()
	return old
}

func (s *striped) SubFloat64(addr *float64, val float64) float64 {
	return s.AddFloat64(addr, -val)
}

func (s *striped) AddFloat32(addr *float32, val float32) float32 {
	mu := s.lock(unsafe.Pointer(addr))
	mu.Lock()
	old := *addr
	*addr = old + val
	mu.Unlock()
	return old
}

func (s *striped) SubFloat32(addr *float32, val float32) float32 {
	return s.AddFloat32(addr, -val)
}
