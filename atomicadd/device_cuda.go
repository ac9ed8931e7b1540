//go:build cuda

package atomicadd

import "github.com/pkg/errors"
import "gorgonia.org/cu"

// QueryDevice reads the compute capability of the CUDA device ordinal.
func QueryDevice(ordinal int) (Capability, error) {
	count, err := cu.NumDevices()
	if err != nil {
		return Capability{}, errors.Wrap(err, "NumDevices")
	}
	if ordinal < 0 || ordinal >= count {
		return Capability{}, errors.Wrapf(ErrNoDevice, "ordinal %d of %d", ordinal, count)
	}
	dev := cu.Device(ordinal)
	name, err := dev.Name()
	if err != nil {
		return Capability{}, errors.Wrap(err, "Name")
	}
	major, err := dev.Attribute(cu.ComputeCapabilityMajor)
	if err != nil {
		return Capability{}, errors.Wrap(err, "ComputeCapabilityMajor")
	}
	minor, err := dev.Attribute(cu.ComputeCapabilityMinor)
	if err != nil {
		return Capability{}, errors.Wrap(err, "ComputeCapabilityMinor")
	}
	return Capability{Ordinal: ordinal, Name: name, Major: major, Minor: minor}, nil
}
