package main

import "math"
import "math/rand"

import "github.com/neurlang/simrange/rangeutil"

// compartment is one cylindrical segment of a cell.
type compartment struct {
	Cell    int
	Length  float64 // µm
	Radius  float64 // µm
	Voltage float64 // mV
}

func (c compartment) area() float64 {
	return 2 * math.Pi * c.Radius * c.Length
}

// populate returns compartments of cfg.Cells cells in shuffled order.
func populate(cfg config) rangeutil.Vector[compartment] {
	rng := rand.New(rand.NewSource(cfg.Seed))
	var out rangeutil.Vector[compartment]
	for cell := 0; cell < cfg.Cells; cell++ {
		for n := 1 + rng.Intn(cfg.Segments); n > 0; n-- {
			out = append(out, compartment{
				Cell:    cell,
				Length:  5 + 20*rng.Float64(),
				Radius:  0.5 + 2*rng.Float64(),
				Voltage: -70 + 10*rng.NormFloat64(),
			})
		}
	}
	rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}
