package main

import "math"
import "os"

import "github.com/pkg/errors"
import "github.com/rs/zerolog"

import "github.com/neurlang/simrange/atomicadd"
import "github.com/neurlang/simrange/parallel"
import "github.com/neurlang/simrange/rangeutil"

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("configuration")
	}
	log = log.Level(cfg.level)

	adder := atomicadd.Backend()
	log.Info().Int("cells", cfg.Cells).Int("threads", cfg.Threads).Str("adder", adder.Name()).Msg("starting")

	dev, err := atomicadd.QueryDevice(cfg.Device)
	reportDevice(log, dev, err, atomicadd.Check)

	cells := populate(cfg)
	view := rangeutil.RangePointerView[compartment](cells)
	byCell := func(c compartment) int { return c.Cell }

	rangeutil.StableSortBy(view, byCell)
	if !rangeutil.IsSortedBy(view, byCell) {
		log.Fatal().Msg("compartments not ordered by cell")
	}

	area := compartment.area
	total := rangeutil.SumBy(view, area)

	var concurrent float64
	parallel.ForEachRange(view, cfg.Threads, func(_ int, c compartment) {
		adder.AddFloat64(&concurrent, c.area())
	})

	// per cell totals, by index into the storage
	perCell := make([]float64, cfg.Cells)
	parallel.ForEach(len(cells), cfg.Threads, func(i int) {
		adder.AddFloat64(&perCell[cells[i].Cell], cells[i].area())
	})

	// summation order differs, so only agreement to rounding is expected
	if diff := math.Abs(total - concurrent); diff > 1e-9*total {
		log.Error().Float64("sequential", total).Float64("concurrent", concurrent).Msg("accumulation mismatch")
		os.Exit(1)
	}

	voltages := rangeutil.TransformView(view, func(c compartment) float64 { return c.Voltage })
	bounds := rangeutil.MinMaxValue(voltages.All())

	largest := rangeutil.MaxElementBy(rangeutil.Slice(perCell), func(a float64) float64 { return a })
	first := rangeutil.SubrangeView(view, 0, min(view.Len(), cfg.Segments))
	dendritic := rangeutil.AnyOf(first, func(c compartment) bool { return c.Radius < 1 })

	var radii []float64
	radii = rangeutil.AssignBy(radii, view, func(c compartment) float64 { return c.Radius })
	rangeutil.Sort(rangeutil.Slice(radii))
	median := radii[len(radii)/2]

	log.Info().
		Int("compartments", view.Len()).
		Float64("area", total).
		Float64("v_min", bounds.Lower).
		Float64("v_max", bounds.Upper).
		Int("largest_cell", rangeutil.Distance(rangeutil.Slice(perCell).Begin(), largest)).
		Float64("largest_area", largest.Deref()).
		Float64("median_radius", median).
		Bool("thin_head", dendritic).
		Msg("done")
}

// reportDevice logs the queried accelerator. A missing device is expected; any
// other failure is handed to check, which does not return.
func reportDevice(log zerolog.Logger, dev atomicadd.Capability, err error, check func(op string, err error)) {
	switch {
	case err == nil:
		log.Info().Stringer("device", dev).Str("kernel", dev.KernelVariant()).Msg("accelerator")
	case errors.Cause(err) == atomicadd.ErrNoDevice:
		log.Debug().Err(err).Msg("no accelerator, host accumulation only")
	default:
		check("QueryDevice", err)
	}
}
