//go:build striped

package atomicadd

// Building with -tags striped forces the locking backend, for hosts where
// many goroutines hammer few accumulators and CAS retries dominate.
func init() {
	backend = Striped
}
