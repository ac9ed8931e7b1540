package parallel

import "sync"

import "github.com/neurlang/simrange/rangeutil"

// ForEach runs body for every i in [0, length) with at most limit goroutines alive.
func ForEach(length, limit int, body func(i int)) {
	if limit <= 0 {
		limit = 1
	}
	if length <= 0 {
		return
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup
	wg.Add(length)

	for i := 0; i < length; i++ {
		sem <- struct{}{}
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i)
		}(i)
	}

	wg.Wait()
}

// ForEachRange runs body for every element of r, passing its offset from r.Begin().
// The range is walked by the calling goroutine, so r needs only forward iterators.
func ForEachRange[T any, I rangeutil.Iterator[T, I]](r rangeutil.Range[T, I], limit int, body func(i int, v T)) {
	if limit <= 0 {
		limit = 1
	}

	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	i := 0
	for it := r.Begin(); !it.Equal(r.End()); it = it.Next() {
		sem <- struct{}{}
		wg.Add(1)
		go func(i int, v T) {
			defer wg.Done()
			defer func() { <-sem }()

			body(i, v)
		}(i, it.Deref())
		i++
	}

	wg.Wait()
}
