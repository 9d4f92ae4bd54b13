// Package inplace places short-lived arrays of a run-time length into
// fixed-capacity buckets that can live in the calling frame, falling back
// to a heap slice when a request is too large.
//
// # Overview
//
// A slice created with make(...) of a run-time length is always a heap
// allocation. On hot paths that repeatedly need small scratch arrays, that
// overhead adds up. This package dispatches each request over a fixed
// ladder of bucket capacities: the smallest bucket that holds the request
// and fits a caller-chosen byte limit is reserved as a fixed-size array in
// the current call frame, which gives the compiler the option of keeping
// it on the goroutine stack. Requests that exceed every bucket, or whose
// byte footprint exceeds the limit, transparently use a heap slice of the
// exact requested length instead. This is useful for:
//
//   - Scratch buffers in encoders, parsers and codecs
//   - Per-request temporary arrays in servers
//   - Reducing garbage collection pressure from short-lived slices
//   - Keeping worst-case frame growth bounded via the byte limit
//
// # Basic Usage
//
//	sum := inplace.Array(150, 4096,
//	    func(i int) int { return i * 2 }, // fills view[i]
//	    func(view []int) int {            // consumes the placed array
//	        total := 0
//	        for _, v := range view {
//	            total += v
//	        }
//	        return total
//	    })
//
// The consumer receives a view of exactly the requested length, filled by
// the generator, and its return value is handed back to the caller. The
// view is only valid during the consumer call.
//
// # Placement
//
// Bucket capacities are every multiple of 32 up to 1024, then 2048 and
// 4096. Dispatch walks them in ascending order and picks the first bucket
// whose capacity covers the request and whose byte footprint
// (capacity × element size) stays within the byte limit, so the smallest
// sufficient bucket always wins. Anything larger goes to the heap. The
// byte limit is a soft budget for frame growth, not a platform limit;
// selection never fails.
//
// # Lifetime and Cleanup
//
// Each call owns its buffer exclusively: dispatch, fill, consume, release
// run strictly in order on the calling goroutine. Release clears exactly
// the slots that were initialized, dropping any references they hold, and
// runs even when the generator or the consumer panics - a generator that
// panics after writing k elements leaves exactly k slots to clear, never
// more. Panics are never swallowed; they propagate after cleanup.
//
// # Uninitialized Placement
//
// ArrayUninitialized skips filling entirely. It is faster, but the view's
// contents are unspecified and its length is the full bucket capacity,
// which may exceed the request. Callers must write a slot before reading
// it. Use with care.
//
// # Important Notes
//
//   - The view must not be retained, stored, or sent to another goroutine;
//     it is valid only for the duration of the consumer call
//   - Stack residency is best effort: the fixed capacity makes it possible,
//     escape analysis makes the final call
//   - No resizing: a placed view never grows
//
// # Metrics and Monitoring
//
// Package-wide counters track placement outcomes:
//
//	m := inplace.Metrics()
//	fmt.Printf("stack: %d, heap: %d\n", m.StackPlacements, m.HeapPlacements)
//	fmt.Printf("slots released: %d\n", m.SlotsReleased)
package inplace
