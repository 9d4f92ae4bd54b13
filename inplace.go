package inplace

import "unsafe"

// Array places count elements in a bucket or on the heap, fills slot i
// with gen(i), and calls consumer with a view of exactly count elements.
// The consumer's result is returned to the caller.
//
// The view is valid only during the consumer call. After the consumer
// returns (or panics), every initialized slot is cleared; a panic in gen
// or consumer propagates unchanged after that cleanup.
func Array[T, R any](count, byteLimit int, gen func(int) T, consumer func([]T) R) R {
	if count < 0 {
		count = 0
	}
	if capacity, ok := selectStorage(count, byteLimit, sizeOf[T]()); ok {
		stackPlacements.Add(1)
		return withBucket(capacity, func(buf []T) R {
			return consume(buf[:count], gen, consumer)
		})
	}
	heapPlacements.Add(1)
	return consume(make([]T, count), gen, consumer)
}

// CopyOf duplicates source into the selected storage and calls consumer
// with a view of exactly len(source) elements holding the copies. The
// consumer may mutate the view freely; source is never written to.
func CopyOf[T, R any](source []T, byteLimit int, consumer func([]T) R) R {
	return Array(len(source), byteLimit, func(i int) T { return source[i] }, consumer)
}

// ArrayUninitialized places count elements without filling them. The
// view's contents are unspecified and must be written before being read.
// On the bucket path the view spans the bucket's full capacity, which may
// exceed count (rounded up to a BlockSize multiple); on the heap path the
// view has exactly count elements. Nothing is cleared at release: slots
// the consumer writes keep their contents until the storage is reclaimed.
// This is faster than Array but shifts the initialize-before-read burden
// onto the caller. Use with care.
func ArrayUninitialized[T, R any](count, byteLimit int, consumer func([]T) R) R {
	if count < 0 {
		count = 0
	}
	if capacity, ok := selectStorage(count, byteLimit, sizeOf[T]()); ok {
		stackPlacements.Add(1)
		return withBucket(capacity, consumer)
	}
	heapPlacements.Add(1)
	return consumer(make([]T, count))
}

// Value places a single value in the current call frame and calls
// consumer with a pointer to it. The slot is cleared when the consumer
// returns or panics; the pointer must not outlive the call.
func Value[T, R any](value T, consumer func(*T) R) R {
	stackPlacements.Add(1)
	v := value
	defer func() {
		var zero T
		v = zero
		slotsReleased.Add(1)
	}()
	return consumer(&v)
}

// sizeOf returns the size of T in bytes.
func sizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
