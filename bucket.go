package inplace

const (
	// BlockSize is the granularity of the bucket ladder. Every bucket
	// capacity is a multiple of BlockSize, so an uninitialized view's
	// length is always rounded up to a BlockSize multiple.
	BlockSize = 32

	// MaxBucketCapacity is the largest bucket. Requests above it are
	// placed on the heap regardless of the byte limit.
	MaxBucketCapacity = 4096
)

// bucketCapacities holds every bucket capacity in ascending order:
// each multiple of BlockSize up to 1024, then 2048 and 4096.
var bucketCapacities = bucketTable()

func bucketTable() []int {
	caps := make([]int, 0, 34)
	for c := BlockSize; c <= 1024; c += BlockSize {
		caps = append(caps, c)
	}
	return append(caps, 2048, MaxBucketCapacity)
}

// selectStorage picks the storage for count elements of elemSize bytes
// under byteLimit. It returns the capacity of the smallest sufficient
// bucket and true, or 0 and false when the request must go to the heap.
// Selection is total: every input maps to exactly one outcome.
func selectStorage(count, byteLimit, elemSize int) (int, bool) {
	for _, c := range bucketCapacities {
		if c < count {
			continue
		}
		// Compare via division so c*elemSize cannot overflow.
		if elemSize > 0 && c > byteLimit/elemSize {
			// Capacities only grow from here, so no later bucket
			// fits the limit either.
			return 0, false
		}
		return c, true
	}
	return 0, false
}
