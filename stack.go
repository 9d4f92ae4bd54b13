package inplace

// withBucket reserves a fixed-capacity array for the given bucket in the
// current call frame and passes a slice over its full capacity to f.
// The storage is reclaimed with the frame; no deallocation happens here.
// Whether the array stays on the goroutine stack is up to escape
// analysis, but the capacity is always one of the fixed bucket sizes, so
// frame growth stays bounded by the dispatcher's byte-limit check.
func withBucket[T, R any](capacity int, f func([]T) R) R {
	switch capacity {
	case 32:
		var buf [32]T
		return f(buf[:])
	case 64:
		var buf [64]T
		return f(buf[:])
	case 96:
		var buf [96]T
		return f(buf[:])
	case 128:
		var buf [128]T
		return f(buf[:])
	case 160:
		var buf [160]T
		return f(buf[:])
	case 192:
		var buf [192]T
		return f(buf[:])
	case 224:
		var buf [224]T
		return f(buf[:])
	case 256:
		var buf [256]T
		return f(buf[:])
	case 288:
		var buf [288]T
		return f(buf[:])
	case 320:
		var buf [320]T
		return f(buf[:])
	case 352:
		var buf [352]T
		return f(buf[:])
	case 384:
		var buf [384]T
		return f(buf[:])
	case 416:
		var buf [416]T
		return f(buf[:])
	case 448:
		var buf [448]T
		return f(buf[:])
	case 480:
		var buf [480]T
		return f(buf[:])
	case 512:
		var buf [512]T
		return f(buf[:])
	case 544:
		var buf [544]T
		return f(buf[:])
	case 576:
		var buf [576]T
		return f(buf[:])
	case 608:
		var buf [608]T
		return f(buf[:])
	case 640:
		var buf [640]T
		return f(buf[:])
	case 672:
		var buf [672]T
		return f(buf[:])
	case 704:
		var buf [704]T
		return f(buf[:])
	case 736:
		var buf [736]T
		return f(buf[:])
	case 768:
		var buf [768]T
		return f(buf[:])
	case 800:
		var buf [800]T
		return f(buf[:])
	case 832:
		var buf [832]T
		return f(buf[:])
	case 864:
		var buf [864]T
		return f(buf[:])
	case 896:
		var buf [896]T
		return f(buf[:])
	case 928:
		var buf [928]T
		return f(buf[:])
	case 960:
		var buf [960]T
		return f(buf[:])
	case 992:
		var buf [992]T
		return f(buf[:])
	case 1024:
		var buf [1024]T
		return f(buf[:])
	case 2048:
		var buf [2048]T
		return f(buf[:])
	case 4096:
		var buf [4096]T
		return f(buf[:])
	default:
		panic("inplace: no bucket with the selected capacity")
	}
}
