package inplace

// sliceGuard tracks how many leading slots of a view hold live values.
// initialized is a high-water mark: it advances only after a slot has
// actually been written, so a panic mid-fill leaves it equal to the
// number of slots that were completed.
type sliceGuard[T any] struct {
	memory      []T
	initialized int
}

// fill writes gen(0) ... gen(len(memory)-1) into successive slots,
// advancing the high-water mark after each write.
func (g *sliceGuard[T]) fill(gen func(int) T) {
	for i := range g.memory {
		g.memory[i] = gen(i)
		g.initialized = i + 1
	}
}

// release clears exactly the initialized prefix, dropping any references
// those slots hold, and records the count. Safe after a partial fill;
// idempotent once it has run.
func (g *sliceGuard[T]) release() {
	clear(g.memory[:g.initialized])
	slotsReleased.Add(uint64(g.initialized))
	g.initialized = 0
}

// consume runs the guarded lifecycle over memory: fill every slot with
// gen, hand the view to consumer, release the initialized prefix. The
// release is deferred, so it still runs when gen or consumer panics, and
// clears only what was written before the panic.
func consume[T, R any](memory []T, gen func(int) T, consumer func([]T) R) R {
	g := sliceGuard[T]{memory: memory}
	defer g.release()
	g.fill(gen)
	return consumer(g.memory)
}
