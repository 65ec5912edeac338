package series

import (
	"github.com/shirou/gopsutil/mem"
)

// memoryBudget returns the byte budget of dense accumulators: a quarter of the
// memory currently available, capped by DefaultMemoryLimit. When the probe
// fails DefaultMemoryLimit is used.
func memoryBudget() int64 {
	vm, err := mem.VirtualMemory()
	if err != nil || vm == nil {
		return DefaultMemoryLimit
	}
	b := vm.Available / 4
	if b == 0 || b > uint64(DefaultMemoryLimit) {
		return DefaultMemoryLimit
	}

	return int64(b)
}

// denseFits reports whether copies dense arrays of size slots (times flavours)
// fit into limit bytes, without overflowing int64.
func denseFits(size int64, flavours, copies int, limit int64) bool {
	per := int64(flavours) * denseCellBytes * int64(copies)
	if per <= 0 || size <= 0 {
		return false
	}

	return size <= limit/per
}
