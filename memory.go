package govfi

import (
	"fmt"
	"sync"
	"unsafe"
)

// MemcpyKind specifies the direction of memory transfer. In the unified
// memory model these are kept for API symmetry with a real device runtime
// and are treated identically, since all memory is CPU-accessible.
type MemcpyKind int

const (
	MemcpyHostToHost     MemcpyKind = iota // Host to host transfer
	MemcpyHostToDevice                     // Host to device transfer
	MemcpyDeviceToHost                     // Device to host transfer
	MemcpyDeviceToDevice                   // Device to device transfer
	MemcpyDefault                          // Default transfer (infer direction)
)

// MemoryPool manages device memory allocation with efficient reuse. It
// maintains a free list of previously allocated blocks to reduce allocation
// overhead, and enforces the device memory budget: allocations past the
// limit fail with a ResourceExhausted error.
type MemoryPool struct {
	mu         sync.Mutex
	limit      int64
	allocated  map[uintptr]*allocation
	freeList   []*allocation
	totalAlloc int64
	peakAlloc  int64
}

type allocation struct {
	buf  []byte // backing storage, keeps the block alive
	ptr  unsafe.Pointer
	size int
	used bool
}

// NewMemoryPool creates a memory pool with the given byte budget.
// A non-positive limit means unbounded.
func NewMemoryPool(limit int64) *MemoryPool {
	return &MemoryPool{
		limit:     limit,
		allocated: make(map[uintptr]*allocation),
	}
}

// DevicePtr represents a pointer to device memory. Use the typed view
// methods (Float64, Byte) to access the underlying data.
type DevicePtr struct {
	ptr    unsafe.Pointer
	size   int
	offset int
}

// Malloc allocates device memory of the specified size in bytes.
// The memory is aligned to a cache line.
func (ctx *Context) Malloc(size int) (DevicePtr, error) {
	return ctx.memory.Allocate(size)
}

// Free releases device memory allocated by Malloc. The block is retained in
// the pool for future allocations.
func (ctx *Context) Free(ptr DevicePtr) error {
	return ctx.memory.Free(ptr)
}

// Memcpy copies memory between host and device. Supports DevicePtr,
// []float64 and []byte on either side.
func (ctx *Context) Memcpy(dst, src interface{}, size int, kind MemcpyKind) error {
	// All transfers are plain copies on CPU; the API is kept for symmetry
	dstPtr, err := memcpyPointer("Memcpy dst", dst)
	if err != nil {
		return err
	}
	srcPtr, err := memcpyPointer("Memcpy src", src)
	if err != nil {
		return err
	}

	if dstPtr != nil && srcPtr != nil && size > 0 {
		copy(unsafe.Slice((*byte)(dstPtr), size), unsafe.Slice((*byte)(srcPtr), size))
	}
	return nil
}

func memcpyPointer(op string, v interface{}) (unsafe.Pointer, error) {
	switch x := v.(type) {
	case DevicePtr:
		if x.ptr == nil {
			return nil, ErrNullPointer
		}
		return x.ptr, nil
	case unsafe.Pointer:
		return x, nil
	case []byte:
		if len(x) > 0 {
			return unsafe.Pointer(&x[0]), nil
		}
		return nil, nil
	case []float64:
		if len(x) > 0 {
			return unsafe.Pointer(&x[0]), nil
		}
		return nil, nil
	case ValueFunction:
		if len(x) > 0 {
			return unsafe.Pointer(&x[0]), nil
		}
		return nil, nil
	default:
		return nil, NewInvalidArgError("Memcpy", fmt.Sprintf("unsupported %s type: %T", op, v))
	}
}

// MemoryPool methods

// Allocate allocates memory from the pool
func (mp *MemoryPool) Allocate(size int) (DevicePtr, error) {
	if size <= 0 {
		return DevicePtr{}, ErrInvalidSize
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	// Round up to alignment
	alignedSize := (size + MemoryAlignment - 1) &^ (MemoryAlignment - 1)

	// Try to reuse from free list
	for i, alloc := range mp.freeList {
		if alloc.size >= alignedSize {
			mp.freeList = append(mp.freeList[:i], mp.freeList[i+1:]...)
			alloc.used = true

			mp.totalAlloc += int64(alloc.size)
			if mp.totalAlloc > mp.peakAlloc {
				mp.peakAlloc = mp.totalAlloc
			}

			return DevicePtr{ptr: alloc.ptr, size: size}, nil
		}
	}

	if mp.limit > 0 && mp.totalAlloc+int64(alignedSize) > mp.limit {
		return DevicePtr{}, NewResourceError("Malloc",
			fmt.Sprintf("allocation of %d bytes exceeds device memory budget (%d of %d in use)",
				alignedSize, mp.totalAlloc, mp.limit), nil)
	}

	buf := make([]byte, alignedSize)
	alloc := &allocation{
		buf:  buf,
		ptr:  unsafe.Pointer(&buf[0]),
		size: alignedSize,
		used: true,
	}
	mp.allocated[uintptr(alloc.ptr)] = alloc

	mp.totalAlloc += int64(alignedSize)
	if mp.totalAlloc > mp.peakAlloc {
		mp.peakAlloc = mp.totalAlloc
	}

	return DevicePtr{ptr: alloc.ptr, size: size}, nil
}

// Free returns memory to the pool
func (mp *MemoryPool) Free(ptr DevicePtr) error {
	if ptr.ptr == nil {
		return nil
	}

	mp.mu.Lock()
	defer mp.mu.Unlock()

	alloc, ok := mp.allocated[uintptr(ptr.ptr)]
	if !ok {
		return NewResourceError("Free", "pointer not found in allocation pool", nil)
	}
	if !alloc.used {
		return ErrDoubleFree
	}

	alloc.used = false
	mp.freeList = append(mp.freeList, alloc)
	mp.totalAlloc -= int64(alloc.size)

	return nil
}

// GetStats returns memory pool statistics
func (mp *MemoryPool) GetStats() (allocated, peak int64) {
	mp.mu.Lock()
	defer mp.mu.Unlock()
	return mp.totalAlloc, mp.peakAlloc
}

// DevicePtr methods

// Float64 returns a float64 slice view of the device memory.
// The slice can be used directly for reading and writing data.
func (d DevicePtr) Float64() []float64 {
	if d.ptr == nil {
		return nil
	}
	return unsafe.Slice((*float64)(d.ptr), d.size/8)
}

// Byte returns a byte slice view of the device memory
func (d DevicePtr) Byte() []byte {
	if d.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(d.ptr), d.size)
}

// Offset returns a new DevicePtr offset by the given number of bytes.
// The returned DevicePtr shares the same underlying memory.
func (d DevicePtr) Offset(bytes int) DevicePtr {
	return DevicePtr{
		ptr:    unsafe.Pointer(uintptr(d.ptr) + uintptr(bytes)),
		size:   d.size - bytes,
		offset: d.offset + bytes,
	}
}

// Size returns the size in bytes of the memory region
func (d DevicePtr) Size() int {
	return d.size
}
