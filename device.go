// Device-style execution substrate for the parallel solver. The API mirrors
// a GPU runtime (contexts, streams, kernel launches over grid/block
// dimensions) but executes on CPU cores, so the parallel VFI form keeps the
// host-kernel/device-kernel split of its GPU counterpart.
package govfi

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// Device represents a compute device. Here this is the CPU with its cores
// and available memory.
type Device struct {
	ID         int    // Unique device identifier
	Name       string // Human-readable device name
	TotalMem   uint64 // Total available memory in bytes
	NumCores   int    // Number of CPU cores
	MaxThreads int    // Maximum concurrent threads
}

// Context represents an execution context. It manages device resources,
// memory allocation, and stream execution.
type Context struct {
	device        *Device
	mu            sync.Mutex
	streams       map[int]*Stream
	streamID      int32
	memory        *MemoryPool
	defaultStream *Stream
}

// Stream represents an ordered sequence of operations that execute
// asynchronously. Operations within a stream execute in order, but
// operations in different streams may execute concurrently.
type Stream struct {
	id    int
	tasks chan func()
	done  chan struct{}
	wg    sync.WaitGroup
	errMu sync.Mutex
	err   error
}

// Dim3 represents 3D dimensions for grid and block configurations
type Dim3 struct {
	X, Y, Z int
}

// ThreadID identifies a work-item's position within the execution
// hierarchy, with the same indexing semantics as a GPU kernel's built-in
// block/thread variables.
type ThreadID struct {
	BlockIdx  Dim3 // Block index within the grid
	ThreadIdx Dim3 // Thread index within the block
	BlockDim  Dim3 // Dimensions of the block
	GridDim   Dim3 // Dimensions of the grid
}

// Kernel represents a compute kernel that can be executed in parallel.
// Implementations must be safe for concurrent Execute calls. A non-nil
// error aborts the launch; the first error reported wins.
type Kernel interface {
	Execute(tid ThreadID) error
}

// KernelFunc is a function that can be launched as a kernel
type KernelFunc func(tid ThreadID) error

// Execute implements Kernel
func (fn KernelFunc) Execute(tid ThreadID) error {
	return fn(tid)
}

// Global runtime state
var (
	defaultDevice  *Device
	defaultContext *Context
	initOnce       sync.Once
)

func initRuntime() {
	initOnce.Do(func() {
		defaultDevice = &Device{
			ID:         0,
			Name:       deviceName(),
			TotalMem:   systemMemory(),
			NumCores:   runtime.NumCPU(),
			MaxThreads: runtime.NumCPU() * 2, // Hyperthreading
		}
		defaultContext = newContext(defaultDevice, int64(defaultDevice.TotalMem))
	})
}

// deviceName describes the CPU and its widest detected SIMD extension
func deviceName() string {
	switch {
	case cpu.X86.HasAVX512F:
		return "CPU (AVX-512)"
	case cpu.X86.HasAVX2:
		return "CPU (AVX2)"
	case cpu.X86.HasAVX:
		return "CPU (AVX)"
	case cpu.ARM64.HasASIMD:
		return "CPU (NEON)"
	default:
		return "CPU"
	}
}

func newContext(dev *Device, memLimit int64) *Context {
	ctx := &Context{
		device:  dev,
		streams: make(map[int]*Stream),
		memory:  NewMemoryPool(memLimit),
	}
	ctx.defaultStream = ctx.CreateStream()
	return ctx
}

// NewContext creates an isolated execution context on the default device
func NewContext() *Context {
	initRuntime()
	return newContext(defaultDevice, int64(defaultDevice.TotalMem))
}

// NewContextWithMemoryLimit creates an isolated context whose memory pool
// refuses allocations past the given byte budget. Used to exercise resource
// exhaustion without consuming real memory at scale.
func NewContextWithMemoryLimit(limit int64) *Context {
	initRuntime()
	return newContext(defaultDevice, limit)
}

// Malloc allocates device memory from the default context
func Malloc(size int) (DevicePtr, error) {
	initRuntime()
	return defaultContext.Malloc(size)
}

// Free releases device memory allocated by Malloc
func Free(ptr DevicePtr) error {
	initRuntime()
	return defaultContext.Free(ptr)
}

// Memcpy copies memory between host and device on the default context
func Memcpy(dst, src interface{}, size int, kind MemcpyKind) error {
	initRuntime()
	return defaultContext.Memcpy(dst, src, size, kind)
}

// LaunchFunc executes a kernel function on the default context
func LaunchFunc(fn KernelFunc, grid, block Dim3) error {
	initRuntime()
	return defaultContext.LaunchFunc(fn, grid, block)
}

// Synchronize waits for all operations on the default context to complete
// and reports the first kernel error since the previous synchronization.
func Synchronize() error {
	initRuntime()
	return defaultContext.Synchronize()
}

// GetDevice returns the current device information
func GetDevice() *Device {
	initRuntime()
	return defaultDevice
}

// Context methods

// CreateStream creates a new execution stream
func (ctx *Context) CreateStream() *Stream {
	id := int(atomic.AddInt32(&ctx.streamID, 1))
	stream := &Stream{
		id:    id,
		tasks: make(chan func(), 1000),
		done:  make(chan struct{}),
	}

	// Start worker goroutine for stream
	go stream.worker()

	ctx.mu.Lock()
	ctx.streams[id] = stream
	ctx.mu.Unlock()
	return stream
}

// Launch executes a kernel on the default stream
func (ctx *Context) Launch(kernel Kernel, grid, block Dim3) error {
	return ctx.LaunchStream(kernel, grid, block, ctx.defaultStream)
}

// LaunchFunc executes a kernel function on the default stream
func (ctx *Context) LaunchFunc(fn KernelFunc, grid, block Dim3) error {
	return ctx.LaunchStream(fn, grid, block, ctx.defaultStream)
}

// LaunchStream executes a kernel on a specific stream
func (ctx *Context) LaunchStream(kernel Kernel, grid, block Dim3, stream *Stream) error {
	if block.Size() > MaxWorkItemsPerBlock {
		return NewInvalidArgError("Launch",
			fmt.Sprintf("block size %d exceeds limit %d", block.Size(), MaxWorkItemsPerBlock))
	}
	return ctx.launchInternal(kernel.Execute, grid, block, stream)
}

// Synchronize waits for all streams to complete and returns the first
// kernel error recorded since the last synchronization.
func (ctx *Context) Synchronize() error {
	ctx.mu.Lock()
	streams := make([]*Stream, 0, len(ctx.streams))
	for _, s := range ctx.streams {
		streams = append(streams, s)
	}
	ctx.mu.Unlock()

	var first error
	for _, stream := range streams {
		if err := stream.Synchronize(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// Device returns the device this context executes on
func (ctx *Context) Device() *Device {
	return ctx.device
}

// Stream methods

// worker processes tasks for a stream
func (s *Stream) worker() {
	for task := range s.tasks {
		task()
		s.wg.Done()
	}
	close(s.done)
}

// Synchronize waits for all tasks in the stream to complete and returns the
// first recorded kernel error, clearing it for the next batch.
func (s *Stream) Synchronize() error {
	s.wg.Wait()
	s.errMu.Lock()
	defer s.errMu.Unlock()
	err := s.err
	s.err = nil
	return err
}

// Submit adds a task to the stream
func (s *Stream) Submit(task func()) {
	s.wg.Add(1)
	s.tasks <- task
}

// setErr records the first kernel error of the current batch
func (s *Stream) setErr(err error) {
	if err == nil {
		return
	}
	s.errMu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.errMu.Unlock()
}

// Helper functions

// Global returns the global work-item index
func (tid ThreadID) Global() int {
	return tid.BlockIdx.X*tid.BlockDim.X + tid.ThreadIdx.X
}

// Size returns the total number of elements
func (d Dim3) Size() int {
	x, y, z := d.X, d.Y, d.Z
	if x == 0 {
		x = 1
	}
	if y == 0 {
		y = 1
	}
	if z == 0 {
		z = 1
	}
	return x * y * z
}
