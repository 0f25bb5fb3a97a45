package govfi

import (
	"testing"
)

// Each work-item must see its own global index exactly once
func TestKernelLaunchIndexing(t *testing.T) {
	const n = 10000

	d, err := Malloc(n * 8)
	if err != nil {
		t.Fatal(err)
	}
	defer Free(d)

	data := d.Float64()
	for i := range data {
		data[i] = -1
	}

	grid := Dim3{X: (n + DefaultBlockSize - 1) / DefaultBlockSize, Y: 1, Z: 1}
	block := Dim3{X: DefaultBlockSize, Y: 1, Z: 1}

	kernel := KernelFunc(func(tid ThreadID) error {
		idx := tid.Global()
		if idx < n {
			data[idx] = float64(idx)
		}
		return nil
	})

	if err := LaunchFunc(kernel, grid, block); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	if err := Synchronize(); err != nil {
		t.Fatalf("Synchronize failed: %v", err)
	}

	for i := 0; i < n; i++ {
		if data[i] != float64(i) {
			t.Fatalf("Work-item %d wrote %v", i, data[i])
		}
	}
}

func TestKernelErrorPropagation(t *testing.T) {
	const n = 1000

	kernel := KernelFunc(func(tid ThreadID) error {
		if tid.Global() == 37 {
			return NewDomainError("kernel", "log of non-positive consumption", nil)
		}
		return nil
	})

	grid := Dim3{X: (n + 63) / 64, Y: 1, Z: 1}
	block := Dim3{X: 64, Y: 1, Z: 1}

	if err := LaunchFunc(kernel, grid, block); err != nil {
		t.Fatalf("Launch failed: %v", err)
	}
	err := Synchronize()
	if err == nil {
		t.Fatal("Expected kernel error to surface at Synchronize")
	}
	if !IsDomainError(err) {
		t.Errorf("Expected Domain error, got %v", err)
	}

	// The error must not stick to the stream
	if err := Synchronize(); err != nil {
		t.Errorf("Synchronize after a failed batch should be clean, got %v", err)
	}
}

func TestBlockSizeLimit(t *testing.T) {
	kernel := KernelFunc(func(tid ThreadID) error { return nil })
	err := LaunchFunc(kernel, Dim3{X: 1, Y: 1, Z: 1}, Dim3{X: MaxWorkItemsPerBlock + 1, Y: 1, Z: 1})
	if !IsInvalidArgError(err) {
		t.Errorf("Expected InvalidArgument for oversized block, got %v", err)
	}
}

func TestThreadIDGlobal(t *testing.T) {
	tid := ThreadID{
		BlockIdx:  Dim3{X: 3, Y: 0, Z: 0},
		ThreadIdx: Dim3{X: 5, Y: 0, Z: 0},
		BlockDim:  Dim3{X: 64, Y: 1, Z: 1},
		GridDim:   Dim3{X: 8, Y: 1, Z: 1},
	}
	if got := tid.Global(); got != 3*64+5 {
		t.Errorf("Global() = %d, want %d", got, 3*64+5)
	}
}

func TestDim3Size(t *testing.T) {
	tests := []struct {
		dim  Dim3
		want int
	}{
		{Dim3{X: 4, Y: 2, Z: 3}, 24},
		{Dim3{X: 7, Y: 1, Z: 1}, 7},
		// Unset dimensions count as 1
		{Dim3{X: 5}, 5},
		{Dim3{}, 1},
	}
	for _, tt := range tests {
		if got := tt.dim.Size(); got != tt.want {
			t.Errorf("Size(%+v) = %d, want %d", tt.dim, got, tt.want)
		}
	}
}

func TestDeviceInfo(t *testing.T) {
	device := GetDevice()
	if device.NumCores < 1 {
		t.Errorf("Device reports %d cores", device.NumCores)
	}
	if device.TotalMem == 0 {
		t.Error("Device reports no memory")
	}
	if device.Name == "" {
		t.Error("Device has no name")
	}
}

func TestForEach(t *testing.T) {
	const n = 500

	ctx := NewContext()
	d, err := ctx.Malloc(n * 8)
	if err != nil {
		t.Fatal(err)
	}
	defer ctx.Free(d)

	if err := ctx.ForEach(d, n, func(idx int, v *float64) error {
		*v = 2 * float64(idx)
		return nil
	}); err != nil {
		t.Fatalf("ForEach failed: %v", err)
	}

	data := d.Float64()
	for i := 0; i < n; i++ {
		if data[i] != 2*float64(i) {
			t.Fatalf("Element %d = %v, want %v", i, data[i], 2*float64(i))
		}
	}
}
