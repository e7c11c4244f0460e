package device

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectDefaults(t *testing.T) {
	cap := Detect("auto", 0)
	assert.False(t, cap.Accelerated)
	assert.Equal(t, "cpu", cap.Name)
	assert.Equal(t, runtime.NumCPU(), cap.Parallelism)
}

func TestDetectExplicitWorkers(t *testing.T) {
	cap := Detect("cpu", 4)
	assert.Equal(t, 4, cap.Parallelism)
}

func TestDetectGPURequest(t *testing.T) {
	cap := Detect("gpu", 2)
	assert.True(t, cap.Accelerated)
	assert.Equal(t, "gpu", cap.Name)
	assert.Equal(t, 2, cap.Parallelism)
}
