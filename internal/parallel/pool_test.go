package parallel

import (
	"runtime"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool(t *testing.T) {
	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{"explicit", 4, 4},
		{"zero uses gomaxprocs", 0, runtime.GOMAXPROCS(0)},
		{"negative uses gomaxprocs", -3, runtime.GOMAXPROCS(0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWorkerPool(tt.workers)
			defer p.Close()
			assert.Equal(t, tt.want, p.Workers())
			assert.True(t, p.IsRunning())
		})
	}
}

func TestExecuteAllRunsEveryJob(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var n atomic.Int64
	jobs := make([]func(), 500)
	for i := range jobs {
		jobs[i] = func() { n.Add(1) }
	}
	p.ExecuteAll(jobs)
	assert.Equal(t, int64(500), n.Load())

	p.ExecuteAll(nil)
	assert.Equal(t, int64(500), n.Load())
}

func TestExecuteAllAfterClose(t *testing.T) {
	p := NewWorkerPool(2)
	p.Close()
	p.Close()
	require.False(t, p.IsRunning())

	var n atomic.Int64
	p.ExecuteAll([]func(){func() { n.Add(1) }, nil, func() { n.Add(1) }})
	assert.Equal(t, int64(2), n.Load())
}

func TestMapKeepsOrder(t *testing.T) {
	in := make([]int, 200)
	for i := range in {
		in[i] = i
	}
	square := func(v int) int { return v * v }

	p := NewWorkerPool(8)
	defer p.Close()
	got := Map(p, in, square)
	want := Map(nil, in, square)
	require.Len(t, got, len(in))
	assert.Equal(t, want, got)
	assert.Equal(t, 199*199, got[199])

	assert.Empty(t, Map(p, []int{}, square))
}
