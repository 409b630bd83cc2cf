package workerpool_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"deltastep/workerpool"
)

func TestPool_RunExecutesAllTasksBeforeReturning(t *testing.T) {
	p := workerpool.New(4)
	defer p.Shutdown()

	var counter atomic.Int64
	tasks := make([]workerpool.Task, 4)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}
	p.Run(tasks)

	require.EqualValues(t, 4, counter.Load())
}

func TestPool_MultipleEpochsReuseWorkers(t *testing.T) {
	p := workerpool.New(3)
	defer p.Shutdown()

	var total atomic.Int64
	for epoch := 0; epoch < 10; epoch++ {
		tasks := make([]workerpool.Task, 3)
		for i := range tasks {
			tasks[i] = func() { total.Add(1) }
		}
		p.Run(tasks)
	}

	require.EqualValues(t, 30, total.Load())
}

func TestPool_EachWorkerSeesOnlyItsOwnTask(t *testing.T) {
	p := workerpool.New(5)
	defer p.Shutdown()

	results := make([]int, 5)
	tasks := make([]workerpool.Task, 5)
	for i := range tasks {
		i := i
		tasks[i] = func() { results[i] = i * i }
	}
	p.Run(tasks)

	for i, r := range results {
		require.Equal(t, i*i, r)
	}
}

func TestPool_ShutdownJoinsAllWorkers(t *testing.T) {
	p := workerpool.New(8)
	// Run a harmless epoch to be sure all workers reached Idle at least once.
	tasks := make([]workerpool.Task, 8)
	for i := range tasks {
		tasks[i] = func() {}
	}
	p.Run(tasks)
	p.Shutdown() // must return; goroutine leak would hang the test via -race/-timeout.
}

func TestBarrier_ReleasesAllPartiesTogether(t *testing.T) {
	b := workerpool.NewBarrier(4)
	done := make(chan int, 4)
	for i := 0; i < 3; i++ {
		go func(id int) {
			b.Wait()
			done <- id
		}(i)
	}
	select {
	case <-done:
		t.Fatal("barrier released before all parties arrived")
	default:
	}
	b.Wait() // 4th party
	for i := 0; i < 3; i++ {
		<-done
	}
}
