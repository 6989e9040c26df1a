package rasterservice

import (
	"fmt"
	"log"
)

// WarpFunc executes one warp request. The pool stays agnostic of the
// warp implementation so that server mains can plug in whichever
// collaborator they build.
type WarpFunc func(*WarpRequest) (*WarpResult, error)

// Task carries one warp request through the pool. Resp and Error must
// have capacity of at least one so a worker can complete its send even
// when the submitting handler has stopped waiting.
type Task struct {
	Payload *WarpRequest
	Resp    chan *WarpResult
	Error   chan error
}

// TaskPool runs warp tasks on a fixed set of workers with a bounded
// queue. Requests beyond the queue capacity are rejected rather than
// buffered without limit.
type TaskPool struct {
	TaskQueue chan *Task
}

const taskQueueCap = 400

func (p *TaskPool) AddQueue(task *Task) {
	if len(p.TaskQueue) > taskQueueCap-10 {
		task.Error <- fmt.Errorf("warp TaskQueue is full")
		return
	}
	p.TaskQueue <- task
}

func CreateTaskPool(n int, warp WarpFunc, debug bool) *TaskPool {
	p := &TaskPool{TaskQueue: make(chan *Task, taskQueueCap)}

	for i := 0; i < n; i++ {
		go func(worker int) {
			for task := range p.TaskQueue {
				if debug {
					log.Printf("worker %d: warping %v", worker, task.Payload.GetPath())
				}

				res, err := warp(task.Payload)
				if err != nil {
					task.Error <- err
					continue
				}
				task.Resp <- res
			}
		}(i)
	}

	return p
}
