package workers

type Workers struct {
	workers []Worker
}

// NewWorkers groups background workers so the server entrypoint can start
// them with one call.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
