package workers

import (
	"context"
	"log"
	"sync"

	"github.com/wavebatch/converter-api/internal/converter"
)

const defaultQueueSize = 256

// Task describes a finished conversion awaiting post-processing
type Task struct {
	SourcePath string
	OutputPath string
}

// Processor handles one post-processing concern for a converted file.
// Processors run sequentially in registration order, so later processors
// can rely on the side effects of earlier ones.
type Processor interface {
	// Name returns a short identifier for logging
	Name() string

	// Process handles a single finished conversion
	Process(ctx context.Context, task Task) error
}

// Worker consumes succeeded conversions from the converter's event stream
// and runs post-processing off the conversion worker's goroutine, so slow
// probing or persistence never stalls the queue.
type Worker struct {
	processors []Processor

	queue    chan Task
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewWorker creates a post-processing worker running the given processors
func NewWorker(processors ...Processor) *Worker {
	return &Worker{
		processors: processors,
		queue:      make(chan Task, defaultQueueSize),
		stopChan:   make(chan struct{}),
	}
}

// HandleEvent implements converter.Observer. Only successful conversions
// are queued; everything else is ignored.
func (w *Worker) HandleEvent(event converter.Event) {
	if event.Type != converter.EventJobSucceeded {
		return
	}

	task := Task{SourcePath: event.SourcePath, OutputPath: event.DestinationPath}
	select {
	case w.queue <- task:
	default:
		log.Printf("[WARN] Post-processing queue full, dropping task for %s", task.SourcePath)
	}
}

// Start launches the background processing loop
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop stops the worker after its current task finishes
func (w *Worker) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopChan)
	})
	w.wg.Wait()
}

func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log.Printf("[DEBUG] Post-processing worker starting with %d processor(s)", len(w.processors))
	defer log.Printf("[DEBUG] Post-processing worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case task := <-w.queue:
			w.processTask(ctx, task)
		}
	}
}

// processTask runs every processor for one task. A processor failure is
// logged and does not stop the remaining processors.
func (w *Worker) processTask(ctx context.Context, task Task) {
	for _, p := range w.processors {
		if err := p.Process(ctx, task); err != nil {
			log.Printf("[ERROR] Processor %s failed for %s: %v", p.Name(), task.SourcePath, err)
		}
	}
}
