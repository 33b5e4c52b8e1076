package converter

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/google/uuid"
	"github.com/wavebatch/converter-api/internal/models"
)

// Transcoder is the external decode/encode collaborator. The converter
// treats a call as opaque, potentially slow and blocking; it never inspects
// audio internals.
type Transcoder interface {
	Transcode(ctx context.Context, sourcePath, destinationPath string) error
}

// TranscoderFunc adapts a function to the Transcoder interface
type TranscoderFunc func(ctx context.Context, sourcePath, destinationPath string) error

// Transcode calls f(ctx, sourcePath, destinationPath)
func (f TranscoderFunc) Transcode(ctx context.Context, sourcePath, destinationPath string) error {
	return f(ctx, sourcePath, destinationPath)
}

// BatchStatus is a point-in-time snapshot of a batch's progress
type BatchStatus struct {
	BatchID   string `json:"batch_id"`
	Completed int    `json:"completed"`
	Total     int    `json:"total"`
	Finished  bool   `json:"finished"`
}

type batchState struct {
	total     int
	completed int
	finished  bool
}

// BatchConverter owns the queue of pending conversion jobs, runs them on a
// single background worker in submission order, emits progress and
// completion events, and maintains a cache mapping each source file to the
// output it produced. All exported methods are safe to call concurrently
// with the worker.
type BatchConverter struct {
	transcoder Transcoder

	mu           sync.Mutex
	queue        []*models.ConversionJob
	running      *models.ConversionJob
	cache        map[string]string
	batches      map[string]*batchState
	emptyBatches []string

	emitMu    sync.Mutex
	observers []Observer

	wake     chan struct{}
	stopChan chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// New creates a BatchConverter around the given transcoder. Call Start
// before submitting work.
func New(transcoder Transcoder) *BatchConverter {
	return &BatchConverter{
		transcoder: transcoder,
		cache:      make(map[string]string),
		batches:    make(map[string]*batchState),
		wake:       make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
	}
}

// RegisterObserver adds an observer to the event stream. Every event
// produced after registration is delivered to it, in production order.
func (c *BatchConverter) RegisterObserver(observer Observer) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.observers = append(c.observers, observer)
}

// Start launches the background worker
func (c *BatchConverter) Start(ctx context.Context) {
	c.wg.Add(1)
	go c.run(ctx)
}

// Stop stops the worker after its current job finishes. Safe to call more
// than once.
func (c *BatchConverter) Stop() {
	c.stopOnce.Do(func() {
		close(c.stopChan)
	})
	c.wg.Wait()
}

// OutputPath computes the destination path for a source file: the source's
// base name with its extension replaced by .wav, inside destinationDir.
func OutputPath(destinationDir, sourcePath string) string {
	base := filepath.Base(sourcePath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(destinationDir, base+".wav")
}

// Submit appends one job per source path, in input order, to the tail of
// the pending queue and returns the batch ID correlating them for progress
// reporting. The destination directory is validated now; each source is
// only re-validated when its job runs, since files may disappear in
// between. A currently running job is never preempted.
func (c *BatchConverter) Submit(sourcePaths []string, destinationDir string) (string, error) {
	if err := checkWritableDir(destinationDir); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidDestination, err)
	}

	batchID := uuid.NewString()

	c.mu.Lock()
	c.batches[batchID] = &batchState{total: len(sourcePaths)}
	for _, src := range sourcePaths {
		c.queue = append(c.queue, &models.ConversionJob{
			BatchID:         batchID,
			SourcePath:      src,
			DestinationPath: OutputPath(destinationDir, src),
			State:           models.JobStateQueued,
		})
	}
	if len(sourcePaths) == 0 {
		// Vacuous batch: the worker still emits its BatchFinished so all
		// events stay on one ordered stream.
		c.emptyBatches = append(c.emptyBatches, batchID)
	}
	c.mu.Unlock()

	log.Printf("[DEBUG] Submitted batch %s with %d file(s) -> %s", batchID, len(sourcePaths), destinationDir)

	c.signal()
	return batchID, nil
}

// Cancel removes the queued job for sourcePath before it starts. A running
// job is not interrupted: a single file's transcode is one atomic step, so
// cancellation is honored only at its natural completion boundary and the
// job still emits its natural terminal event. Returns ErrJobNotFound when
// no queued or running job exists for the path.
func (c *BatchConverter) Cancel(sourcePath string) error {
	c.mu.Lock()

	if c.running != nil && c.running.SourcePath == sourcePath {
		c.mu.Unlock()
		log.Printf("[DEBUG] Cancel requested for running job %s; it will finish its current transcode", sourcePath)
		return nil
	}

	for i, job := range c.queue {
		if job.SourcePath != sourcePath {
			continue
		}
		c.queue = append(c.queue[:i], c.queue[i+1:]...)
		job.State = models.JobStateCancelled
		batch := c.batches[job.BatchID]
		batch.completed++
		completed, total := batch.completed, batch.total
		finished := completed == total && !batch.finished
		if finished {
			batch.finished = true
		}
		// Take emitMu before releasing the state lock so the counter update
		// and its events publish atomically; a racing Cancel or job
		// completion cannot slip a later count in first.
		c.emitMu.Lock()
		c.mu.Unlock()

		log.Printf("[DEBUG] Cancelled queued job %s", sourcePath)
		c.deliver(Event{Type: EventJobCancelled, BatchID: job.BatchID, SourcePath: sourcePath})
		c.deliver(Event{Type: EventBatchProgress, BatchID: job.BatchID, Completed: completed, Total: total})
		if finished {
			c.deliver(Event{Type: EventBatchFinished, BatchID: job.BatchID, Completed: completed, Total: total})
		}
		c.emitMu.Unlock()
		return nil
	}

	c.mu.Unlock()
	return fmt.Errorf("%w: %s", ErrJobNotFound, sourcePath)
}

// BatchStatus returns a snapshot of a batch's progress
func (c *BatchConverter) BatchStatus(batchID string) (*BatchStatus, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	batch, ok := c.batches[batchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBatchNotFound, batchID)
	}
	return &BatchStatus{
		BatchID:   batchID,
		Completed: batch.completed,
		Total:     batch.total,
		Finished:  batch.finished,
	}, nil
}

// CachedOutput returns the output path recorded for a source file, if any
func (c *BatchConverter) CachedOutput(sourcePath string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	out, ok := c.cache[sourcePath]
	return out, ok
}

// CachedFiles returns a copy of the converted-files cache
func (c *BatchConverter) CachedFiles() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	files := make(map[string]string, len(c.cache))
	for src, out := range c.cache {
		files[src] = out
	}
	return files
}

// Evict removes a source file from the converted-files cache. The cache is
// never pruned by the converter itself; eviction is always explicit.
func (c *BatchConverter) Evict(sourcePath string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.cache[sourcePath]; !ok {
		return false
	}
	delete(c.cache, sourcePath)
	return true
}

// run is the worker loop
func (c *BatchConverter) run(ctx context.Context) {
	defer c.wg.Done()

	log.Printf("[DEBUG] Conversion worker starting")
	defer log.Printf("[DEBUG] Conversion worker stopped")

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopChan:
			return
		case <-c.wake:
			c.drain(ctx)
		}
	}
}

// drain processes queued jobs until the queue empties
func (c *BatchConverter) drain(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-c.stopChan:
			return
		default:
		}

		c.finishEmptyBatches()

		job := c.claimNext()
		if job == nil {
			return
		}
		c.process(ctx, job)
	}
}

// finishEmptyBatches emits BatchFinished for batches submitted with no jobs
func (c *BatchConverter) finishEmptyBatches() {
	c.mu.Lock()
	pending := c.emptyBatches
	c.emptyBatches = nil
	for _, batchID := range pending {
		c.batches[batchID].finished = true
	}
	c.mu.Unlock()

	for _, batchID := range pending {
		c.emit(Event{Type: EventBatchFinished, BatchID: batchID})
	}
}

// claimNext pops the head of the pending queue and marks it running
func (c *BatchConverter) claimNext() *models.ConversionJob {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.queue) == 0 {
		return nil
	}
	job := c.queue[0]
	c.queue = c.queue[1:]
	job.State = models.JobStateRunning
	c.running = job
	return job
}

// process runs a single job to its terminal state. Per-job failures are
// reported through the event stream and never abort the batch.
func (c *BatchConverter) process(ctx context.Context, job *models.ConversionJob) {
	c.emit(Event{Type: EventJobStarted, BatchID: job.BatchID, SourcePath: job.SourcePath})

	if err := checkReadableFile(job.SourcePath); err != nil {
		job.State = models.JobStateFailed
		log.Printf("[ERROR] Source unavailable for %s: %v", job.SourcePath, err)
		c.emit(Event{
			Type:       EventJobFailed,
			BatchID:    job.BatchID,
			SourcePath: job.SourcePath,
			Reason:     ReasonSourceUnavailable,
		})
	} else if err := c.transcode(ctx, job); err != nil {
		job.State = models.JobStateFailed
		reason := classify(err)
		log.Printf("[ERROR] Conversion of %s failed (%s): %v", job.SourcePath, reason, err)
		c.emit(Event{
			Type:       EventJobFailed,
			BatchID:    job.BatchID,
			SourcePath: job.SourcePath,
			Reason:     reason,
		})
	} else {
		c.mu.Lock()
		c.cache[job.SourcePath] = job.DestinationPath
		c.mu.Unlock()
		job.State = models.JobStateSucceeded
		log.Printf("[DEBUG] Converted %s -> %s", job.SourcePath, job.DestinationPath)
		c.emit(Event{
			Type:            EventJobSucceeded,
			BatchID:         job.BatchID,
			SourcePath:      job.SourcePath,
			DestinationPath: job.DestinationPath,
		})
	}

	c.mu.Lock()
	c.running = nil
	batch := c.batches[job.BatchID]
	batch.completed++
	completed, total := batch.completed, batch.total
	finished := completed == total && !batch.finished
	if finished {
		batch.finished = true
	}
	// Held across the unlock for the same reason as in Cancel: the counter
	// and its events must publish as one step.
	c.emitMu.Lock()
	c.mu.Unlock()

	c.deliver(Event{Type: EventBatchProgress, BatchID: job.BatchID, Completed: completed, Total: total})
	if finished {
		c.deliver(Event{Type: EventBatchFinished, BatchID: job.BatchID, Completed: completed, Total: total})
	}
	c.emitMu.Unlock()
}

// transcode invokes the collaborator, converting a panic into an error so a
// misbehaving collaborator cannot kill the worker loop
func (c *BatchConverter) transcode(ctx context.Context, job *models.ConversionJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("transcoder panic: %v", r)
		}
	}()
	return c.transcoder.Transcode(ctx, job.SourcePath, job.DestinationPath)
}

// emit delivers an event to every registered observer. Delivery happens
// under emitMu so events from the worker and from Cancel form one total
// order.
func (c *BatchConverter) emit(event Event) {
	c.emitMu.Lock()
	defer c.emitMu.Unlock()
	c.deliver(event)
}

// deliver sends one event to every observer. Callers must hold emitMu.
func (c *BatchConverter) deliver(event Event) {
	for _, observer := range c.observers {
		observer.HandleEvent(event)
	}
}

// signal wakes the worker without blocking
func (c *BatchConverter) signal() {
	select {
	case c.wake <- struct{}{}:
	default:
	}
}

// classify maps a collaborator failure onto the error taxonomy
func classify(err error) FailureReason {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return ReasonTimeout
	case errors.Is(err, os.ErrPermission), errors.Is(err, syscall.ENOSPC):
		return ReasonWriteFailed
	default:
		return ReasonTranscodeFailed
	}
}

// checkWritableDir verifies the path is an existing directory we can
// create files in
func checkWritableDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}
	probe, err := os.CreateTemp(dir, ".convert-probe-*")
	if err != nil {
		return err
	}
	probe.Close()
	return os.Remove(probe.Name())
}

// checkReadableFile verifies the source exists and is readable
func checkReadableFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return fmt.Errorf("%s is a directory", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	return f.Close()
}
