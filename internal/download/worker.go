package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/yt-quick/internal/model"
)

// Worker constants
const (
	WorkerIDPrefix  = "worker-"
	EventBufferSize = 16
)

// ErrAlreadyStarted is returned when Start is called on a worker that already ran
var ErrAlreadyStarted = errors.New("worker already started")

// errNoRunner is reported as a failure when a worker has nothing to run
var errNoRunner = errors.New("no downloader configured")

// Worker runs exactly one download attempt and reports its outcome as events.
// A worker is not reusable; events are closed after the terminal event.
type Worker struct {
	ID      string
	request model.DownloadRequest
	runner  Runner

	stateMutex sync.RWMutex
	state      model.WorkerState

	events     chan model.Event
	eventMutex sync.Mutex
	closed     bool
}

// NewWorker creates an idle worker for the request
func NewWorker(req model.DownloadRequest, runner Runner) *Worker {
	return &Worker{
		ID:      generateWorkerID(),
		request: req,
		runner:  runner,
		state:   model.WorkerStateIdle,
		events:  make(chan model.Event, EventBufferSize),
	}
}

// Request returns the request the worker was created for
func (w *Worker) Request() model.DownloadRequest {
	return w.request
}

// State returns the current lifecycle state
func (w *Worker) State() model.WorkerState {
	w.stateMutex.RLock()
	defer w.stateMutex.RUnlock()
	return w.state
}

// Events returns the notification channel. The consumer must drain it until closed.
func (w *Worker) Events() <-chan model.Event {
	return w.events
}

// Start launches the download in a new goroutine
func (w *Worker) Start(ctx context.Context) error {
	if !w.transition(model.WorkerStateRunning) {
		return ErrAlreadyStarted
	}

	log.Printf("Starting %s: %s", w.ID, w.request.Describe())
	go w.run(ctx)
	return nil
}

// run performs the attempt and emits exactly one terminal event
func (w *Worker) run(ctx context.Context) {
	defer w.closeEvents()

	if err := w.download(ctx); err != nil {
		log.Printf("Download %s failed: %v", w.ID, err)
		w.transition(model.WorkerStateFailed)
		w.emit(model.FailedEvent(err.Error()))
		return
	}

	log.Printf("Download %s completed", w.ID)
	w.transition(model.WorkerStateCompleted)
	w.emit(model.FinishedEvent())
}

// download calls the runner once; panics are converted to errors
func (w *Worker) download(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()

	if w.runner == nil {
		return errNoRunner
	}

	opts := BuildOptions(w.request)
	log.Printf("Worker %s options: format=%q output=%q", w.ID, opts.Format, opts.OutputTemplate)

	return w.runner.Run(ctx, w.request.URL, opts, w.onProgress)
}

// onProgress turns a runner report into a progress event; unparsable reports are dropped
func (w *Worker) onProgress(report ProgressReport) {
	if report.Status != StatusDownloading {
		return
	}
	percent, ok := ParsePercent(report.PercentStr)
	if !ok {
		return
	}
	w.emit(model.ProgressEvent(percent))
}

func (w *Worker) transition(next model.WorkerState) bool {
	w.stateMutex.Lock()
	defer w.stateMutex.Unlock()

	if !w.state.CanTransition(next) {
		return false
	}
	w.state = next
	return true
}

// emit delivers an event unless the channel is already closed
func (w *Worker) emit(e model.Event) {
	w.eventMutex.Lock()
	defer w.eventMutex.Unlock()

	if w.closed {
		return
	}
	w.events <- e
}

func (w *Worker) closeEvents() {
	w.eventMutex.Lock()
	defer w.eventMutex.Unlock()

	if w.closed {
		return
	}
	w.closed = true
	close(w.events)
}

// generateWorkerID generates a unique worker ID
func generateWorkerID() string {
	return WorkerIDPrefix + uuid.New().String()
}
