package download

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ytget/yt-quick/internal/model"
)

// collectEvents drains a worker until its channel closes
func collectEvents(t *testing.T, w *Worker) []model.Event {
	t.Helper()

	var events []model.Event
	timeout := time.After(5 * time.Second)
	for {
		select {
		case e, ok := <-w.Events():
			if !ok {
				return events
			}
			events = append(events, e)
		case <-timeout:
			t.Fatalf("timed out waiting for worker %s, got %d events", w.ID, len(events))
			return nil
		}
	}
}

func progressRunner(percents ...string) Runner {
	return RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		for _, p := range percents {
			onProgress(ProgressReport{Status: StatusDownloading, PercentStr: p})
		}
		return nil
	})
}

func testRequest(t *testing.T) model.DownloadRequest {
	return model.NewDownloadRequest("https://youtube.com/watch?v=test", model.Quality720p, false, t.TempDir())
}

func TestNewWorker(t *testing.T) {
	w := NewWorker(testRequest(t), progressRunner())

	if w.State() != model.WorkerStateIdle {
		t.Errorf("Expected Idle, got %s", w.State())
	}
	if !strings.HasPrefix(w.ID, WorkerIDPrefix) {
		t.Errorf("Expected ID to start with %q, got %s", WorkerIDPrefix, w.ID)
	}
	if len(w.ID) != len(WorkerIDPrefix)+36 {
		t.Errorf("Expected ID length %d, got %d for ID: %s", len(WorkerIDPrefix)+36, len(w.ID), w.ID)
	}
	if w.Request().URL != "https://youtube.com/watch?v=test" {
		t.Errorf("Unexpected request URL %s", w.Request().URL)
	}
}

func TestWorker_ProgressThenFinished(t *testing.T) {
	w := NewWorker(testRequest(t), progressRunner("10%", "55%", "100%"))

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	expected := []model.Event{
		model.ProgressEvent(10),
		model.ProgressEvent(55),
		model.ProgressEvent(100),
		model.FinishedEvent(),
	}
	if len(events) != len(expected) {
		t.Fatalf("Expected %d events, got %d: %+v", len(expected), len(events), events)
	}
	for i := range expected {
		if events[i] != expected[i] {
			t.Errorf("Event %d: expected %+v, got %+v", i, expected[i], events[i])
		}
	}

	if w.State() != model.WorkerStateCompleted {
		t.Errorf("Expected Completed, got %s", w.State())
	}
}

func TestWorker_MalformedProgressIsSwallowed(t *testing.T) {
	w := NewWorker(testRequest(t), progressRunner("n/a%", "20%", "garbage"))

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	if len(events) != 2 {
		t.Fatalf("Expected 2 events, got %d: %+v", len(events), events)
	}
	if events[0] != model.ProgressEvent(20) {
		t.Errorf("Expected progress 20, got %+v", events[0])
	}
	if events[1].Kind != model.EventFinished {
		t.Errorf("Expected finished, got %+v", events[1])
	}
}

func TestWorker_IgnoresNonDownloadingStatus(t *testing.T) {
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		onProgress(ProgressReport{Status: "starting", PercentStr: "0%"})
		onProgress(ProgressReport{Status: "finished", PercentStr: "100%"})
		return nil
	})
	w := NewWorker(testRequest(t), runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	if len(events) != 1 || events[0].Kind != model.EventFinished {
		t.Errorf("Expected only a finished event, got %+v", events)
	}
}

func TestWorker_ErrorEmitsFailedOnce(t *testing.T) {
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		return errors.New("network unreachable")
	})
	w := NewWorker(testRequest(t), runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	if len(events) != 1 {
		t.Fatalf("Expected 1 event, got %d: %+v", len(events), events)
	}
	if events[0] != model.FailedEvent("network unreachable") {
		t.Errorf("Unexpected event %+v", events[0])
	}
	if w.State() != model.WorkerStateFailed {
		t.Errorf("Expected Failed, got %s", w.State())
	}
}

func TestWorker_PanicBecomesFailure(t *testing.T) {
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		panic("extractor exploded")
	})
	w := NewWorker(testRequest(t), runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	if len(events) != 1 || events[0] != model.FailedEvent("extractor exploded") {
		t.Errorf("Expected failed event with panic text, got %+v", events)
	}
}

func TestWorker_NilRunner(t *testing.T) {
	w := NewWorker(testRequest(t), nil)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	events := collectEvents(t, w)

	if len(events) != 1 || events[0].Kind != model.EventFailed {
		t.Fatalf("Expected a failed event, got %+v", events)
	}
	if events[0].Message != errNoRunner.Error() {
		t.Errorf("Expected %q, got %q", errNoRunner.Error(), events[0].Message)
	}
}

func TestWorker_StartTwice(t *testing.T) {
	release := make(chan struct{})
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		<-release
		return nil
	})
	w := NewWorker(testRequest(t), runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if w.State() != model.WorkerStateRunning {
		t.Errorf("Expected Running, got %s", w.State())
	}
	if err := w.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Expected ErrAlreadyStarted, got %v", err)
	}

	close(release)
	collectEvents(t, w)

	if err := w.Start(context.Background()); !errors.Is(err, ErrAlreadyStarted) {
		t.Errorf("Finished worker should not restart, got %v", err)
	}
}

func TestWorker_PassesOptionsToRunner(t *testing.T) {
	req := model.NewDownloadRequest(" https://youtube.com/watch?v=opts ", model.Quality144p, false, t.TempDir())

	var gotURL string
	var gotOpts Options
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		gotURL = url
		gotOpts = opts
		return nil
	})
	w := NewWorker(req, runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	collectEvents(t, w)

	if gotURL != "https://youtube.com/watch?v=opts" {
		t.Errorf("Expected trimmed URL, got %q", gotURL)
	}
	if gotOpts != BuildOptions(req) {
		t.Errorf("Expected options %+v, got %+v", BuildOptions(req), gotOpts)
	}
}

func TestWorker_LateProgressAfterCloseIsDropped(t *testing.T) {
	var late func(ProgressReport)
	runner := RunnerFunc(func(ctx context.Context, url string, opts Options, onProgress func(ProgressReport)) error {
		late = onProgress
		return nil
	})
	w := NewWorker(testRequest(t), runner)

	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	collectEvents(t, w)

	// Must not panic with "send on closed channel"
	late(ProgressReport{Status: StatusDownloading, PercentStr: "50%"})
}
