package snaglog

import (
	"encoding/json"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/trickstertwo/xclock"
)

// stubTransport is a minimal Transport for tests. It records every record it
// is handed and acknowledges it immediately.
type stubTransport struct {
	mu     sync.Mutex
	silent bool
	level  Level
	recs   []Record
}

func (t *stubTransport) Silent() bool { return t.silent }
func (t *stubTransport) Level() Level { return t.level }

func (t *stubTransport) Log(rec Record, done func()) {
	defer done()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.recs = append(t.recs, rec)
}

func (t *stubTransport) records() []Record {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Record(nil), t.recs...)
}

func newTestLogger(t *testing.T, level Level, tr Transport) *Logger {
	t.Helper()
	l, err := NewBuilder().AddTransport(tr).WithLevel(level).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	return l
}

func onlyRecord(t *testing.T, tr *stubTransport) Record {
	t.Helper()
	recs := tr.records()
	if len(recs) != 1 {
		t.Fatalf("expected 1 record, got %d", len(recs))
	}
	return recs[0]
}

func TestGlobalAndFacade(t *testing.T) {
	ft := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tr := &stubTransport{}
	logger, err := NewBuilder().
		AddTransport(tr).
		WithLevel(LevelDebug).
		WithClock(xclock.NewFrozen(ft)).
		Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	SetGlobal(logger)

	Info().Str("from", "old").Dur("to", time.Second).Int("count", 2).Msg("state changed")

	rec := onlyRecord(t, tr)
	if rec.Level != LevelInfo || rec.Message != "state changed" {
		t.Fatalf("level/message mismatch: %+v", rec)
	}
	if !rec.At.Equal(ft) {
		t.Fatalf("timestamp mismatch: got %s want %s", rec.At, ft)
	}
	assertMeta(t, rec.Meta, "from", "old")
	assertMeta(t, rec.Meta, "to", time.Second)
	assertMeta(t, rec.Meta, "count", 2)
	assertMeta(t, rec.Meta, KeyLevel, "info")
}

func TestLevelFloorFilter(t *testing.T) {
	t.Parallel()

	tr := &stubTransport{}
	logger := newTestLogger(t, LevelWarn, tr)

	logger.Info().Msg("not emitted")
	logger.Debug().Str("k", "v").Msg("not emitted either")
	logger.Warn().Msg("emitted")
	logger.Log("custom").Msg("unknown levels pass")

	recs := tr.records()
	if len(recs) != 2 || recs[0].Level != LevelWarn || recs[1].Level != "custom" {
		t.Fatalf("unexpected records: %+v", recs)
	}
	st := logger.Stats()
	if st.Dropped != 2 || st.Dispatched != 2 || st.Acked != 2 {
		t.Fatalf("stats mismatch: %+v", st)
	}
	logger.ResetStats()
	if st := logger.Stats(); st != (StatsSnapshot{}) {
		t.Fatalf("stats not reset: %+v", st)
	}
}

func TestSilentLoggerDropsEverything(t *testing.T) {
	t.Parallel()

	tr := &stubTransport{}
	logger, err := NewBuilder().AddTransport(tr).WithSilent(true).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	if logger.Enabled(LevelError) {
		t.Fatal("silent logger reports error as enabled")
	}
	logger.Error().Msg("quiet")
	if n := len(tr.records()); n != 0 {
		t.Fatalf("silent logger dispatched %d records", n)
	}
}

func TestBuildWithoutTransportFails(t *testing.T) {
	t.Parallel()

	if _, err := NewBuilder().AddTransport(nil).Build(); !errors.Is(err, ErrNoTransport) {
		t.Fatalf("expected ErrNoTransport, got %v", err)
	}
}

func TestFanOutToEveryTransport(t *testing.T) {
	t.Parallel()

	a, b := &stubTransport{}, &stubTransport{level: LevelError}
	logger, err := NewBuilder().AddTransport(a).AddTransport(b).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	logger.Info().Msg("both")

	// Transports apply their own floor; the logger still hands the record over.
	if len(a.records()) != 1 || len(b.records()) != 1 {
		t.Fatalf("fan-out mismatch: a=%d b=%d", len(a.records()), len(b.records()))
	}
	if st := logger.Stats(); st.Dispatched != 2 || st.Acked != 2 {
		t.Fatalf("stats mismatch: %+v", st)
	}
}

func TestWithAndObserverMerge(t *testing.T) {
	t.Parallel()

	ft := time.Date(2030, 2, 2, 3, 4, 5, 0, time.UTC)
	tr := &stubTransport{}
	var got []Record
	obs := ObserverFunc(func(r Record) { got = append(got, r) })

	logger, err := NewBuilder().
		AddTransport(tr).
		WithLevel(LevelInfo).
		WithClock(xclock.NewFrozen(ft)).
		AddObserver(obs).
		Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}

	child := logger.With(Str("request_id", "r-1"), Str("path", "/bound"))
	child.Info().Str("path", "/api").Int("status", 200).Msg("done")

	if len(got) != 1 {
		t.Fatalf("expected 1 observer record, got %d", len(got))
	}
	r := got[0]
	if !r.At.Equal(ft) {
		t.Fatalf("observer ts mismatch: got %s want %s", r.At, ft)
	}
	if r.Message != "done" || r.Level != LevelInfo {
		t.Fatalf("observer basic fields mismatch: %+v", r)
	}
	assertMeta(t, r.Meta, "request_id", "r-1")
	assertMeta(t, r.Meta, "path", "/api")
	assertMeta(t, r.Meta, "status", 200)

	if st := logger.Stats(); st.Dispatched != 1 {
		t.Fatalf("child does not share parent stats: %+v", st)
	}
}

func TestMsgfRecordsSplat(t *testing.T) {
	t.Parallel()

	tr := &stubTransport{}
	logger := newTestLogger(t, "", tr)
	logger.Info().Msgf("user %s logged in %d times", "ada", 3)

	rec := onlyRecord(t, tr)
	if rec.Message != "user ada logged in 3 times" {
		t.Fatalf("message mismatch: %q", rec.Message)
	}
	assertMeta(t, rec.Meta, KeySplat, []any{"ada", 3})
	if _, ok := rec.Meta[KeyMessage].(string); !ok {
		t.Fatalf("rendered message missing: %+v", rec.Meta)
	}
}

func TestEventMetaFlattening(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tr := &stubTransport{}
	logger := newTestLogger(t, "", tr)
	logger.Info().
		Meta(map[string]any{"a": 1}).
		Meta(map[string]string{"b": "two"}).
		Meta([]string{"x", "y"}).
		Meta(boom).
		Meta(42).
		Meta(nil).
		Msg("mixed")

	rec := onlyRecord(t, tr)
	assertMeta(t, rec.Meta, "a", 1)
	assertMeta(t, rec.Meta, "b", "two")
	assertMeta(t, rec.Meta, "0", "x")
	assertMeta(t, rec.Meta, "1", "y")
	assertMeta(t, rec.Meta, ErrorKey, boom)
	assertMeta(t, rec.Meta, KeySplat, []any{42})
	if rec.IsError() {
		t.Fatal("error meta must not turn the record into an error record")
	}
}

func TestSendEmitsErrorRecord(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	tr := &stubTransport{}
	logger := newTestLogger(t, "", tr)

	logger.Error().Send(nil)
	if n := len(tr.records()); n != 0 {
		t.Fatalf("Send(nil) emitted %d records", n)
	}

	logger.Error().Str("op", "save").Send(boom)
	rec := onlyRecord(t, tr)
	if !rec.IsError() || rec.Err != boom || rec.Message != "boom" {
		t.Fatalf("error record mismatch: %+v", rec)
	}
	assertMeta(t, rec.Meta, "op", "save")
}

func TestRenderedMessage(t *testing.T) {
	t.Parallel()

	tr := &stubTransport{}
	logger := newTestLogger(t, "", tr)
	logger.Warn().Str("user", "ada").Err(errors.New("denied")).Msgf("retry %d", 2)

	rec := onlyRecord(t, tr)
	var m map[string]any
	if err := json.Unmarshal([]byte(rec.Meta[KeyMessage].(string)), &m); err != nil {
		t.Fatalf("rendered message is not JSON: %v", err)
	}
	want := map[string]any{"level": "warn", "message": "retry 2", "user": "ada", "error": "denied"}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("rendered mismatch:\n got %v\nwant %v", m, want)
	}
}

func TestRecordIDs(t *testing.T) {
	t.Parallel()

	tr := &stubTransport{}
	logger, err := NewBuilder().AddTransport(tr).WithRecordIDs(true).Build()
	if err != nil {
		t.Fatalf("build logger: %v", err)
	}
	logger.Info().Msg("a")
	logger.Info().Msg("b")

	recs := tr.records()
	if len(recs) != 2 || recs[0].ID == recs[1].ID {
		t.Fatalf("ids not unique: %+v", recs)
	}
	for _, r := range recs {
		if _, err := uuid.Parse(r.ID); err != nil {
			t.Fatalf("bad record id %q: %v", r.ID, err)
		}
	}
}

func TestNotifyLoggedRunsOffCaller(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	got := make(chan Record, 1)
	obs := ObserverFunc(func(r Record) {
		<-release
		got <- r
	})

	rec := Record{Level: LevelInfo, Message: "m", Meta: map[string]any{"k": "v"}}
	NotifyLogged([]Observer{obs}, rec)
	// Returning here while the observer blocks proves it runs on another goroutine.
	rec.Meta["k"] = "changed"
	close(release)

	select {
	case r := <-got:
		assertMeta(t, r.Meta, "k", "v")
	case <-time.After(time.Second):
		t.Fatal("observer was not called")
	}
}

func assertMeta(t *testing.T, meta map[string]any, k string, v any) {
	t.Helper()
	got, ok := meta[k]
	if !ok {
		t.Fatalf("missing meta %q in %+v", k, meta)
	}
	if !reflect.DeepEqual(got, v) {
		t.Fatalf("meta %q mismatch: got %#v want %#v", k, got, v)
	}
}
