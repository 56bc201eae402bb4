package sessionlog_test

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/Tiliavir/pomo/internal/model"
	"github.com/Tiliavir/pomo/internal/sessionlog"
	"github.com/Tiliavir/pomo/internal/storage"
)

type failingSaver struct {
	calls int
}

func (f *failingSaver) Save([]model.Record) error {
	f.calls++
	return errors.New("disk full")
}

func TestRecordPersists(t *testing.T) {
	store := storage.File{Path: filepath.Join(t.TempDir(), "sessions.json")}
	log, err := sessionlog.Open(store)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	fixed := time.Date(2026, 2, 27, 14, 30, 0, 0, time.UTC)
	log.Now = func() time.Time { return fixed }

	rec, err := log.Record("Math", model.WorkMinutes, model.KindWork)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Subject != "Math" || rec.Duration != 25 || rec.Type != model.KindWork {
		t.Errorf("record = %+v", rec)
	}
	if !rec.CompletedAt.Equal(fixed) || rec.Date != "2026-02-27" {
		t.Errorf("timestamp = %v / %q", rec.CompletedAt, rec.Date)
	}
	if log.Len() != 1 {
		t.Errorf("Len = %d, want 1", log.Len())
	}

	onDisk, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(onDisk) != 1 || onDisk[0].ID != rec.ID {
		t.Errorf("disk = %+v, want the recorded session", onDisk)
	}
}

func TestRecordKeepsOrder(t *testing.T) {
	store := storage.File{Path: filepath.Join(t.TempDir(), "sessions.json")}
	log := sessionlog.New(store, nil)

	subjects := []string{"Math", "Physics", "Chemistry"}
	for _, s := range subjects {
		if _, err := log.Record(s, model.WorkMinutes, model.KindWork); err != nil {
			t.Fatal(err)
		}
	}

	reopened, err := sessionlog.Open(store)
	if err != nil {
		t.Fatal(err)
	}
	got := reopened.Records()
	if len(got) != len(subjects) {
		t.Fatalf("records = %d, want %d", len(got), len(subjects))
	}
	for i, s := range subjects {
		if got[i].Subject != s {
			t.Errorf("record %d subject = %q, want %q", i, got[i].Subject, s)
		}
	}
}

func TestRecordSaveFailure(t *testing.T) {
	saver := &failingSaver{}
	log := sessionlog.New(saver, nil)

	if _, err := log.Record("Math", model.WorkMinutes, model.KindWork); err == nil {
		t.Fatal("expected error from failing saver")
	}
	if saver.calls != 1 {
		t.Errorf("save calls = %d, want 1 (no retry)", saver.calls)
	}
	if log.Len() != 0 {
		t.Errorf("Len = %d after failed save, want 0", log.Len())
	}
}

func TestRecordInvalidNotSaved(t *testing.T) {
	saver := &failingSaver{}
	log := sessionlog.New(saver, nil)

	_, err := log.Record("  ", model.WorkMinutes, model.KindWork)
	if !errors.Is(err, model.ErrInvalidRecord) {
		t.Fatalf("err = %v, want ErrInvalidRecord", err)
	}
	if saver.calls != 0 {
		t.Errorf("save calls = %d, want 0", saver.calls)
	}
}

func TestRecordsReturnsCopy(t *testing.T) {
	store := storage.File{Path: filepath.Join(t.TempDir(), "sessions.json")}
	log := sessionlog.New(store, nil)
	if _, err := log.Record("Math", model.WorkMinutes, model.KindWork); err != nil {
		t.Fatal(err)
	}

	got := log.Records()
	got[0].Subject = "changed"
	if log.Records()[0].Subject != "Math" {
		t.Error("Records exposed internal slice")
	}
}
