package t2048

import (
	"errors"
	"testing"
)

func TestRecordKey(t *testing.T) {
	if got := RecordKey("t2048", 4); got != "t2048:best:4x4" {
		t.Errorf("RecordKey = %q", got)
	}
	if got := RecordKey("", 5); got != "t2048:best:5x5" {
		t.Errorf("RecordKey with empty prefix = %q", got)
	}
}

func TestScorekeeperFirstGameIsRecord(t *testing.T) {
	store := newMemStore()
	sk := NewScorekeeper(store, "k")
	if err := sk.Load(); err != nil {
		t.Fatal(err)
	}

	// No stored record: the first sync stores even a zero score.
	if err := sk.Sync(); err != nil {
		t.Fatal(err)
	}
	if v, ok := store.values["k"]; !ok || v != 0 {
		t.Errorf("stored = %d, %v; want 0, true", v, ok)
	}

	newRecord, err := sk.Finish()
	if err != nil || !newRecord {
		t.Errorf("Finish() = %v, %v; want true, nil", newRecord, err)
	}
}

func TestScorekeeperBeatsRecord(t *testing.T) {
	store := newMemStore()
	store.values["k"] = 100
	sk := NewScorekeeper(store, "k")
	if err := sk.Load(); err != nil {
		t.Fatal(err)
	}
	if sk.Best() != 100 {
		t.Fatalf("Best() = %d, want 100", sk.Best())
	}

	sk.Add(60)
	if err := sk.Sync(); err != nil {
		t.Fatal(err)
	}
	if store.values["k"] != 100 || store.sets != 0 {
		t.Error("a score below the record must not be stored")
	}

	sk.Add(80)
	sk.Add(-10) // ignored
	if err := sk.Sync(); err != nil {
		t.Fatal(err)
	}
	if store.values["k"] != 140 || sk.Best() != 140 {
		t.Errorf("stored %d best %d, want 140", store.values["k"], sk.Best())
	}

	newRecord, err := sk.Finish()
	if err != nil || !newRecord {
		t.Errorf("Finish() = %v, %v; want true, nil", newRecord, err)
	}
}

func TestScorekeeperBelowRecord(t *testing.T) {
	store := newMemStore()
	store.values["k"] = 500
	sk := NewScorekeeper(store, "k")
	_ = sk.Load()
	sk.Add(12)

	newRecord, err := sk.Finish()
	if err != nil || newRecord {
		t.Errorf("Finish() = %v, %v; want false, nil", newRecord, err)
	}
	if store.values["k"] != 500 {
		t.Errorf("record overwritten with %d", store.values["k"])
	}
}

func TestScorekeeperStoreErrors(t *testing.T) {
	store := newMemStore()
	store.getErr = errStoreDown
	sk := NewScorekeeper(store, "k")
	if err := sk.Load(); !errors.Is(err, errStoreDown) {
		t.Errorf("Load error = %v, want wrapped errStoreDown", err)
	}

	store.getErr = nil
	store.setErr = errStoreDown
	sk.Add(8)
	if err := sk.Sync(); !errors.Is(err, errStoreDown) {
		t.Errorf("Sync error = %v, want wrapped errStoreDown", err)
	}
	// The best score is still tracked in memory.
	if sk.Best() != 8 {
		t.Errorf("Best() = %d, want 8", sk.Best())
	}
}

func TestScorekeeperNilStore(t *testing.T) {
	sk := NewScorekeeper(nil, "k")
	if err := sk.Load(); err != nil {
		t.Fatal(err)
	}
	sk.Add(32)
	if err := sk.Sync(); err != nil {
		t.Fatal(err)
	}
	if sk.Best() != 32 {
		t.Errorf("Best() = %d, want 32", sk.Best())
	}
}
