package file_storage

import (
	"encoding/json"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/azizazlan/multi-sig-wallet/storage"
)

func testRecord(kind string, actor string) storage.Record {
	data, _ := json.Marshal(map[string]string{"actor": actor})
	return storage.Record{
		Kind: kind,
		Data: data,
	}
}

func TestFileStorage_GetRecords(t *testing.T) {
	N := 10
	offset := 5
	dir := t.TempDir()
	fs, err := NewFileStorage(filepath.Join(dir, "journal"), filepath.Join(dir, "journal.lock"))
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	for i := 0; i < N; i++ {
		if err = fs.Send(testRecord("confirmation", "owner-1")); err != nil {
			t.Error(err)
		}
	}

	records, err := fs.GetRecords(0)
	if err != nil {
		t.Error(err)
	}
	if len(records) != N {
		t.Errorf("expected %d records, got %d", N, len(records))
	}
	for i, record := range records {
		if record.Offset != uint64(i) {
			t.Errorf("expected offset %d, got %d", i, record.Offset)
		}
		if record.ID == "" {
			t.Error("record id must be assigned on send")
		}
	}

	offsetRecords, err := fs.GetRecords(uint64(offset))
	if err != nil {
		t.Error(err)
	}
	expectedOffsetRecords := records[offset:]
	if !reflect.DeepEqual(offsetRecords, expectedOffsetRecords) {
		t.Errorf("expected records: %v, actual records: %v", expectedOffsetRecords, offsetRecords)
	}
}

func TestFileStorage_EmptyLockPathUsesDefault(t *testing.T) {
	dir := t.TempDir()

	fs, err := NewFileStorage(filepath.Join(dir, "journal"), "")
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	if err = fs.Send(testRecord("deposit", "funder")); err != nil {
		t.Errorf("send must not fail with an empty lock path override: %v", err)
	}

	records, err := fs.GetRecords(0)
	if err != nil {
		t.Error(err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestFileStorage_OffsetSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "journal")
	lockPath := filepath.Join(dir, "journal.lock")

	fs, err := NewFileStorage(dataPath, lockPath)
	if err != nil {
		t.Fatal(err)
	}
	if err = fs.Send(testRecord("deposit", "funder")); err != nil {
		t.Error(err)
	}
	if err = fs.Close(); err != nil {
		t.Error(err)
	}

	fs, err = NewFileStorage(dataPath, lockPath)
	if err != nil {
		t.Fatal(err)
	}
	defer fs.Close()

	if err = fs.Send(testRecord("submission", "owner-1")); err != nil {
		t.Error(err)
	}

	records, err := fs.GetRecords(0)
	if err != nil {
		t.Error(err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[1].Offset != 1 {
		t.Errorf("expected reopened journal to continue at offset 1, got %d", records[1].Offset)
	}
}
