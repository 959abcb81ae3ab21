package file_storage

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/azizazlan/multi-sig-wallet/storage"

	"github.com/google/uuid"
	"github.com/juju/fslock"
)

var _ storage.Storage = (*FileStorage)(nil)

const (
	defaultLockFile = "/tmp/msw_journal_lock"
)

// FileStorage is an append-only journal backed by a newline-delimited JSON
// file. Appends are serialized through a file lock so several processes can
// share one journal.
type FileStorage struct {
	lockFile *fslock.Lock
	dataFile *os.File

	nextOffset uint64
}

func countLines(r io.Reader) uint64 {
	var count uint64
	fileScanner := bufio.NewScanner(r)

	for fileScanner.Scan() {
		count++
	}

	return count
}

// NewFileStorage opens (or creates) the journal at filename. An optional
// second argument overrides the lock file path; an empty override falls back
// to the default, since fslock can never acquire an empty path.
func NewFileStorage(filename string, lockFilename ...string) (storage.Storage, error) {
	var (
		fs  FileStorage
		err error
	)
	if len(lockFilename) > 0 && lockFilename[0] != "" {
		fs.lockFile = fslock.New(lockFilename[0])
	} else {
		fs.lockFile = fslock.New(defaultLockFile)
	}

	if fs.dataFile, err = os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0644); err != nil {
		return nil, fmt.Errorf("failed to open a data file: %v", err)
	}

	fs.nextOffset = countLines(fs.dataFile)

	return &fs, nil
}

// send appends one record and stamps its id and offset.
func (fs *FileStorage) send(r storage.Record) (storage.Record, error) {
	r.ID = uuid.New().String()
	r.Offset = fs.nextOffset

	data, err := json.Marshal(r)
	if err != nil {
		return r, fmt.Errorf("failed to marshal a record %v: %v", r, err)
	}

	if _, err = fmt.Fprintln(fs.dataFile, string(data)); err != nil {
		return r, fmt.Errorf("failed to write a record to a data file: %v", err)
	}

	fs.nextOffset++
	return r, nil
}

func (fs *FileStorage) Send(records ...storage.Record) error {
	if err := fs.lockFile.Lock(); err != nil {
		return fmt.Errorf("failed to lock a file: %v", err)
	}
	defer fs.lockFile.Unlock()

	var err error
	for i, r := range records {
		records[i], err = fs.send(r)
		if err != nil {
			return err
		}
	}
	return nil
}

// GetRecords returns the journal's records starting at offset.
func (fs *FileStorage) GetRecords(offset uint64) ([]storage.Record, error) {
	if _, err := fs.dataFile.Seek(0, 0); err != nil {
		return nil, fmt.Errorf("failed to seek to the start of a data file: %v", err)
	}

	var records []storage.Record
	scanner := bufio.NewScanner(fs.dataFile)
	for scanner.Scan() {
		if offset > 0 {
			offset--
			continue
		}

		var record storage.Record
		if err := json.Unmarshal(scanner.Bytes(), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal a record %s: %v", scanner.Text(), err)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read a data file: %v", err)
	}
	return records, nil
}

func (fs *FileStorage) Close() error {
	return fs.dataFile.Close()
}
