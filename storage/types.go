package storage

// Record is one journaled observability event. Kind and Data mirror the
// wallet record that produced it; ID and Offset are assigned by the journal.
type Record struct {
	Kind   string `json:"kind"`
	Data   []byte `json:"data"`
	ID     string `json:"id"`
	Offset uint64 `json:"offset"`
}

// Storage is an append-only journal of wallet records.
type Storage interface {
	Send(records ...Record) error
	GetRecords(offset uint64) ([]Record, error)
	Close() error
}
