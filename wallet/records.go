package wallet

// RecordKind marks which wallet operation produced a Record.
type RecordKind string

const (
	RecordDeposit      = RecordKind("deposit")
	RecordSubmission   = RecordKind("submission")
	RecordConfirmation = RecordKind("confirmation")
	RecordRevocation   = RecordKind("revocation")
	RecordExecution    = RecordKind("execution")
)

// Record is an observability event emitted by a successful wallet operation.
// Actor is always the acting principal; the remaining fields are filled
// depending on Kind: deposit carries Amount and Balance, submission carries
// Index, Target, Value and Payload, the rest carry Index only.
type Record struct {
	Kind    RecordKind `json:"kind"`
	Actor   string     `json:"actor"`
	Index   uint64     `json:"index,omitempty"`
	Target  string     `json:"target,omitempty"`
	Value   uint64     `json:"value,omitempty"`
	Payload []byte     `json:"payload,omitempty"`
	Amount  uint64     `json:"amount,omitempty"`
	Balance uint64     `json:"balance,omitempty"`
}

// Sink consumes wallet records. Publishing must not fail the operation that
// produced the record.
type Sink interface {
	Publish(record Record)
}
