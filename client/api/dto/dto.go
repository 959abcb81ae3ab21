package dto

// This package contains DTO (Data Transfer Object) structures
// for providing validated and sanitized values to the service layer

type DepositDTO struct {
	Sender string
	Amount uint64
}

type SubmitTransactionDTO struct {
	Caller  string
	Target  string
	Value   uint64
	Payload []byte
}

// TransactionIdDTO addresses one transaction on behalf of a caller; it is
// shared by confirm, revoke and execute.
type TransactionIdDTO struct {
	Caller string
	Index  uint64
}

type TransactionQueryDTO struct {
	Index uint64
}

type RecordsQueryDTO struct {
	Offset uint64
}
