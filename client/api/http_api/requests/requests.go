package requests

type DepositForm struct {
	Sender string `json:"sender" validate:"attr=sender,min=1"`
	Amount uint64 `json:"amount"`
}

type SubmitTransactionForm struct {
	Caller  string `json:"caller" validate:"attr=caller,min=1"`
	Target  string `json:"target"`
	Value   uint64 `json:"value"`
	Payload []byte `json:"payload"`
}

type TransactionIdForm struct {
	Caller string `json:"caller" validate:"attr=caller,min=1"`
	Index  uint64 `json:"index"`
}

type TransactionQueryForm struct {
	Index uint64 `query:"index" json:"index"`
}

type RecordsQueryForm struct {
	Offset uint64 `query:"offset" json:"offset"`
}
