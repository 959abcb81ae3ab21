package responses

type BaseResponse struct {
	ErrorMessage string      `json:"error_message,omitempty"`
	Result       interface{} `json:"result"`
}

// WalletStatusResponse is returned by /getBalance.
type WalletStatusResponse struct {
	Balance               uint64 `json:"balance"`
	TransactionCount      uint64 `json:"transaction_count"`
	RequiredConfirmations int    `json:"required_confirmations"`
}

// SubmitTransactionResponse carries the index assigned to a submitted
// transaction.
type SubmitTransactionResponse struct {
	Index uint64 `json:"index"`
}

// DepositResponse carries the balance after a deposit was credited.
type DepositResponse struct {
	Balance uint64 `json:"balance"`
}
