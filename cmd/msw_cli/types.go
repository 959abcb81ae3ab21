package main

import (
	"github.com/azizazlan/multi-sig-wallet/client/api/http_api/responses"
	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/azizazlan/multi-sig-wallet/wallet"
)

type StringResponse struct {
	ErrorMessage string `json:"error_message,omitempty"`
	Result       string `json:"result"`
}

type OwnersResponse struct {
	ErrorMessage string   `json:"error_message,omitempty"`
	Result       []string `json:"result"`
}

type WalletStatusResponse struct {
	ErrorMessage string                         `json:"error_message,omitempty"`
	Result       responses.WalletStatusResponse `json:"result"`
}

type DepositResponse struct {
	ErrorMessage string                    `json:"error_message,omitempty"`
	Result       responses.DepositResponse `json:"result"`
}

type SubmitTransactionResponse struct {
	ErrorMessage string                              `json:"error_message,omitempty"`
	Result       responses.SubmitTransactionResponse `json:"result"`
}

type TransactionResponse struct {
	ErrorMessage string              `json:"error_message,omitempty"`
	Result       *wallet.Transaction `json:"result"`
}

type TransactionsResponse struct {
	ErrorMessage string                `json:"error_message,omitempty"`
	Result       []*wallet.Transaction `json:"result"`
}

type RecordsResponse struct {
	ErrorMessage string           `json:"error_message,omitempty"`
	Result       []storage.Record `json:"result"`
}
