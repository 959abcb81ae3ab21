package wallet

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrorCode classifies every failure the wallet can report.
type ErrorCode uint32

const (
	CodeUndefined ErrorCode = iota
	CodeInvalidConfiguration
	CodeUnauthorized
	CodeNotFound
	CodeAlreadyExecuted
	CodeAlreadyConfirmed
	CodeNotConfirmed
	CodeQuorumNotReached
	CodeActionFailed
	CodeInsufficientBalance
	CodeDepositOverflow
)

func (c ErrorCode) String() string {
	switch c {
	case CodeInvalidConfiguration:
		return "invalid_configuration"
	case CodeUnauthorized:
		return "unauthorized"
	case CodeNotFound:
		return "not_found"
	case CodeAlreadyExecuted:
		return "already_executed"
	case CodeAlreadyConfirmed:
		return "already_confirmed"
	case CodeNotConfirmed:
		return "not_confirmed"
	case CodeQuorumNotReached:
		return "quorum_not_reached"
	case CodeActionFailed:
		return "action_failed"
	case CodeInsufficientBalance:
		return "insufficient_balance"
	case CodeDepositOverflow:
		return "deposit_overflow"
	default:
		return "undefined code"
	}
}

type WalletError struct {
	code    ErrorCode
	message string
}

func (e *WalletError) Error() string {
	return e.code.String() + ": " + e.message
}

func (e *WalletError) Code() ErrorCode {
	return e.code
}

func (e *WalletError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    e.code.String(),
		Message: e.message,
	})
}

func NewErr(code ErrorCode, message string) *WalletError {
	return &WalletError{
		code:    code,
		message: message,
	}
}

func NewErrf(code ErrorCode, format string, values ...interface{}) *WalletError {
	if len(values) == 0 {
		return &WalletError{
			code:    code,
			message: format,
		}
	}
	return &WalletError{
		code:    code,
		message: fmt.Sprintf(format, values...),
	}
}

// Code extracts the wallet error code from err, unwrapping as needed.
// Errors that did not originate in this package report CodeUndefined.
func Code(err error) ErrorCode {
	var walletErr *WalletError
	if errors.As(err, &walletErr) {
		return walletErr.code
	}
	return CodeUndefined
}
