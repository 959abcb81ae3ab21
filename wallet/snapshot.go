package wallet

import (
	"encoding/json"
	"fmt"
)

// WalletDump is the serializable image of a wallet, written after every
// successful mutation and restored on startup. Durability below this layer
// is the state store's concern.
type WalletDump struct {
	Owners       []string       `json:"owners"`
	Threshold    int            `json:"threshold"`
	Balance      uint64         `json:"balance"`
	Transactions []*Transaction `json:"transactions"`
}

func (d *WalletDump) Marshal() ([]byte, error) {
	return json.Marshal(d)
}

func (d *WalletDump) Unmarshal(data []byte) error {
	return json.Unmarshal(data, d)
}

// Dump snapshots the wallet state.
func (w *Wallet) Dump() ([]byte, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	transactions := make([]*Transaction, 0, len(w.transactions))
	for _, tx := range w.transactions {
		transactions = append(transactions, tx.copy())
	}

	dump := &WalletDump{
		Owners:       w.owners,
		Threshold:    w.threshold,
		Balance:      w.balance,
		Transactions: transactions,
	}
	return dump.Marshal()
}

// FromDump restores a wallet from a snapshot produced by Dump. The restored
// configuration is validated the same way New validates a fresh one.
func FromDump(data []byte) (*Wallet, error) {
	var dump WalletDump
	if err := dump.Unmarshal(data); err != nil {
		return nil, fmt.Errorf("cannot read wallet dump: %w", err)
	}

	w, err := New(dump.Owners, dump.Threshold)
	if err != nil {
		return nil, err
	}

	for i, tx := range dump.Transactions {
		if tx.Index != uint64(i) {
			return nil, NewErrf(CodeInvalidConfiguration,
				"dump transaction at position %d carries index %d", i, tx.Index)
		}
		if tx.State != StateTxPending && tx.State != StateTxExecuted {
			return nil, NewErrf(CodeInvalidConfiguration,
				"dump transaction %d has unknown state \"%s\"", i, tx.State)
		}
		for confirmer := range tx.Confirmations {
			if !w.ownerSet[confirmer] {
				return nil, NewErrf(CodeInvalidConfiguration,
					"dump transaction %d confirmed by non-owner \"%s\"", i, confirmer)
			}
		}
		if tx.Confirmations == nil {
			tx.Confirmations = make(map[string]bool)
		}
		w.transactions = append(w.transactions, tx)
	}

	w.balance = dump.Balance
	return w, nil
}
