package wallet

import (
	"math"
	"sync"

	"github.com/azizazlan/multi-sig-wallet/fsm"
)

const (
	LifecycleName = "transaction_lifecycle"

	StateTxPending  = fsm.State("state_tx_pending")
	StateTxExecuted = fsm.State("state_tx_executed")

	EventTxConfirm = fsm.Event("event_tx_confirm")
	EventTxRevoke  = fsm.Event("event_tx_revoke")
	EventTxExecute = fsm.Event("event_tx_execute")
)

// txLifecycle is shared by all transactions: confirm and revoke loop on the
// pending state, execute moves to the terminal executed state. Every mutation
// of a transaction is driven through this table, so once a transaction is
// executed no further event can touch it.
var txLifecycle = fsm.MustNewFSM(
	LifecycleName,
	StateTxPending,
	[]fsm.EventDesc{
		{Name: EventTxConfirm, SrcState: []fsm.State{StateTxPending}, DstState: StateTxPending},
		{Name: EventTxRevoke, SrcState: []fsm.State{StateTxPending}, DstState: StateTxPending},
		{Name: EventTxExecute, SrcState: []fsm.State{StateTxPending}, DstState: StateTxExecuted},
	},
)

// ActionExecutor carries out an approved action against an external target.
// It must not be assumed free of side effects even on failure; the wallet
// rolls its own state back when the executor reports an error.
type ActionExecutor interface {
	ExecuteAction(target string, value uint64, payload []byte) error
}

// Transaction is one proposed action tracked by the wallet. Records are
// append-only: a transaction is never removed and keeps its index forever.
type Transaction struct {
	Index         uint64          `json:"index"`
	Target        string          `json:"target"`
	Value         uint64          `json:"value"`
	Payload       []byte          `json:"payload,omitempty"`
	State         fsm.State       `json:"state"`
	Confirmations map[string]bool `json:"confirmations"`
}

func (t *Transaction) Executed() bool {
	return t.State == StateTxExecuted
}

// ConfirmationCount is always the size of the active confirmer set.
func (t *Transaction) ConfirmationCount() int {
	return len(t.Confirmations)
}

func (t *Transaction) copy() *Transaction {
	confirmations := make(map[string]bool, len(t.Confirmations))
	for owner, ok := range t.Confirmations {
		confirmations[owner] = ok
	}
	payload := make([]byte, len(t.Payload))
	copy(payload, t.Payload)
	return &Transaction{
		Index:         t.Index,
		Target:        t.Target,
		Value:         t.Value,
		Payload:       payload,
		State:         t.State,
		Confirmations: confirmations,
	}
}

// Wallet is the authorization ledger: a fixed owner set and confirmation
// threshold, a custodial balance and an append-only transaction log. All
// mutation goes through the five operations below; each is atomic with
// respect to the others.
type Wallet struct {
	mu sync.Mutex

	owners    []string
	ownerSet  map[string]bool
	threshold int

	balance      uint64
	transactions []*Transaction

	executor ActionExecutor
	sink     Sink
}

// New validates the configuration and creates an empty wallet. The owner
// list and the threshold are fixed for the wallet's lifetime.
func New(owners []string, threshold int) (*Wallet, error) {
	if len(owners) == 0 {
		return nil, NewErr(CodeInvalidConfiguration, "owners list cannot be empty")
	}

	ownerSet := make(map[string]bool, len(owners))
	for _, owner := range owners {
		if owner == "" {
			return nil, NewErr(CodeInvalidConfiguration, "owner identifier cannot be empty")
		}
		if ownerSet[owner] {
			return nil, NewErrf(CodeInvalidConfiguration, "duplicate owner \"%s\"", owner)
		}
		ownerSet[owner] = true
	}

	if threshold < 1 || threshold > len(owners) {
		return nil, NewErrf(CodeInvalidConfiguration,
			"threshold %d out of range [1, %d]", threshold, len(owners))
	}

	ownersCopy := make([]string, len(owners))
	copy(ownersCopy, owners)

	return &Wallet{
		owners:    ownersCopy,
		ownerSet:  ownerSet,
		threshold: threshold,
	}, nil
}

// SetExecutor wires the external action executor capability.
func (w *Wallet) SetExecutor(executor ActionExecutor) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.executor = executor
}

// SetSink wires the observability record sink.
func (w *Wallet) SetSink(sink Sink) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.sink = sink
}

func (w *Wallet) publish(record Record) {
	if w.sink != nil {
		w.sink.Publish(record)
	}
}

// Deposit adds funds to the custodial balance. Any principal may deposit.
func (w *Wallet) Deposit(sender string, amount uint64) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if amount > math.MaxUint64-w.balance {
		return w.balance, NewErrf(CodeDepositOverflow,
			"deposit of %d overflows balance %d", amount, w.balance)
	}

	w.balance += amount

	w.publish(Record{
		Kind:    RecordDeposit,
		Actor:   sender,
		Amount:  amount,
		Balance: w.balance,
	})

	return w.balance, nil
}

// Submit appends a new pending transaction and returns its index. Submitting
// does not confirm: a submitter who wants their confirmation counted must
// call Confirm afterwards.
func (w *Wallet) Submit(caller, target string, value uint64, payload []byte) (uint64, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.ownerSet[caller] {
		return 0, NewErrf(CodeUnauthorized, "\"%s\" is not an owner", caller)
	}

	payloadCopy := make([]byte, len(payload))
	copy(payloadCopy, payload)

	tx := &Transaction{
		Index:         uint64(len(w.transactions)),
		Target:        target,
		Value:         value,
		Payload:       payloadCopy,
		State:         txLifecycle.InitialState(),
		Confirmations: make(map[string]bool),
	}
	w.transactions = append(w.transactions, tx)

	w.publish(Record{
		Kind:    RecordSubmission,
		Actor:   caller,
		Index:   tx.Index,
		Target:  tx.Target,
		Value:   tx.Value,
		Payload: payloadCopy,
	})

	return tx.Index, nil
}

// Confirm adds the caller's confirmation to a pending transaction.
func (w *Wallet) Confirm(caller string, index uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	tx, err := w.pendingTransaction(caller, index, EventTxConfirm)
	if err != nil {
		return err
	}

	if tx.Confirmations[caller] {
		return NewErrf(CodeAlreadyConfirmed,
			"\"%s\" already confirmed transaction %d", caller, index)
	}

	tx.State, _ = txLifecycle.Next(tx.State, EventTxConfirm)
	tx.Confirmations[caller] = true

	w.publish(Record{
		Kind:  RecordConfirmation,
		Actor: caller,
		Index: index,
	})

	return nil
}

// Revoke removes the caller's active confirmation from a pending
// transaction. A transaction may be confirmed and revoked any number of
// times before execution.
func (w *Wallet) Revoke(caller string, index uint64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	tx, err := w.pendingTransaction(caller, index, EventTxRevoke)
	if err != nil {
		return err
	}

	if !tx.Confirmations[caller] {
		return NewErrf(CodeNotConfirmed,
			"\"%s\" has no active confirmation on transaction %d", caller, index)
	}

	tx.State, _ = txLifecycle.Next(tx.State, EventTxRevoke)
	delete(tx.Confirmations, caller)

	w.publish(Record{
		Kind:  RecordRevocation,
		Actor: caller,
		Index: index,
	})

	return nil
}

// Execute carries out a transaction once its confirmation count has reached
// the threshold. The executed flag and the balance decrement are committed
// before the external call is made, so a reentrant call from inside the
// executor observes the transaction as executed. If the executor reports
// failure both are rolled back and the call fails with CodeActionFailed.
func (w *Wallet) Execute(caller string, index uint64) error {
	w.mu.Lock()

	tx, err := w.pendingTransaction(caller, index, EventTxExecute)
	if err != nil {
		w.mu.Unlock()
		return err
	}

	if len(tx.Confirmations) < w.threshold {
		w.mu.Unlock()
		return NewErr(CodeQuorumNotReached, "cannot execute")
	}

	if tx.Value > w.balance {
		w.mu.Unlock()
		return NewErrf(CodeInsufficientBalance,
			"transaction %d needs %d, balance is %d", index, tx.Value, w.balance)
	}

	// Commit state before the external call.
	prevState := tx.State
	tx.State, _ = txLifecycle.Next(tx.State, EventTxExecute)
	w.balance -= tx.Value

	executor := w.executor
	target, value, payload := tx.Target, tx.Value, tx.Payload
	w.mu.Unlock()

	var execErr error
	if executor == nil {
		execErr = NewErr(CodeActionFailed, "no action executor configured")
	} else {
		execErr = executor.ExecuteAction(target, value, payload)
	}

	if execErr != nil {
		// Roll back the executed flag and the balance decrement as one unit.
		w.mu.Lock()
		tx.State = prevState
		w.balance += value
		w.mu.Unlock()
		return NewErrf(CodeActionFailed, "action executor failed: %v", execErr)
	}

	w.mu.Lock()
	w.publish(Record{
		Kind:  RecordExecution,
		Actor: caller,
		Index: index,
	})
	w.mu.Unlock()

	return nil
}

// pendingTransaction runs the checks shared by confirm, revoke and execute:
// the caller must be an owner, the index must exist and the lifecycle table
// must accept the event from the transaction's current state.
func (w *Wallet) pendingTransaction(caller string, index uint64, event fsm.Event) (*Transaction, error) {
	if !w.ownerSet[caller] {
		return nil, NewErrf(CodeUnauthorized, "\"%s\" is not an owner", caller)
	}

	if index >= uint64(len(w.transactions)) {
		return nil, NewErrf(CodeNotFound, "transaction %d does not exist", index)
	}

	tx := w.transactions[index]

	if !txLifecycle.CanTrigger(tx.State, event) {
		return nil, NewErrf(CodeAlreadyExecuted, "transaction %d is already executed", index)
	}

	return tx, nil
}

// TransactionCount returns the number of transactions ever submitted.
func (w *Wallet) TransactionCount() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return uint64(len(w.transactions))
}

// GetTransaction returns a copy of the transaction record at index.
func (w *Wallet) GetTransaction(index uint64) (*Transaction, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if index >= uint64(len(w.transactions)) {
		return nil, NewErrf(CodeNotFound, "transaction %d does not exist", index)
	}

	return w.transactions[index].copy(), nil
}

// GetTransactions returns copies of all transaction records in index order.
func (w *Wallet) GetTransactions() []*Transaction {
	w.mu.Lock()
	defer w.mu.Unlock()

	transactions := make([]*Transaction, 0, len(w.transactions))
	for _, tx := range w.transactions {
		transactions = append(transactions, tx.copy())
	}
	return transactions
}

// IsOwner reports whether the identifier belongs to the owner set.
func (w *Wallet) IsOwner(identifier string) bool {
	return w.ownerSet[identifier]
}

// GetOwners returns the owner list in construction order.
func (w *Wallet) GetOwners() []string {
	owners := make([]string, len(w.owners))
	copy(owners, w.owners)
	return owners
}

// RequiredConfirmations returns the confirmation threshold.
func (w *Wallet) RequiredConfirmations() int {
	return w.threshold
}

// Balance returns the custodial balance.
func (w *Wallet) Balance() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}
