package node

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/azizazlan/multi-sig-wallet/client/api/dto"
	"github.com/azizazlan/multi-sig-wallet/client/config"
	"github.com/azizazlan/multi-sig-wallet/client/modules/logger"
	"github.com/azizazlan/multi-sig-wallet/client/modules/state"
	"github.com/azizazlan/multi-sig-wallet/client/services"
	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/azizazlan/multi-sig-wallet/wallet"
)

type NodeService interface {
	GetLogger() logger.Logger
	GetUsername() string
	Deposit(dto *dto.DepositDTO) (uint64, error)
	SubmitTransaction(dto *dto.SubmitTransactionDTO) (uint64, error)
	ConfirmTransaction(dto *dto.TransactionIdDTO) error
	RevokeConfirmation(dto *dto.TransactionIdDTO) error
	ExecuteTransaction(dto *dto.TransactionIdDTO) error
	GetOwners() []string
	GetBalance() uint64
	GetTransaction(dto *dto.TransactionQueryDTO) (*wallet.Transaction, error)
	GetTransactions() []*wallet.Transaction
	GetTransactionCount() uint64
	GetRequiredConfirmations() int
	GetRecords(dto *dto.RecordsQueryDTO) ([]storage.Record, error)
}

type BaseNodeService struct {
	sync.Mutex
	ctx      context.Context
	userName string
	wallet   *wallet.Wallet
	state    state.State
	storage  storage.Storage
	Logger   logger.Logger
}

// journalSink forwards wallet event records to the append-only journal.
// Journal failures must not fail the wallet operation that already
// happened, so they are only logged.
type journalSink struct {
	storage storage.Storage
	logger  logger.Logger
}

func (s *journalSink) Publish(record wallet.Record) {
	data, err := json.Marshal(record)
	if err != nil {
		s.logger.Log("failed to marshal journal record: %v", err)
		return
	}

	if err := s.storage.Send(storage.Record{Kind: string(record.Kind), Data: data}); err != nil {
		s.logger.Log("failed to send journal record: %v", err)
	}
}

func NewNode(ctx context.Context, cfg *config.Config, sp *services.ServiceProvider) (NodeService, error) {
	w, err := restoreWallet(cfg, sp.GetState())
	if err != nil {
		return nil, err
	}

	w.SetExecutor(sp.GetExecutor())
	w.SetSink(&journalSink{
		storage: sp.GetStorage(),
		logger:  sp.GetLogger(),
	})

	return &BaseNodeService{
		ctx:      ctx,
		userName: cfg.Username,
		wallet:   w,
		state:    sp.GetState(),
		storage:  sp.GetStorage(),
		Logger:   sp.GetLogger(),
	}, nil
}

func restoreWallet(cfg *config.Config, st state.State) (*wallet.Wallet, error) {
	dump, found, err := st.LoadWallet()
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet state: %w", err)
	}

	if found {
		w, err := wallet.FromDump(dump)
		if err != nil {
			return nil, fmt.Errorf("failed to restore wallet from dump: %w", err)
		}
		return w, nil
	}

	if cfg.WalletConfig == nil {
		return nil, wallet.NewErr(wallet.CodeInvalidConfiguration, "wallet configuration is missing")
	}

	w, err := wallet.New(cfg.WalletConfig.Owners, cfg.WalletConfig.Threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	return w, nil
}

func (s *BaseNodeService) GetLogger() logger.Logger {
	return s.Logger
}

func (s *BaseNodeService) GetUsername() string {
	return s.userName
}

// saveWallet persists the current wallet snapshot. Every mutating
// operation goes through it while holding the service lock.
func (s *BaseNodeService) saveWallet() error {
	dump, err := s.wallet.Dump()
	if err != nil {
		return fmt.Errorf("failed to dump wallet: %w", err)
	}

	if err := s.state.SaveWallet(dump); err != nil {
		return fmt.Errorf("failed to save wallet state: %w", err)
	}
	return nil
}

func (s *BaseNodeService) Deposit(dtoMsg *dto.DepositDTO) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	balance, err := s.wallet.Deposit(dtoMsg.Sender, dtoMsg.Amount)
	if err != nil {
		return 0, err
	}

	if err := s.saveWallet(); err != nil {
		return 0, err
	}

	s.Logger.Log("deposited %d from %s, balance is now %d", dtoMsg.Amount, dtoMsg.Sender, balance)
	return balance, nil
}

func (s *BaseNodeService) SubmitTransaction(dtoMsg *dto.SubmitTransactionDTO) (uint64, error) {
	s.Lock()
	defer s.Unlock()

	index, err := s.wallet.Submit(dtoMsg.Caller, dtoMsg.Target, dtoMsg.Value, dtoMsg.Payload)
	if err != nil {
		return 0, err
	}

	if err := s.saveWallet(); err != nil {
		return 0, err
	}

	s.Logger.Log("transaction #%d submitted by %s", index, dtoMsg.Caller)
	return index, nil
}

func (s *BaseNodeService) ConfirmTransaction(dtoMsg *dto.TransactionIdDTO) error {
	s.Lock()
	defer s.Unlock()

	if err := s.wallet.Confirm(dtoMsg.Caller, dtoMsg.Index); err != nil {
		return err
	}

	if err := s.saveWallet(); err != nil {
		return err
	}

	s.Logger.Log("transaction #%d confirmed by %s", dtoMsg.Index, dtoMsg.Caller)
	return nil
}

func (s *BaseNodeService) RevokeConfirmation(dtoMsg *dto.TransactionIdDTO) error {
	s.Lock()
	defer s.Unlock()

	if err := s.wallet.Revoke(dtoMsg.Caller, dtoMsg.Index); err != nil {
		return err
	}

	if err := s.saveWallet(); err != nil {
		return err
	}

	s.Logger.Log("confirmation of transaction #%d revoked by %s", dtoMsg.Index, dtoMsg.Caller)
	return nil
}

func (s *BaseNodeService) ExecuteTransaction(dtoMsg *dto.TransactionIdDTO) error {
	s.Lock()
	defer s.Unlock()

	if err := s.wallet.Execute(dtoMsg.Caller, dtoMsg.Index); err != nil {
		return err
	}

	if err := s.saveWallet(); err != nil {
		return err
	}

	s.Logger.Log("transaction #%d executed by %s", dtoMsg.Index, dtoMsg.Caller)
	return nil
}

func (s *BaseNodeService) GetOwners() []string {
	return s.wallet.GetOwners()
}

func (s *BaseNodeService) GetBalance() uint64 {
	return s.wallet.Balance()
}

func (s *BaseNodeService) GetTransaction(dtoMsg *dto.TransactionQueryDTO) (*wallet.Transaction, error) {
	return s.wallet.GetTransaction(dtoMsg.Index)
}

func (s *BaseNodeService) GetTransactions() []*wallet.Transaction {
	return s.wallet.GetTransactions()
}

func (s *BaseNodeService) GetTransactionCount() uint64 {
	return s.wallet.TransactionCount()
}

func (s *BaseNodeService) GetRequiredConfirmations() int {
	return s.wallet.RequiredConfirmations()
}

func (s *BaseNodeService) GetRecords(dtoMsg *dto.RecordsQueryDTO) ([]storage.Record, error) {
	records, err := s.storage.GetRecords(dtoMsg.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get journal records: %w", err)
	}
	return records, nil
}
