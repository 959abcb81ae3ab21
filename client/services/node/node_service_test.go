package node

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/azizazlan/multi-sig-wallet/client/api/dto"
	"github.com/azizazlan/multi-sig-wallet/client/config"
	"github.com/azizazlan/multi-sig-wallet/client/modules/logger"
	"github.com/azizazlan/multi-sig-wallet/client/services"
	"github.com/azizazlan/multi-sig-wallet/mocks/clientMocks"
	"github.com/azizazlan/multi-sig-wallet/mocks/storageMocks"
	"github.com/azizazlan/multi-sig-wallet/mocks/walletMocks"
	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/azizazlan/multi-sig-wallet/wallet"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

var testOwners = []string{"owner_1", "owner_2", "owner_3"}

func newTestNode(t *testing.T, ctrl *gomock.Controller) (NodeService, *clientMocks.MockState, *storageMocks.MockStorage, *walletMocks.MockActionExecutor) {
	state := clientMocks.NewMockState(ctrl)
	stg := storageMocks.NewMockStorage(ctrl)
	exec := walletMocks.NewMockActionExecutor(ctrl)

	state.EXPECT().LoadWallet().Times(1).Return(nil, false, nil)

	sp := services.ServiceProvider{}
	sp.SetLogger(logger.NewLogger("test_node"))
	sp.SetState(state)
	sp.SetStorage(stg)
	sp.SetExecutor(exec)

	cfg := config.Config{
		Username: "test_node",
		WalletConfig: &config.WalletConfig{
			Owners:    testOwners,
			Threshold: 2,
		},
	}

	node, err := NewNode(context.Background(), &cfg, &sp)
	require.NoError(t, err)

	return node, state, stg, exec
}

func TestNode_Deposit(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	node, state, stg, _ := newTestNode(t, ctrl)

	stg.EXPECT().Send(gomock.Any()).Times(1).Return(nil)
	state.EXPECT().SaveWallet(gomock.Any()).Times(1).Return(nil)

	balance, err := node.Deposit(&dto.DepositDTO{Sender: "funder", Amount: 100})
	req.NoError(err)
	req.Equal(uint64(100), balance)
	req.Equal(uint64(100), node.GetBalance())
}

func TestNode_SubmitConfirmExecute(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	node, state, stg, exec := newTestNode(t, ctrl)

	// Deposit, submit, two confirmations and the execution each write a
	// journal record and persist a snapshot.
	stg.EXPECT().Send(gomock.Any()).Times(5).Return(nil)
	state.EXPECT().SaveWallet(gomock.Any()).Times(5).Return(nil)

	_, err := node.Deposit(&dto.DepositDTO{Sender: "funder", Amount: 50})
	req.NoError(err)

	index, err := node.SubmitTransaction(&dto.SubmitTransactionDTO{
		Caller: "owner_1",
		Target: "accumulator",
		Value:  30,
	})
	req.NoError(err)
	req.Equal(uint64(0), index)

	req.NoError(node.ConfirmTransaction(&dto.TransactionIdDTO{Caller: "owner_1", Index: index}))
	req.NoError(node.ConfirmTransaction(&dto.TransactionIdDTO{Caller: "owner_2", Index: index}))

	exec.EXPECT().ExecuteAction("accumulator", uint64(30), []byte{}).Times(1).Return(nil)
	req.NoError(node.ExecuteTransaction(&dto.TransactionIdDTO{Caller: "owner_1", Index: index}))

	req.Equal(uint64(20), node.GetBalance())

	tx, err := node.GetTransaction(&dto.TransactionQueryDTO{Index: index})
	req.NoError(err)
	req.True(tx.Executed())
}

func TestNode_ExecuteWithoutQuorum(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	node, state, stg, _ := newTestNode(t, ctrl)

	stg.EXPECT().Send(gomock.Any()).Times(3).Return(nil)
	state.EXPECT().SaveWallet(gomock.Any()).Times(3).Return(nil)

	_, err := node.Deposit(&dto.DepositDTO{Sender: "funder", Amount: 50})
	req.NoError(err)

	index, err := node.SubmitTransaction(&dto.SubmitTransactionDTO{
		Caller: "owner_1",
		Target: "accumulator",
		Value:  10,
	})
	req.NoError(err)

	req.NoError(node.ConfirmTransaction(&dto.TransactionIdDTO{Caller: "owner_1", Index: index}))

	err = node.ExecuteTransaction(&dto.TransactionIdDTO{Caller: "owner_1", Index: index})
	req.Error(err)
	req.Equal(wallet.CodeQuorumNotReached, wallet.Code(err))
}

func TestNode_JournalRecords(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	node, state, stg, _ := newTestNode(t, ctrl)

	var published [][]byte
	stg.EXPECT().Send(gomock.Any()).Times(2).DoAndReturn(func(records ...storage.Record) error {
		for _, r := range records {
			published = append(published, r.Data)
		}
		return nil
	})
	state.EXPECT().SaveWallet(gomock.Any()).Times(2).Return(nil)

	_, err := node.Deposit(&dto.DepositDTO{Sender: "funder", Amount: 77})
	req.NoError(err)

	_, err = node.SubmitTransaction(&dto.SubmitTransactionDTO{
		Caller: "owner_2",
		Target: "accumulator",
		Value:  5,
	})
	req.NoError(err)

	req.Len(published, 2)

	var depositRecord wallet.Record
	req.NoError(json.Unmarshal(published[0], &depositRecord))
	req.Equal(wallet.RecordDeposit, depositRecord.Kind)
	req.Equal("funder", depositRecord.Actor)
	req.Equal(uint64(77), depositRecord.Amount)

	var submitRecord wallet.Record
	req.NoError(json.Unmarshal(published[1], &submitRecord))
	req.Equal(wallet.RecordSubmission, submitRecord.Kind)
	req.Equal("owner_2", submitRecord.Actor)
}

func TestNode_RestoreFromDump(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	w, err := wallet.New(testOwners, 2)
	req.NoError(err)
	_, err = w.Deposit("funder", 40)
	req.NoError(err)
	dump, err := w.Dump()
	req.NoError(err)

	state := clientMocks.NewMockState(ctrl)
	state.EXPECT().LoadWallet().Times(1).Return(dump, true, nil)

	sp := services.ServiceProvider{}
	sp.SetLogger(logger.NewLogger("test_node"))
	sp.SetState(state)
	sp.SetStorage(storageMocks.NewMockStorage(ctrl))
	sp.SetExecutor(walletMocks.NewMockActionExecutor(ctrl))

	node, err := NewNode(context.Background(), &config.Config{Username: "test_node"}, &sp)
	req.NoError(err)

	req.Equal(uint64(40), node.GetBalance())
	req.Equal(testOwners, node.GetOwners())
	req.Equal(2, node.GetRequiredConfirmations())
}

func TestNode_RestoreFailure(t *testing.T) {
	var (
		req  = require.New(t)
		ctrl = gomock.NewController(t)
	)
	defer ctrl.Finish()

	state := clientMocks.NewMockState(ctrl)
	state.EXPECT().LoadWallet().Times(1).Return(nil, false, errors.New("leveldb is busy"))

	sp := services.ServiceProvider{}
	sp.SetLogger(logger.NewLogger("test_node"))
	sp.SetState(state)
	sp.SetStorage(storageMocks.NewMockStorage(ctrl))
	sp.SetExecutor(walletMocks.NewMockActionExecutor(ctrl))

	_, err := NewNode(context.Background(), &config.Config{Username: "test_node"}, &sp)
	req.Error(err)
	req.Contains(err.Error(), "failed to load wallet state")
}
