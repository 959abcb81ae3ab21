package state_test

import (
	"os"
	"testing"

	"github.com/azizazlan/multi-sig-wallet/client/modules/state"

	"github.com/stretchr/testify/require"
)

func TestLevelDBState_SaveOffset(t *testing.T) {
	var (
		req       = require.New(t)
		dbPath    = "/tmp/msw_test_SaveOffset"
		namespace = "test_wallet"
	)
	defer os.RemoveAll(dbPath)

	stg, err := state.NewLevelDBState(dbPath, namespace)
	req.NoError(err)
	defer stg.Close()

	loadedOffset, err := stg.LoadOffset()
	req.NoError(err)
	req.Zero(loadedOffset)

	var offset uint64 = 1
	err = stg.SaveOffset(offset)
	req.NoError(err)

	loadedOffset, err = stg.LoadOffset()
	req.NoError(err)
	req.Equal(offset, loadedOffset)
}

func TestLevelDBState_SaveWallet(t *testing.T) {
	var (
		req       = require.New(t)
		dbPath    = "/tmp/msw_test_SaveWallet"
		namespace = "test_wallet"
	)
	defer os.RemoveAll(dbPath)

	stg, err := state.NewLevelDBState(dbPath, namespace)
	req.NoError(err)
	defer stg.Close()

	_, found, err := stg.LoadWallet()
	req.NoError(err)
	req.False(found)

	dump := []byte(`{"owners":["owner-1"],"threshold":1}`)
	err = stg.SaveWallet(dump)
	req.NoError(err)

	loaded, found, err := stg.LoadWallet()
	req.NoError(err)
	req.True(found)
	req.Equal(dump, loaded)
}
