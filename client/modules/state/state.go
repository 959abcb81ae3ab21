package state

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/syndtr/goleveldb/leveldb"
)

const (
	OffsetKey = "offset"
	WalletKey = "wallet_state"
)

// State keeps the node's durable bits: the latest wallet snapshot and the
// journal offset the node has published up to.
type State interface {
	SaveWallet(dump []byte) error
	LoadWallet() ([]byte, bool, error)

	SaveOffset(uint64) error
	LoadOffset() (uint64, error)

	Close() error
}

var _ State = (*LevelDBState)(nil)

type LevelDBState struct {
	sync.Mutex
	stateDb     *leveldb.DB
	namespace   string
	stateDbPath string
}

func MakeCompositeKey(namespace, key string) []byte {
	return []byte(fmt.Sprintf("%s_%s", namespace, key))
}

func NewLevelDBState(stateDbPath string, namespace string) (*LevelDBState, error) {
	db, err := leveldb.OpenFile(stateDbPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open stateDB: %w", err)
	}

	state := &LevelDBState{
		stateDb:     db,
		namespace:   namespace,
		stateDbPath: stateDbPath,
	}

	// Init state key for offset bytes.
	offsetKey := MakeCompositeKey(namespace, OffsetKey)
	if _, err := state.stateDb.Get(offsetKey, nil); err != nil {
		bz := make([]byte, 8)
		binary.LittleEndian.PutUint64(bz, 0)
		if err := db.Put(offsetKey, bz, nil); err != nil {
			return nil, fmt.Errorf("failed to init %s storage: %w", string(offsetKey), err)
		}
	}

	return state, nil
}

func (s *LevelDBState) SaveWallet(dump []byte) error {
	s.Lock()
	defer s.Unlock()

	if err := s.stateDb.Put(MakeCompositeKey(s.namespace, WalletKey), dump, nil); err != nil {
		return fmt.Errorf("failed to save wallet state: %w", err)
	}
	return nil
}

func (s *LevelDBState) LoadWallet() ([]byte, bool, error) {
	s.Lock()
	defer s.Unlock()

	dump, err := s.stateDb.Get(MakeCompositeKey(s.namespace, WalletKey), nil)
	if err != nil {
		if err == leveldb.ErrNotFound {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read wallet state: %w", err)
	}
	return dump, true, nil
}

func (s *LevelDBState) SaveOffset(offset uint64) error {
	s.Lock()
	defer s.Unlock()

	bz := make([]byte, 8)
	binary.LittleEndian.PutUint64(bz, offset)

	if err := s.stateDb.Put(MakeCompositeKey(s.namespace, OffsetKey), bz, nil); err != nil {
		return fmt.Errorf("failed to set offset: %w", err)
	}

	return nil
}

func (s *LevelDBState) LoadOffset() (uint64, error) {
	s.Lock()
	defer s.Unlock()

	bz, err := s.stateDb.Get(MakeCompositeKey(s.namespace, OffsetKey), nil)
	if err != nil {
		return 0, fmt.Errorf("failed to read offset: %w", err)
	}

	return binary.LittleEndian.Uint64(bz), nil
}

func (s *LevelDBState) Close() error {
	return s.stateDb.Close()
}
