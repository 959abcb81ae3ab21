package services

import (
	"github.com/azizazlan/multi-sig-wallet/client/modules/logger"
	"github.com/azizazlan/multi-sig-wallet/client/modules/state"
	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/azizazlan/multi-sig-wallet/wallet"
)

// ServiceProvider carries the node's pluggable dependencies. Tests swap the
// pieces for mocks.
type ServiceProvider struct {
	logger   logger.Logger
	state    state.State
	storage  storage.Storage
	executor wallet.ActionExecutor
}

func (p *ServiceProvider) SetLogger(l logger.Logger) {
	p.logger = l
}

func (p *ServiceProvider) GetLogger() logger.Logger {
	return p.logger
}

func (p *ServiceProvider) SetState(s state.State) {
	p.state = s
}

func (p *ServiceProvider) GetState() state.State {
	return p.state
}

func (p *ServiceProvider) SetStorage(s storage.Storage) {
	p.storage = s
}

func (p *ServiceProvider) GetStorage() storage.Storage {
	return p.storage
}

func (p *ServiceProvider) SetExecutor(e wallet.ActionExecutor) {
	p.executor = e
}

func (p *ServiceProvider) GetExecutor() wallet.ActionExecutor {
	return p.executor
}
