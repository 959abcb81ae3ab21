package mocks

//go:generate mockgen -source=./../client/modules/state/state.go -destination=./clientMocks/state_mock.go -package=clientMocks
//go:generate mockgen -source=./../storage/types.go -destination=./storageMocks/storage_mock.go -package=storageMocks
//go:generate mockgen -source=./../wallet/wallet.go -destination=./walletMocks/wallet_mock.go -package=walletMocks
//go:generate mockgen -source=./../client/services/node/node_service.go -destination=./serviceMocks/node_service_mock.go -package=serviceMocks
