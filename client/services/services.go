package services

import (
	"fmt"
	"strings"

	"github.com/azizazlan/multi-sig-wallet/client/config"
	"github.com/azizazlan/multi-sig-wallet/client/modules/logger"
	"github.com/azizazlan/multi-sig-wallet/client/modules/state"
	"github.com/azizazlan/multi-sig-wallet/executor"
	"github.com/azizazlan/multi-sig-wallet/storage"
	"github.com/azizazlan/multi-sig-wallet/storage/file_storage"
	"github.com/azizazlan/multi-sig-wallet/storage/kafka_storage"
)

// AccumulatorTarget is the demo target registered with the default executor.
const AccumulatorTarget = "accumulator"

// InitServices builds the production wiring from the config: a LevelDB
// state, a file or kafka journal and an executor registry carrying the demo
// accumulator target.
func InitServices(cfg *config.Config) (*ServiceProvider, error) {
	stateDb, err := state.NewLevelDBState(cfg.StateDBDSN, cfg.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to init state: %w", err)
	}

	journal, err := initJournal(cfg.JournalConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to init journal storage: %w", err)
	}

	registry := executor.NewRegistry()
	registry.Register(AccumulatorTarget, executor.NewAccumulator())

	sp := &ServiceProvider{}
	sp.SetLogger(logger.NewLogger(cfg.Username))
	sp.SetState(stateDb)
	sp.SetStorage(journal)
	sp.SetExecutor(registry)

	return sp, nil
}

func initJournal(cfg *config.JournalConfig) (storage.Storage, error) {
	if cfg == nil {
		return nil, fmt.Errorf("journal configuration is missing")
	}
	switch cfg.Backend {
	case "file":
		if cfg.FileJournalConfig == nil {
			return nil, fmt.Errorf("file journal configuration is missing")
		}
		if cfg.FileJournalConfig.LockPath == "" {
			return file_storage.NewFileStorage(cfg.FileJournalConfig.Path)
		}
		return file_storage.NewFileStorage(
			cfg.FileJournalConfig.Path,
			cfg.FileJournalConfig.LockPath,
		)
	case "kafka":
		if cfg.KafkaJournalConfig == nil {
			return nil, fmt.Errorf("kafka journal configuration is missing")
		}
		tlsConfig, err := kafka_storage.GetTLSConfig(cfg.KafkaJournalConfig.TrustStorePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create tls config: %w", err)
		}

		producerCreds, err := parseKafkaAuthCredentials(cfg.KafkaJournalConfig.ProducerCredentials)
		if err != nil {
			return nil, err
		}
		consumerCreds, err := parseKafkaAuthCredentials(cfg.KafkaJournalConfig.ConsumerCredentials)
		if err != nil {
			return nil, err
		}

		return kafka_storage.NewKafkaStorage(
			cfg.KafkaJournalConfig.DBDSN,
			cfg.KafkaJournalConfig.Topic,
			cfg.KafkaJournalConfig.ConsumerGroup,
			tlsConfig,
			producerCreds,
			consumerCreds,
			cfg.KafkaJournalConfig.Timeout,
		)
	default:
		return nil, fmt.Errorf("unknown journal backend \"%s\"", cfg.Backend)
	}
}

func parseKafkaAuthCredentials(creds string) (*kafka_storage.KafkaAuthCredentials, error) {
	if creds == "" {
		return nil, nil
	}
	credsSplited := strings.SplitN(creds, ":", 2)
	if len(credsSplited) == 1 {
		return nil, fmt.Errorf("failed to parse credentials")
	}
	return &kafka_storage.KafkaAuthCredentials{
		Username: credsSplited[0],
		Password: credsSplited[1],
	}, nil
}
