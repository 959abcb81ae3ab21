package config

import (
	"time"
)

type HttpApiConfig struct {
	Host  string `mapstructure:"host"`
	Port  int    `mapstructure:"port"`
	Debug bool   `mapstructure:"debug"`
}

type WalletConfig struct {
	Owners    []string `mapstructure:"owners"`
	Threshold int      `mapstructure:"threshold"`
}

type FileJournalConfig struct {
	Path     string `mapstructure:"path"`
	LockPath string `mapstructure:"lock_path"`
}

type KafkaJournalConfig struct {
	DBDSN               string        `mapstructure:"dbdsn"`
	Topic               string        `mapstructure:"topic"`
	ConsumerGroup       string        `mapstructure:"consumer_group"`
	TrustStorePath      string        `mapstructure:"truststore_path"`
	ProducerCredentials string        `mapstructure:"producer_credentials"`
	ConsumerCredentials string        `mapstructure:"consumer_credentials"`
	Timeout             time.Duration `mapstructure:"timeout"`
}

type JournalConfig struct {
	// Backend is "file" or "kafka".
	Backend string `mapstructure:"backend"`

	FileJournalConfig  *FileJournalConfig  `mapstructure:"file"`
	KafkaJournalConfig *KafkaJournalConfig `mapstructure:"kafka"`
}

type Config struct {
	Username string `mapstructure:"username"`

	StateDBDSN string `mapstructure:"state_dbdsn"`

	WalletConfig *WalletConfig `mapstructure:"wallet"`

	HttpApiConfig *HttpApiConfig `mapstructure:"http_api"`

	JournalConfig *JournalConfig `mapstructure:"journal"`
}
