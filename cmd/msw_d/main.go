package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/azizazlan/multi-sig-wallet/client/api/http_api"
	"github.com/azizazlan/multi-sig-wallet/client/config"
	"github.com/azizazlan/multi-sig-wallet/client/services"
	"github.com/azizazlan/multi-sig-wallet/client/services/node"
)

const (
	flagConfigPath               = "config"
	flagUserName                 = "username"
	flagStateDBDSN               = "state_dbdsn"
	flagHTTPHost                 = "http_host"
	flagHTTPPort                 = "http_port"
	flagHTTPDebug                = "http_debug"
	flagWalletOwners             = "owners"
	flagWalletThreshold          = "threshold"
	flagJournalBackend           = "journal_backend"
	flagJournalFilePath          = "journal_file_path"
	flagJournalLockPath          = "journal_lock_path"
	flagKafkaDBDSN               = "storage_dbdsn"
	flagKafkaTopic               = "storage_topic"
	flagKafkaConsumerGroup       = "storage_consumer_group"
	flagKafkaTrustStorePath      = "kafka_truststore_path"
	flagKafkaProducerCredentials = "producer_credentials"
	flagKafkaConsumerCredentials = "consumer_credentials"
	flagKafkaTimeout             = "kafka_timeout"
)

func init() {
	rootCmd.PersistentFlags().String(flagConfigPath, "", "Path to a YAML config file; flags override its values")
	rootCmd.PersistentFlags().String(flagUserName, "testUser", "Username")
	rootCmd.PersistentFlags().String(flagStateDBDSN, "./msw_state", "State DBDSN")
	rootCmd.PersistentFlags().String(flagHTTPHost, "localhost", "HTTP API host")
	rootCmd.PersistentFlags().Int(flagHTTPPort, 8080, "HTTP API port")
	rootCmd.PersistentFlags().Bool(flagHTTPDebug, false, "HTTP API debug mode")
	rootCmd.PersistentFlags().StringSlice(flagWalletOwners, nil, "Wallet owner identifiers")
	rootCmd.PersistentFlags().Int(flagWalletThreshold, 0, "Confirmations required to execute a transaction")
	rootCmd.PersistentFlags().String(flagJournalBackend, "file", "Journal backend: file or kafka")
	rootCmd.PersistentFlags().String(flagJournalFilePath, "./msw_journal", "File journal path")
	rootCmd.PersistentFlags().String(flagJournalLockPath, "", "File journal lock path")
	rootCmd.PersistentFlags().String(flagKafkaDBDSN, "localhost:9092", "Kafka broker endpoint")
	rootCmd.PersistentFlags().String(flagKafkaTopic, "records", "Kafka topic")
	rootCmd.PersistentFlags().String(flagKafkaConsumerGroup, "", "Kafka consumer group")
	rootCmd.PersistentFlags().String(flagKafkaTrustStorePath, "certs/ca.pem", "Path to kafka truststore")
	rootCmd.PersistentFlags().String(flagKafkaProducerCredentials, "", "Producer credentials for Kafka: username:password")
	rootCmd.PersistentFlags().String(flagKafkaConsumerCredentials, "", "Consumer credentials for Kafka: username:password")
	rootCmd.PersistentFlags().Duration(flagKafkaTimeout, 10*time.Second, "Kafka i/o timeout")
}

var flagToConfigKey = map[string]string{
	flagUserName:                 "username",
	flagStateDBDSN:               "state_dbdsn",
	flagHTTPHost:                 "http_api.host",
	flagHTTPPort:                 "http_api.port",
	flagHTTPDebug:                "http_api.debug",
	flagWalletOwners:             "wallet.owners",
	flagWalletThreshold:          "wallet.threshold",
	flagJournalBackend:           "journal.backend",
	flagJournalFilePath:          "journal.file.path",
	flagJournalLockPath:          "journal.file.lock_path",
	flagKafkaDBDSN:               "journal.kafka.dbdsn",
	flagKafkaTopic:               "journal.kafka.topic",
	flagKafkaConsumerGroup:       "journal.kafka.consumer_group",
	flagKafkaTrustStorePath:      "journal.kafka.truststore_path",
	flagKafkaProducerCredentials: "journal.kafka.producer_credentials",
	flagKafkaConsumerCredentials: "journal.kafka.consumer_credentials",
	flagKafkaTimeout:             "journal.kafka.timeout",
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	v := viper.New()

	for flag, key := range flagToConfigKey {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return nil, fmt.Errorf("failed to bind flag %s: %w", flag, err)
		}
	}

	configPath, err := cmd.Flags().GetString(flagConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration: %w", err)
	}
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg config.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func startDaemonCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start",
		Short: "starts the wallet daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			sp, err := services.InitServices(cfg)
			if err != nil {
				return fmt.Errorf("failed to init services: %w", err)
			}

			nodeService, err := node.NewNode(ctx, cfg, sp)
			if err != nil {
				return fmt.Errorf("failed to init node: %w", err)
			}

			server := http_api.RESTApiProvider{}
			if err := server.NewServer(cfg, nodeService); err != nil {
				return fmt.Errorf("failed to init http server: %w", err)
			}

			sigs := make(chan os.Signal, 1)
			signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
			go func() {
				<-sigs

				log.Println("Received signal, stopping daemon...")
				cancel()

				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer shutdownCancel()
				if err := server.Stop(shutdownCtx); err != nil {
					log.Printf("failed to stop http server: %v", err)
				}

				if err := sp.GetStorage().Close(); err != nil {
					log.Printf("failed to close journal storage: %v", err)
				}
				if err := sp.GetState().Close(); err != nil {
					log.Printf("failed to close state: %v", err)
				}
			}()

			nodeService.GetLogger().Log("wallet daemon is listening on %s:%d", cfg.HttpApiConfig.Host, cfg.HttpApiConfig.Port)
			if err := server.Start(); err != nil {
				nodeService.GetLogger().Log("http server stopped: %v", err)
			}
			return nil
		},
	}
}

var rootCmd = &cobra.Command{
	Use:   "msw_d",
	Short: "multi-sig wallet daemon",
}

func main() {
	rootCmd.AddCommand(
		startDaemonCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute root command: %v", err)
	}
}
