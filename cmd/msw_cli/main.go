package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"math/big"
	"net/http"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/azizazlan/multi-sig-wallet/executor"
	"github.com/azizazlan/multi-sig-wallet/wallet"
)

const (
	flagListenAddr = "listen_addr"
	flagOffset     = "offset"
	flagAddValue   = "add"
)

func init() {
	rootCmd.PersistentFlags().String(flagListenAddr, "localhost:8080", "Listen Address")
}

var rootCmd = &cobra.Command{
	Use:   "msw_cli",
	Short: "multi-sig wallet cli utilities implementation",
}

func main() {
	rootCmd.AddCommand(
		getUsernameCommand(),
		getOwnersCommand(),
		getBalanceCommand(),
		depositCommand(),
		submitTransactionCommand(),
		confirmTransactionCommand(),
		revokeConfirmationCommand(),
		executeTransactionCommand(),
		getTransactionCommand(),
		getTransactionsCommand(),
		getRecordsCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Failed to execute root command: %v", err)
	}
}

func rawGetRequest(url string, response interface{}) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	if err = json.Unmarshal(responseBody, response); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

func rawPostRequest(url string, request interface{}, response interface{}) error {
	requestBody, err := json.Marshal(request)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := http.Post(url, "application/json", bytes.NewReader(requestBody))
	if err != nil {
		return fmt.Errorf("failed to perform request: %w", err)
	}
	defer resp.Body.Close()

	responseBody, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}

	if err = json.Unmarshal(responseBody, response); err != nil {
		return fmt.Errorf("failed to unmarshal response: %v", err)
	}
	return nil
}

func getUsernameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_username",
		Short: "returns the daemon's username",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			var response StringResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getUsername", listenAddr), &response); err != nil {
				return fmt.Errorf("failed to get username: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get username: %s", response.ErrorMessage)
			}
			fmt.Println(response.Result)
			return nil
		},
	}
}

func getOwnersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_owners",
		Short: "returns the fixed owner set of the wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			var response OwnersResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getOwners", listenAddr), &response); err != nil {
				return fmt.Errorf("failed to get owners: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get owners: %s", response.ErrorMessage)
			}
			for _, owner := range response.Result {
				fmt.Println(owner)
			}
			return nil
		},
	}
}

func getBalanceCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_balance",
		Short: "returns the wallet balance and transaction counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			var response WalletStatusResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getBalance", listenAddr), &response); err != nil {
				return fmt.Errorf("failed to get balance: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get balance: %s", response.ErrorMessage)
			}
			fmt.Printf("Balance: %d\n", response.Result.Balance)
			fmt.Printf("Transactions: %d\n", response.Result.TransactionCount)
			fmt.Printf("Required confirmations: %d\n", response.Result.RequiredConfirmations)
			return nil
		},
	}
}

func depositCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "deposit [sender] [amount]",
		Args:  cobra.ExactArgs(2),
		Short: "credits the wallet balance on behalf of the sender",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			amount, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse amount: %w", err)
			}
			request := map[string]interface{}{
				"sender": args[0],
				"amount": amount,
			}
			var response DepositResponse
			if err := rawPostRequest(fmt.Sprintf("http://%s/deposit", listenAddr), request, &response); err != nil {
				return fmt.Errorf("failed to deposit: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to deposit: %s", response.ErrorMessage)
			}
			color.Green("Deposited %d, balance is now %d", amount, response.Result.Balance)
			return nil
		},
	}
}

func submitTransactionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "submit_transaction [caller] [target] [value]",
		Args:  cobra.ExactArgs(3),
		Short: "proposes a transaction; use --add to attach an accumulator add(uint256) call",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			value, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse value: %w", err)
			}

			var payload []byte
			addValue, err := cmd.Flags().GetInt64(flagAddValue)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			if addValue >= 0 {
				payload, err = executor.EncodeAddCall(big.NewInt(addValue))
				if err != nil {
					return fmt.Errorf("failed to encode add call: %w", err)
				}
			}

			request := map[string]interface{}{
				"caller":  args[0],
				"target":  args[1],
				"value":   value,
				"payload": payload,
			}
			var response SubmitTransactionResponse
			if err := rawPostRequest(fmt.Sprintf("http://%s/submitTransaction", listenAddr), request, &response); err != nil {
				return fmt.Errorf("failed to submit transaction: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to submit transaction: %s", response.ErrorMessage)
			}
			color.Green("Transaction submitted with index %d", response.Result.Index)
			return nil
		},
	}
	cmd.Flags().Int64(flagAddValue, -1, "Value for an accumulator add(uint256) call payload")
	return cmd
}

func transactionIdCommand(use, short, path, verb string) *cobra.Command {
	return &cobra.Command{
		Use:   fmt.Sprintf("%s [caller] [index]", use),
		Args:  cobra.ExactArgs(2),
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			index, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse index: %w", err)
			}
			request := map[string]interface{}{
				"caller": args[0],
				"index":  index,
			}
			var response StringResponse
			if err := rawPostRequest(fmt.Sprintf("http://%s/%s", listenAddr, path), request, &response); err != nil {
				return fmt.Errorf("failed to %s transaction #%d: %w", verb, index, err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to %s transaction #%d: %s", verb, index, response.ErrorMessage)
			}
			color.Green("Transaction #%d: %s by %s", index, verb, args[0])
			return nil
		},
	}
}

func confirmTransactionCommand() *cobra.Command {
	return transactionIdCommand("confirm_transaction",
		"confirms a pending transaction on behalf of an owner",
		"confirmTransaction", "confirm")
}

func revokeConfirmationCommand() *cobra.Command {
	return transactionIdCommand("revoke_confirmation",
		"withdraws a previously given confirmation",
		"revokeConfirmation", "revoke")
}

func executeTransactionCommand() *cobra.Command {
	return transactionIdCommand("execute_transaction",
		"executes a transaction that reached the confirmation threshold",
		"executeTransaction", "execute")
}

func printTransaction(tx *wallet.Transaction) {
	fmt.Printf("Index: %d\n", tx.Index)
	fmt.Printf("Target: %s\n", tx.Target)
	fmt.Printf("Value: %d\n", tx.Value)
	fmt.Printf("Confirmations: %d\n", tx.ConfirmationCount())
	if tx.Executed() {
		color.Green("State: %s", tx.State)
	} else {
		color.Yellow("State: %s", tx.State)
	}
}

func getTransactionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_transaction [index]",
		Args:  cobra.ExactArgs(1),
		Short: "returns one transaction by its index",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			index, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("failed to parse index: %w", err)
			}
			var response TransactionResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getTransaction?index=%d", listenAddr, index), &response); err != nil {
				return fmt.Errorf("failed to get transaction: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get transaction: %s", response.ErrorMessage)
			}
			printTransaction(response.Result)
			return nil
		},
	}
}

func getTransactionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get_transactions",
		Short: "returns all transactions ever submitted to the wallet",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			var response TransactionsResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getTransactions", listenAddr), &response); err != nil {
				return fmt.Errorf("failed to get transactions: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get transactions: %s", response.ErrorMessage)
			}
			for _, tx := range response.Result {
				printTransaction(tx)
				fmt.Println("-----------------------------------------------------")
			}
			return nil
		},
	}
}

func getRecordsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get_records",
		Short: "returns journal records starting from the given offset",
		RunE: func(cmd *cobra.Command, args []string) error {
			listenAddr, err := cmd.Flags().GetString(flagListenAddr)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			offset, err := cmd.Flags().GetUint64(flagOffset)
			if err != nil {
				return fmt.Errorf("failed to read configuration: %v", err)
			}
			var response RecordsResponse
			if err := rawGetRequest(fmt.Sprintf("http://%s/getRecords?offset=%d", listenAddr, offset), &response); err != nil {
				return fmt.Errorf("failed to get records: %w", err)
			}
			if response.ErrorMessage != "" {
				return fmt.Errorf("failed to get records: %s", response.ErrorMessage)
			}
			for _, record := range response.Result {
				fmt.Printf("%d\t%s\t%s\n", record.Offset, record.Kind, string(record.Data))
			}
			return nil
		},
	}
	cmd.Flags().Uint64(flagOffset, 0, "Journal offset to read from")
	return cmd
}
