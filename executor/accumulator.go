package executor

import (
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

const accumulatorABIJSON = `[{"constant":false,"inputs":[{"name":"value","type":"uint256"}],"name":"add","outputs":[],"payable":false,"stateMutability":"nonpayable","type":"function"}]`

var accumulatorABI abi.ABI

func init() {
	var err error
	accumulatorABI, err = abi.JSON(strings.NewReader(accumulatorABIJSON))
	if err != nil {
		panic(fmt.Sprintf("cannot parse accumulator ABI: %v", err))
	}
}

// Accumulator is the demo target: a counter that understands ABI encoded
// add(uint256) calls. It exists to exercise encoded-call payloads end to
// end; it carries no authorization logic of its own.
type Accumulator struct {
	mu    sync.Mutex
	total *big.Int
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		total: new(big.Int),
	}
}

// HandleAction decodes the payload as an add(uint256) call and applies it.
// An empty payload is a plain value transfer and leaves the total untouched.
func (a *Accumulator) HandleAction(value uint64, payload []byte) error {
	if len(payload) == 0 {
		return nil
	}

	if len(payload) < 4 {
		return fmt.Errorf("payload too short to carry a method selector")
	}

	method, err := accumulatorABI.MethodById(payload[:4])
	if err != nil {
		return fmt.Errorf("failed to resolve method: %w", err)
	}

	args, err := method.Inputs.Unpack(payload[4:])
	if err != nil {
		return fmt.Errorf("failed to unpack %s arguments: %w", method.Name, err)
	}

	amount, ok := args[0].(*big.Int)
	if !ok {
		return fmt.Errorf("cannot cast %s argument to *big.Int", method.Name)
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.total.Add(a.total, amount)

	return nil
}

// Total returns the accumulated sum.
func (a *Accumulator) Total() *big.Int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return new(big.Int).Set(a.total)
}

// EncodeAddCall builds the ABI encoded payload for add(amount), ready to be
// submitted as a wallet transaction payload.
func EncodeAddCall(amount *big.Int) ([]byte, error) {
	payload, err := accumulatorABI.Pack("add", amount)
	if err != nil {
		return nil, fmt.Errorf("failed to pack add call: %w", err)
	}
	return payload, nil
}
