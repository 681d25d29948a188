package chain

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/zigaplabs/super-wallet/core"
)

// NewMock returns a ChainRPC that fabricates deterministic results instead of
// talking to a node. A receipt's fate depends only on the tx hash, so repeated
// lookups agree with each other.
func NewMock(gen core.HashGenerator) core.ChainRPC {
	return &mock{gen: gen}
}

type mock struct {
	gen core.HashGenerator
}

func (m *mock) DeployContract(_ context.Context, name string, bytecode []byte) (string, string, error) {
	if name == "" {
		return "", "", fmt.Errorf("%w: contract name is empty", core.ErrInvalidArgument)
	}

	if len(bytecode) == 0 {
		return "", "", fmt.Errorf("%w: bytecode is empty", core.ErrInvalidArgument)
	}

	address := m.gen.Address()
	txHash := m.gen.DeriveTxHash("deploy:" + name + ":" + address)
	return address, txHash, nil
}

func (m *mock) CallContract(_ context.Context, address, method string, args []string) (string, error) {
	if address == "" || method == "" {
		return "", fmt.Errorf("%w: address and method are required", core.ErrInvalidArgument)
	}

	seed := "call:" + address + ":" + method
	for _, arg := range args {
		seed += ":" + arg
	}

	return m.gen.DeriveTxHash(seed), nil
}

func (m *mock) TransactionReceipt(_ context.Context, txHash string) (*core.TxReceipt, error) {
	if len(txHash) < 10 {
		return nil, fmt.Errorf("%w: malformed tx hash %q", core.ErrInvalidArgument, txHash)
	}

	var sum int
	for _, c := range []byte(txHash[2:]) {
		sum += int(c)
	}

	status := core.TransactionStatusCompleted
	if sum%16 == 0 {
		status = core.TransactionStatusFailed
	}

	var block [8]byte
	copy(block[:], txHash[2:10])
	return &core.TxReceipt{
		TxHash:      txHash,
		Status:      status,
		BlockNumber: 1_000_000 + binary.BigEndian.Uint64(block[:])%1_000_000,
		GasUsed:     21_000 + uint64(sum%100_000),
	}, nil
}
