package core

import (
	"context"
	"encoding/json"
	"time"
)

type ContractStatus string

const (
	ContractStatusDeployed ContractStatus = "deployed"
)

type SmartContract struct {
	ID        uint64          `json:"id,omitempty"`
	UserID    string          `json:"user_id,omitempty"`
	Name      string          `json:"name,omitempty"`
	Network   string          `json:"network,omitempty"`
	Address   string          `json:"address,omitempty"`
	TxHash    string          `json:"tx_hash,omitempty"`
	ABI       json.RawMessage `json:"abi,omitempty"`
	Status    ContractStatus  `json:"status,omitempty"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
}

type ContractStore interface {
	Create(ctx context.Context, contract *SmartContract) error
	Find(ctx context.Context, id uint64) (*SmartContract, error)
	ListByUser(ctx context.Context, userID string) ([]*SmartContract, error)
}

type TxReceipt struct {
	TxHash      string            `json:"tx_hash,omitempty"`
	Status      TransactionStatus `json:"status,omitempty"`
	BlockNumber uint64            `json:"block_number,omitempty"`
	GasUsed     uint64            `json:"gas_used,omitempty"`
}

// ChainRPC talks to the chain node. Real chain interaction is out of scope;
// implementations fabricate deterministic-looking results.
type ChainRPC interface {
	DeployContract(ctx context.Context, name string, bytecode []byte) (address, txHash string, err error)
	CallContract(ctx context.Context, address, method string, args []string) (string, error)
	TransactionReceipt(ctx context.Context, txHash string) (*TxReceipt, error)
}
