package core

// HashGenerator fabricates chain-style identifiers: 0x-prefixed, fixed-length,
// lowercase hex. Injected so tests can supply deterministic values.
type HashGenerator interface {
	TxHash() string
	Address() string
	DeriveTxHash(seed string) string
}
