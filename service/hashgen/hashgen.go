package hashgen

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"

	"github.com/zigaplabs/super-wallet/core"
)

func New() core.HashGenerator {
	return &generator{}
}

type generator struct{}

func (g *generator) TxHash() string {
	var buf [32]byte
	rand.Read(buf[:])
	return "0x" + hex.EncodeToString(buf[:])
}

func (g *generator) Address() string {
	var buf [20]byte
	rand.Read(buf[:])
	return "0x" + hex.EncodeToString(buf[:])
}

// DeriveTxHash maps the same seed to the same hash. Callers use it to make
// generated records idempotent across retries.
func (g *generator) DeriveTxHash(seed string) string {
	sum := sha256.Sum256([]byte(seed))
	return "0x" + hex.EncodeToString(sum[:])
}
