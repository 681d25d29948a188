package pricefeed

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zyedidia/generic/cache"
)

// New wraps src with a quote cache. A cached quote is served until it is
// older than ttl.
func New(src core.PriceFeed, ttl time.Duration) core.PriceFeed {
	return &service{
		src:   src,
		ttl:   ttl,
		cache: cache.New[string, *core.AssetPrice](128),
	}
}

type service struct {
	src core.PriceFeed
	ttl time.Duration

	cache *cache.Cache[string, *core.AssetPrice]
	mux   sync.Mutex
}

func (s *service) Quote(ctx context.Context, assetType string) (*core.AssetPrice, error) {
	s.mux.Lock()
	v, ok := s.cache.Get(assetType)
	s.mux.Unlock()
	if ok && time.Since(v.QuotedAt) < s.ttl {
		return v, nil
	}

	price, err := s.src.Quote(ctx, assetType)
	if err != nil {
		return nil, err
	}

	s.mux.Lock()
	s.cache.Put(assetType, price)
	s.mux.Unlock()

	return price, nil
}

// NewMock returns a feed that fabricates KRW quotes. The price for an asset
// drifts on a one minute clock but stays stable within the minute.
func NewMock() core.PriceFeed {
	return &mock{}
}

type mock struct{}

func (m *mock) Quote(_ context.Context, assetType string) (*core.AssetPrice, error) {
	if assetType == "" {
		return nil, fmt.Errorf("%w: asset type is empty", core.ErrInvalidArgument)
	}

	sum := sha256.Sum256([]byte(assetType))
	base := 100 + binary.BigEndian.Uint32(sum[:4])%1_000_000

	bucket := time.Now().Unix() / 60
	var drift [8]byte
	binary.BigEndian.PutUint64(drift[:], uint64(bucket))
	wobble := sha256.Sum256(append(sum[:8], drift[:]...))

	spread := int64(binary.BigEndian.Uint16(wobble[:2])) - 32768
	price := decimal.NewFromInt(int64(base)).
		Mul(decimal.NewFromInt(10_000 + spread/100)).
		Div(decimal.NewFromInt(10_000))

	return &core.AssetPrice{
		AssetType: assetType,
		Currency:  "KRW",
		Price:     price,
		QuotedAt:  time.Now(),
	}, nil
}
