package main

import (
	"time"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/service/chain"
	"github.com/zigaplabs/super-wallet/service/docscan"
	"github.com/zigaplabs/super-wallet/service/hashgen"
	"github.com/zigaplabs/super-wallet/service/identity"
	"github.com/zigaplabs/super-wallet/service/ledger"
	"github.com/zigaplabs/super-wallet/service/pricefeed"
	"github.com/zigaplabs/super-wallet/service/refund"
	"github.com/zigaplabs/super-wallet/service/tax"
	"github.com/zigaplabs/super-wallet/service/transaction"
	"github.com/zigaplabs/super-wallet/service/van"
)

var serviceSet = wire.NewSet(
	hashgen.New,
	ledger.New,
	tax.New,
	transaction.New,
	refund.New,
	docscan.NewMock,
	identity.New,
	chain.NewMock,
	provideVANClient,
	providePriceFeed,
)

func provideVANClient(v *viper.Viper) core.VANClient {
	v.SetDefault("van.settle_after", 10*time.Second)

	return van.NewMock(v.GetDuration("van.settle_after"))
}

func providePriceFeed(v *viper.Viper) core.PriceFeed {
	v.SetDefault("price.cache_ttl", time.Minute)

	return pricefeed.New(pricefeed.NewMock(), v.GetDuration("price.cache_ttl"))
}
