package main

import (
	"time"

	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/service/chain"
	"github.com/zigaplabs/super-wallet/service/hashgen"
	"github.com/zigaplabs/super-wallet/service/ledger"
	"github.com/zigaplabs/super-wallet/service/van"
)

var serviceSet = wire.NewSet(
	hashgen.New,
	ledger.New,
	chain.NewMock,
	provideVANClient,
)

func provideVANClient(v *viper.Viper) core.VANClient {
	v.SetDefault("van.settle_after", 10*time.Second)

	return van.NewMock(v.GetDuration("van.settle_after"))
}
