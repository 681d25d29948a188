package main

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/zigaplabs/super-wallet/worker/confirmer"
	"github.com/zigaplabs/super-wallet/worker/disburser"
	"github.com/zigaplabs/super-wallet/worker/settler"
)

var workerSet = wire.NewSet(
	provideDisburserConfig,
	disburser.New,
	confirmer.New,
	settler.New,
)

func provideDisburserConfig(v *viper.Viper) disburser.Config {
	v.SetDefault("refund.asset", "XP")

	return disburser.Config{
		Asset: v.GetString("refund.asset"),
	}
}
