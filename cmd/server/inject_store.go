package main

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/store/balance"
	"github.com/zigaplabs/super-wallet/store/contract"
	"github.com/zigaplabs/super-wallet/store/credential"
	"github.com/zigaplabs/super-wallet/store/db"
	"github.com/zigaplabs/super-wallet/store/did"
	"github.com/zigaplabs/super-wallet/store/document"
	"github.com/zigaplabs/super-wallet/store/refund"
	"github.com/zigaplabs/super-wallet/store/transaction"
	"github.com/zigaplabs/super-wallet/store/user"
	"github.com/zigaplabs/super-wallet/store/van"
)

var storeSet = wire.NewSet(
	provideDB,
	user.New,
	balance.New,
	transaction.New,
	refund.New,
	did.New,
	credential.New,
	document.New,
	van.New,
	contract.New,
)

func provideDB(v *viper.Viper) (*nap.DB, func(), error) {
	v.SetDefault("db.driver", "mysql")

	driver := v.GetString("db.driver")
	dsn := v.GetString("db.dsn")

	for _, replica := range v.GetStringSlice("db.replicas") {
		dsn += ";" + replica
	}

	conn, err := nap.Open(driver, dsn)
	if err != nil {
		return nil, nil, err
	}

	if err := db.Migrate(conn.Master()); err != nil {
		return nil, nil, err
	}

	return conn, func() { _ = conn.Close() }, nil
}
