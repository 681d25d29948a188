package api

import (
	"log/slog"
	"net/http"

	"github.com/asaskevich/govalidator"
	"github.com/go-chi/chi/v5"
	"github.com/zigaplabs/super-wallet/core"
	"golang.org/x/sync/singleflight"
)

type Config struct {
	DefaultAsset string `valid:"required"`
	PageLimit    int    `valid:"required"`
}

func New(
	users core.UserStore,
	transactions core.TransactionStore,
	refunds core.RefundStore,
	dids core.DIDStore,
	credentials core.CredentialStore,
	documents core.DocumentStore,
	vans core.VANStore,
	contracts core.ContractStore,
	ledgerz core.LedgerService,
	taxz core.TaxService,
	transactionz core.TransactionService,
	refundz core.RefundService,
	identityz core.IdentityService,
	pricez core.PriceFeed,
	chainz core.ChainRPC,
	vanz core.VANClient,
	gen core.HashGenerator,
	logger *slog.Logger,
	cfg Config,
) *Server {
	if _, err := govalidator.ValidateStruct(cfg); err != nil {
		panic(err)
	}

	return &Server{
		users:        users,
		transactions: transactions,
		refunds:      refunds,
		dids:         dids,
		credentials:  credentials,
		documents:    documents,
		vans:         vans,
		contracts:    contracts,
		ledgerz:      ledgerz,
		taxz:         taxz,
		transactionz: transactionz,
		refundz:      refundz,
		identityz:    identityz,
		pricez:       pricez,
		chainz:       chainz,
		vanz:         vanz,
		gen:          gen,
		logger:       logger.With("server", "api"),
		sf:           &singleflight.Group{},
		cfg:          cfg,
	}
}

type Server struct {
	users        core.UserStore
	transactions core.TransactionStore
	refunds      core.RefundStore
	dids         core.DIDStore
	credentials  core.CredentialStore
	documents    core.DocumentStore
	vans         core.VANStore
	contracts    core.ContractStore
	ledgerz      core.LedgerService
	taxz         core.TaxService
	transactionz core.TransactionService
	refundz      core.RefundService
	identityz    core.IdentityService
	pricez       core.PriceFeed
	chainz       core.ChainRPC
	vanz         core.VANClient
	gen          core.HashGenerator
	logger       *slog.Logger
	sf           *singleflight.Group
	cfg          Config
}

func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Route("/users", func(r chi.Router) {
		r.Post("/", s.createUser)
		r.Get("/", s.listUsers)
		r.Get("/{user_id}", s.findUser)
		r.Get("/{user_id}/balances", s.listUserBalances)
		r.Get("/{user_id}/transactions", s.listUserTransactions)
		r.Get("/{user_id}/refunds", s.listUserRefunds)
		r.Get("/{user_id}/dids", s.listUserDIDs)
		r.Get("/{user_id}/credentials", s.listUserCredentials)
		r.Get("/{user_id}/documents", s.listUserDocuments)
		r.Get("/{user_id}/van-transactions", s.listUserVANTransactions)
		r.Get("/{user_id}/contracts", s.listUserContracts)
	})

	r.Route("/balances", func(r chi.Router) {
		r.Get("/{address}", s.listBalances)
		r.Get("/{address}/{asset}", s.findBalance)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Post("/", s.createTransaction)
		r.Get("/{id}", s.findTransaction)
		r.Get("/hash/{tx_hash}", s.findTransactionHash)
	})

	r.Route("/tax", func(r chi.Router) {
		r.Post("/estimates", s.estimateTax)
	})

	r.Route("/refunds", func(r chi.Router) {
		r.Post("/", s.submitRefund)
		r.Get("/{id}", s.findRefund)
		r.Post("/{id}/process", s.processRefund)
	})

	r.Route("/dids", func(r chi.Router) {
		r.Post("/", s.registerDID)
		r.Get("/{did}", s.resolveDID)
	})

	r.Route("/credentials", func(r chi.Router) {
		r.Post("/", s.issueCredential)
		r.Get("/{id}", s.findCredential)
		r.Post("/{id}/revoke", s.revokeCredential)
	})

	r.Route("/documents", func(r chi.Router) {
		r.Post("/", s.submitDocument)
		r.Get("/{id}", s.findDocument)
	})

	r.Route("/van", func(r chi.Router) {
		r.Post("/transactions", s.createVANTransaction)
		r.Get("/transactions/{id}", s.findVANTransaction)
	})

	r.Route("/contracts", func(r chi.Router) {
		r.Post("/", s.deployContract)
		r.Get("/{id}", s.findContract)
		r.Post("/{id}/calls", s.callContract)
	})

	r.Route("/assets", func(r chi.Router) {
		r.Get("/{asset}/price", s.quotePrice)
	})

	return r
}
