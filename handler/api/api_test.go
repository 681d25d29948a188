package api

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/shopspring/decimal"
	"github.com/zigaplabs/super-wallet/core"
	"github.com/zigaplabs/super-wallet/service/hashgen"
	"github.com/zigaplabs/super-wallet/service/ledger"
	"github.com/zigaplabs/super-wallet/service/refund"
	"github.com/zigaplabs/super-wallet/service/tax"
	"github.com/zigaplabs/super-wallet/service/transaction"
	"github.com/zigaplabs/super-wallet/store"
)

type fakeUserStore struct {
	byID    map[string]*core.User
	byEmail map[string]*core.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{
		byID:    map[string]*core.User{},
		byEmail: map[string]*core.User{},
	}
}

func (f *fakeUserStore) Create(_ context.Context, user *core.User) error {
	if _, ok := f.byEmail[user.Email]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "duplicate entry"}
	}

	user.CreatedAt = time.Now()
	clone := *user
	f.byID[user.ID] = &clone
	f.byEmail[user.Email] = &clone
	return nil
}

func (f *fakeUserStore) Find(_ context.Context, id string) (*core.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *user
	return &clone, nil
}

func (f *fakeUserStore) List(_ context.Context, offset, limit int) ([]*core.User, error) {
	var users []*core.User
	for _, user := range f.byID {
		clone := *user
		users = append(users, &clone)
	}

	return users, nil
}

type fakeTransactionStore struct {
	nextID uint64
	byHash map[string]*core.Transaction
	byID   map[uint64]*core.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{
		byHash: map[string]*core.Transaction{},
		byID:   map[uint64]*core.Transaction{},
	}
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *core.Transaction) error {
	if _, ok := f.byHash[tx.TxHash]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "duplicate entry"}
	}

	f.nextID++
	tx.ID = f.nextID
	clone := *tx
	f.byHash[tx.TxHash] = &clone
	f.byID[tx.ID] = &clone
	return nil
}

func (f *fakeTransactionStore) Find(_ context.Context, id uint64) (*core.Transaction, error) {
	tx, ok := f.byID[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *tx
	return &clone, nil
}

func (f *fakeTransactionStore) FindHash(_ context.Context, txHash string) (*core.Transaction, error) {
	tx, ok := f.byHash[txHash]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *tx
	return &clone, nil
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, userID string, offset, limit int) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	for id := f.nextID; id > 0; id-- {
		if tx, ok := f.byID[id]; ok && tx.UserID == userID {
			clone := *tx
			txs = append(txs, &clone)
		}
	}

	return txs, nil
}

func (f *fakeTransactionStore) ListSince(_ context.Context, id uint64, limit int) ([]*core.Transaction, error) {
	var txs []*core.Transaction
	for next := id + 1; next <= f.nextID && len(txs) < limit; next++ {
		if tx, ok := f.byID[next]; ok {
			clone := *tx
			txs = append(txs, &clone)
		}
	}

	return txs, nil
}

func (f *fakeTransactionStore) UpdateStatus(_ context.Context, tx *core.Transaction, to core.TransactionStatus) error {
	stored, ok := f.byID[tx.ID]
	if !ok || stored.Status != tx.Status {
		return errors.New("optimistic lock failed")
	}

	stored.Status = to
	tx.Status = to
	return nil
}

type fakeRefundStore struct {
	nextID uint64
	rows   map[uint64]*core.TaxRefund
}

func newFakeRefundStore() *fakeRefundStore {
	return &fakeRefundStore{rows: map[uint64]*core.TaxRefund{}}
}

func (f *fakeRefundStore) Create(_ context.Context, refund *core.TaxRefund) error {
	f.nextID++
	refund.ID = f.nextID
	refund.SubmittedAt = time.Now()
	clone := *refund
	f.rows[refund.ID] = &clone
	return nil
}

func (f *fakeRefundStore) Find(_ context.Context, id uint64) (*core.TaxRefund, error) {
	refund, ok := f.rows[id]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *refund
	return &clone, nil
}

func (f *fakeRefundStore) ListByUser(_ context.Context, userID string, offset, limit int) ([]*core.TaxRefund, error) {
	var refunds []*core.TaxRefund
	for id := f.nextID; id > 0; id-- {
		if refund, ok := f.rows[id]; ok && refund.UserID == userID {
			clone := *refund
			refunds = append(refunds, &clone)
		}
	}

	return refunds, nil
}

func (f *fakeRefundStore) ListStatus(_ context.Context, status core.RefundStatus, limit int) ([]*core.TaxRefund, error) {
	var refunds []*core.TaxRefund
	for id := uint64(1); id <= f.nextID && len(refunds) < limit; id++ {
		if refund, ok := f.rows[id]; ok && refund.Status == status {
			clone := *refund
			refunds = append(refunds, &clone)
		}
	}

	return refunds, nil
}

func (f *fakeRefundStore) UpdateStatus(_ context.Context, refund *core.TaxRefund, to core.RefundStatus) error {
	stored, ok := f.rows[refund.ID]
	if !ok || stored.Status != refund.Status {
		return store.ErrOptimisticLock
	}

	now := time.Now()
	if stored.Status == core.RefundStatusPending {
		stored.ProcessedAt = &now
	}

	stored.Status = to
	refund.Status = to
	return nil
}

type fakeBalanceStore struct {
	mux    sync.Mutex
	rows   map[string]*core.WalletBalance
	nextID uint64
}

func newFakeBalanceStore() *fakeBalanceStore {
	return &fakeBalanceStore{rows: map[string]*core.WalletBalance{}}
}

func (f *fakeBalanceStore) Find(_ context.Context, address, assetType string) (*core.WalletBalance, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	row, ok := f.rows[address+"/"+assetType]
	if !ok {
		return nil, sql.ErrNoRows
	}

	clone := *row
	return &clone, nil
}

func (f *fakeBalanceStore) ListAddress(_ context.Context, address string) ([]*core.WalletBalance, error) {
	f.mux.Lock()
	defer f.mux.Unlock()

	var balances []*core.WalletBalance
	for _, row := range f.rows {
		if row.Address == address {
			clone := *row
			balances = append(balances, &clone)
		}
	}

	return balances, nil
}

func (f *fakeBalanceStore) Create(_ context.Context, balance *core.WalletBalance) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	key := balance.Address + "/" + balance.AssetType
	if _, ok := f.rows[key]; ok {
		return &mysql.MySQLError{Number: 1062, Message: "duplicate entry"}
	}

	f.nextID++
	balance.ID = f.nextID
	balance.Version = 1
	clone := *balance
	f.rows[key] = &clone
	return nil
}

func (f *fakeBalanceStore) Update(_ context.Context, balance *core.WalletBalance, next decimal.Decimal) error {
	f.mux.Lock()
	defer f.mux.Unlock()

	for key, row := range f.rows {
		if row.ID == balance.ID {
			if row.Version != balance.Version {
				return store.ErrOptimisticLock
			}

			clone := *row
			clone.Balance = next
			clone.Version++
			f.rows[key] = &clone

			balance.Balance = next
			balance.Version++
			return nil
		}
	}

	return sql.ErrNoRows
}

type testServer struct {
	handler http.Handler
}

func newTestServer() *testServer {
	gen := hashgen.New()
	taxz := tax.New()
	transactions := newFakeTransactionStore()
	refunds := newFakeRefundStore()

	srv := New(
		newFakeUserStore(),
		transactions,
		refunds,
		nil,
		nil,
		nil,
		nil,
		nil,
		ledger.New(newFakeBalanceStore()),
		taxz,
		transaction.New(transactions, gen),
		refund.New(refunds, taxz),
		nil,
		nil,
		nil,
		nil,
		gen,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Config{DefaultAsset: "XP", PageLimit: 50},
	)

	return &testServer{handler: srv.Handler()}
}

func (s *testServer) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *testServer) wantBalance(t *testing.T, address, asset, want string) {
	t.Helper()

	rec := s.do(t, http.MethodGet, "/balances/"+address+"/"+asset, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /balances/%s/%s = %d, want %d", address, asset, rec.Code, http.StatusOK)
	}

	var body struct {
		Balance decimal.Decimal `json:"balance"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode balance: %v", err)
	}

	if !body.Balance.Equal(newDecimal(want)) {
		t.Errorf("balance of %s/%s = %s, want %s", address, asset, body.Balance, want)
	}
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) *T {
	t.Helper()

	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	return &v
}

func newDecimal(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestEstimateTax(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name       string
		body       map[string]string
		wantRate   string
		wantTax    string
		wantRefund string
	}{
		{
			name:       "six percent bracket",
			body:       map[string]string{"gross_income": "10000000", "tax_paid": "1000000"},
			wantRate:   "0.06",
			wantTax:    "600000",
			wantRefund: "400000",
		},
		{
			name:       "thirty five percent bracket",
			body:       map[string]string{"gross_income": "100000000", "tax_paid": "20000000", "deductions": "0"},
			wantRate:   "0.35",
			wantTax:    "35000000",
			wantRefund: "0",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := s.do(t, http.MethodPost, "/tax/estimates", c.body)
			if rec.Code != http.StatusOK {
				t.Fatalf("POST /tax/estimates = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
			}

			estimate := decodeBody[core.TaxEstimate](t, rec)
			if !estimate.EffectiveRate.Equal(newDecimal(c.wantRate)) {
				t.Errorf("EffectiveRate = %s, want %s", estimate.EffectiveRate, c.wantRate)
			}

			if !estimate.CalculatedTax.Equal(newDecimal(c.wantTax)) {
				t.Errorf("CalculatedTax = %s, want %s", estimate.CalculatedTax, c.wantTax)
			}

			if !estimate.RefundAmount.Equal(newDecimal(c.wantRefund)) {
				t.Errorf("RefundAmount = %s, want %s", estimate.RefundAmount, c.wantRefund)
			}
		})
	}
}

func TestEstimateTaxRejectsBadInput(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/tax/estimates", map[string]string{"gross_income": "ten million"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed decimal = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = s.do(t, http.MethodPost, "/tax/estimates", map[string]string{"gross_income": "-1"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("negative gross income = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateUser(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/users", map[string]string{
		"name":  "Kim Minjun",
		"email": "Minjun.Kim@example.com",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /users = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	user := decodeBody[core.User](t, rec)
	if user.Email != "minjun.kim@example.com" {
		t.Errorf("Email = %q, want lower cased", user.Email)
	}

	if !strings.HasPrefix(user.WalletAddress, "0x") || len(user.WalletAddress) != 42 {
		t.Errorf("WalletAddress = %q, want 0x prefixed 20 byte hex", user.WalletAddress)
	}

	rec = s.do(t, http.MethodGet, "/users/"+user.ID, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /users/%s = %d, want %d", user.ID, rec.Code, http.StatusOK)
	}

	rec = s.do(t, http.MethodPost, "/users", map[string]string{
		"name":  "Someone Else",
		"email": "minjun.kim@example.com",
	})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("duplicate email = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = s.do(t, http.MethodPost, "/users", map[string]string{"name": "No Email"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("missing email = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateTransaction(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/transactions", map[string]string{
		"user_id":          "user-1",
		"to_address":       "0xabc",
		"amount":           "10",
		"transaction_type": "receive",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /transactions = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	tx := decodeBody[core.Transaction](t, rec)
	if tx.AssetType != "XP" {
		t.Errorf("AssetType = %q, want default XP", tx.AssetType)
	}

	if !strings.HasPrefix(tx.TxHash, "0x") || len(tx.TxHash) != 66 {
		t.Errorf("TxHash = %q, want generated 32 byte hex", tx.TxHash)
	}

	s.wantBalance(t, "0xabc", "XP", "10")

	hash := "0x" + strings.Repeat("ab", 32)
	rec = s.do(t, http.MethodPost, "/transactions", map[string]string{
		"user_id":          "user-1",
		"from_address":     "0xabc",
		"amount":           "4",
		"fee":              "1",
		"tx_hash":          hash,
		"transaction_type": "send",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("send = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	s.wantBalance(t, "0xabc", "XP", "5")
}

func TestCreateTransactionDuplicateHash(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/transactions", map[string]string{
		"user_id":          "user-1",
		"to_address":       "0xabc",
		"amount":           "10",
		"transaction_type": "receive",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /transactions = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	hash := "0x" + strings.Repeat("ab", 32)
	body := map[string]string{
		"user_id":          "user-1",
		"to_address":       "0xabc",
		"amount":           "1",
		"tx_hash":          hash,
		"transaction_type": "receive",
	}

	if rec := s.do(t, http.MethodPost, "/transactions", body); rec.Code != http.StatusCreated {
		t.Fatalf("first record = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	if rec := s.do(t, http.MethodPost, "/transactions", body); rec.Code != http.StatusBadRequest {
		t.Errorf("replayed hash = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	// the replay must fail before it credits the address again
	s.wantBalance(t, "0xabc", "XP", "11")
}

func TestCreateTransactionInsufficientBalance(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/transactions", map[string]string{
		"user_id":          "user-1",
		"to_address":       "0xabc",
		"amount":           "5",
		"transaction_type": "receive",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /transactions = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	hash := "0x" + strings.Repeat("11", 32)
	rec = s.do(t, http.MethodPost, "/transactions", map[string]string{
		"user_id":          "user-1",
		"from_address":     "0xabc",
		"amount":           "100",
		"tx_hash":          hash,
		"transaction_type": "send",
	})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("over debit = %d, want %d: %s", rec.Code, http.StatusUnprocessableEntity, rec.Body)
	}

	s.wantBalance(t, "0xabc", "XP", "5")

	rec = s.do(t, http.MethodGet, "/transactions/hash/"+hash, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /transactions/hash = %d, want %d", rec.Code, http.StatusOK)
	}

	tx := decodeBody[core.Transaction](t, rec)
	if tx.Status != core.TransactionStatusFailed {
		t.Errorf("Status = %s, want %s", tx.Status, core.TransactionStatusFailed)
	}
}

func TestCreateTransactionRejectsBadInput(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name string
		body map[string]string
	}{
		{
			name: "zero amount",
			body: map[string]string{"user_id": "u", "to_address": "0xabc", "amount": "0", "transaction_type": "receive"},
		},
		{
			name: "too many decimal places",
			body: map[string]string{"user_id": "u", "to_address": "0xabc", "amount": "0.000000001", "transaction_type": "receive"},
		},
		{
			name: "negative fee",
			body: map[string]string{"user_id": "u", "from_address": "0xabc", "amount": "1", "fee": "-1", "transaction_type": "send"},
		},
		{
			name: "unknown type",
			body: map[string]string{"user_id": "u", "from_address": "0xabc", "amount": "1", "transaction_type": "swap"},
		},
		{
			name: "send without from address",
			body: map[string]string{"user_id": "u", "amount": "1", "transaction_type": "send"},
		},
		{
			name: "receive without to address",
			body: map[string]string{"user_id": "u", "amount": "1", "transaction_type": "receive"},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if rec := s.do(t, http.MethodPost, "/transactions", c.body); rec.Code != http.StatusBadRequest {
				t.Errorf("POST /transactions = %d, want %d", rec.Code, http.StatusBadRequest)
			}
		})
	}
}

func TestRefundWorkflow(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/refunds", map[string]string{
		"user_id":      "user-1",
		"gross_income": "10000000",
		"tax_paid":     "1000000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /refunds = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	submitted := decodeBody[core.TaxRefund](t, rec)
	if submitted.Status != core.RefundStatusPending {
		t.Errorf("Status = %s, want %s", submitted.Status, core.RefundStatusPending)
	}

	if !submitted.RefundAmount.Equal(newDecimal("400000")) {
		t.Errorf("RefundAmount = %s, want 400000", submitted.RefundAmount)
	}

	id := strconv.FormatUint(submitted.ID, 10)

	rec = s.do(t, http.MethodGet, "/refunds/"+id, nil)
	if rec.Code != http.StatusOK {
		t.Errorf("GET /refunds/%s = %d, want %d", id, rec.Code, http.StatusOK)
	}

	rec = s.do(t, http.MethodPost, "/refunds/"+id+"/process", map[string]string{"action": "approve"})
	if rec.Code != http.StatusOK {
		t.Fatalf("approve = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	approved := decodeBody[core.TaxRefund](t, rec)
	if approved.Status != core.RefundStatusApproved {
		t.Errorf("Status = %s, want %s", approved.Status, core.RefundStatusApproved)
	}

	rec = s.do(t, http.MethodPost, "/refunds/"+id+"/process", map[string]string{"action": "approve"})
	if rec.Code != http.StatusConflict {
		t.Errorf("second approve = %d, want %d", rec.Code, http.StatusConflict)
	}

	rec = s.do(t, http.MethodPost, "/refunds/"+id+"/process", map[string]string{"action": "hold"})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("unknown action = %d, want %d", rec.Code, http.StatusBadRequest)
	}

	rec = s.do(t, http.MethodPost, "/refunds/999/process", map[string]string{"action": "approve"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing refund = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRefundReject(t *testing.T) {
	s := newTestServer()

	rec := s.do(t, http.MethodPost, "/refunds", map[string]string{
		"user_id":      "user-1",
		"gross_income": "50000000",
		"tax_paid":     "20000000",
		"deductions":   "10000000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("POST /refunds = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body)
	}

	submitted := decodeBody[core.TaxRefund](t, rec)
	id := strconv.FormatUint(submitted.ID, 10)

	rec = s.do(t, http.MethodPost, "/refunds/"+id+"/process", map[string]string{"action": "reject"})
	if rec.Code != http.StatusOK {
		t.Fatalf("reject = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body)
	}

	rejected := decodeBody[core.TaxRefund](t, rec)
	if rejected.Status != core.RefundStatusRejected {
		t.Errorf("Status = %s, want %s", rejected.Status, core.RefundStatusRejected)
	}

	rec = s.do(t, http.MethodPost, "/refunds/"+id+"/process", map[string]string{"action": "reject"})
	if rec.Code != http.StatusConflict {
		t.Errorf("second reject = %d, want %d", rec.Code, http.StatusConflict)
	}
}
