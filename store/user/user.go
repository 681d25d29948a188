package user

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/tsenart/nap"
	"github.com/zigaplabs/super-wallet/core"
)

func New(db *nap.DB) core.UserStore {
	users, err := lru.New[string, *core.User](256)
	if err != nil {
		panic(err)
	}

	return &userStore{
		db:    db,
		users: users,
	}
}

type userStore struct {
	db    *nap.DB
	users *lru.Cache[string, *core.User]
}

var columns = []string{"id", "name", "email", "phone_number", "wallet_address", "created_at", "updated_at"}

func (s *userStore) Create(ctx context.Context, user *core.User) error {
	b := sq.Insert("users").
		Columns("id", "name", "email", "phone_number", "wallet_address").
		Values(user.ID, user.Name, user.Email, user.PhoneNumber, user.WalletAddress)

	_, err := b.RunWith(s.db).ExecContext(ctx)
	return err
}

func (s *userStore) Find(ctx context.Context, id string) (*core.User, error) {
	if u, ok := s.users.Get(id); ok {
		return u, nil
	}

	u, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	s.users.Add(id, u)
	return u, nil
}

func (s *userStore) find(ctx context.Context, id string) (*core.User, error) {
	b := sq.Select(columns...).From("users").Where(sq.Eq{"id": id})
	row := b.RunWith(s.db).QueryRowContext(ctx)

	var user core.User
	if err := row.Scan(&user.ID, &user.Name, &user.Email, &user.PhoneNumber, &user.WalletAddress, &user.CreatedAt, &user.UpdatedAt); err != nil {
		return nil, err
	}

	return &user, nil
}

func (s *userStore) List(ctx context.Context, offset, limit int) ([]*core.User, error) {
	b := sq.Select(columns...).
		From("users").
		OrderBy("created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))

	rows, err := b.RunWith(s.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var users []*core.User
	for rows.Next() {
		var user core.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.PhoneNumber, &user.WalletAddress, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}

		users = append(users, &user)
	}

	return users, nil
}
