package rest

import (
	"context"

	"github.com/feedaq/academy-go/core/user"
)

type UserRepository struct {
	client *Client
}

var _ user.Repository = (*UserRepository)(nil)

func NewUserRepository(client *Client) *UserRepository {
	return &UserRepository{client: client}
}

func (repo *UserRepository) Login(ctx context.Context, creds user.Credentials) (string, error) {
	var data struct {
		Token string `json:"token"`
	}
	if err := repo.client.post(ctx, "login", "/users/login", creds, &data); err != nil {
		return "", err
	}
	return data.Token, nil
}

func (repo *UserRepository) GetMe(ctx context.Context) (user.User, error) {
	var usr user.User
	err := repo.client.get(ctx, "getMe", "/users/me", &usr)
	return usr, err
}
