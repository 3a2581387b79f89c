package postgres

import (
	"context"
	"fmt"

	"github.com/medibook/booking-api/internal/model"
	"github.com/medibook/booking-api/internal/repository"
)

type userRepository struct {
	BaseRepository
}

func NewUserRepository(base BaseRepository) repository.UserRepository {
	return &userRepository{base}
}

func (r *userRepository) List(ctx context.Context) ([]*model.UserListItem, error) {
	query := `
		SELECT id, name, email, phone_number, image_url
		FROM users
	`

	users := []*model.UserListItem{}
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

func (r *userRepository) Get(ctx context.Context, id string) (*model.User, error) {
	query := `
		SELECT * FROM users
		WHERE id = $1
	`

	var user model.User
	if err := r.db.GetContext(ctx, &user, query, id); err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, req *model.UpsertUserRequest) (*model.User, error) {
	query := `
		INSERT INTO users (name, email, phone_number, image_url)
		VALUES ($1, $2, $3, $4)
		RETURNING *
	`

	var user model.User
	err := r.db.GetContext(ctx, &user, query,
		req.Name,
		req.Email,
		req.PhoneNumber,
		req.ImageURL,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, id string, req *model.UpsertUserRequest) (*model.User, error) {
	query := `
		UPDATE users SET
			name = $1,
			email = $2,
			phone_number = $3,
			image_url = $4,
			updated_at = now()
		WHERE id = $5
		RETURNING *
	`

	var user model.User
	err := r.db.GetContext(ctx, &user, query,
		req.Name,
		req.Email,
		req.PhoneNumber,
		req.ImageURL,
		id,
	)
	if err != nil {
		return nil, translateError(err)
	}

	return &user, nil
}

func (r *userRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM users
		WHERE id = $1
	`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
