// Package seed holds the fixed development dataset and the loader
// that installs it. Loading replaces all rows in doctors and users, so
// it can be run any number of times.
package seed

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/medibook/booking-api/internal/model"
)

// Load replaces the contents of the doctors and users tables with the
// seed rows, one transaction per table.
func Load(ctx context.Context, db *sqlx.DB) error {
	if err := replaceDoctors(ctx, db); err != nil {
		return fmt.Errorf("failed to seed doctors: %w", err)
	}
	if err := replaceUsers(ctx, db); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}
	return nil
}

func replaceDoctors(ctx context.Context, db *sqlx.DB) error {
	return inTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM doctors`); err != nil {
			return err
		}

		insert := `
			INSERT INTO doctors (id, name, specialty, image_url, rating, experience, bio, available_time)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`
		for _, d := range Doctors() {
			if _, err := tx.ExecContext(ctx, insert,
				d.ID, d.Name, d.Specialty, d.ImageURL,
				d.Rating, d.Experience, d.Bio, d.AvailableTime,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func replaceUsers(ctx context.Context, db *sqlx.DB) error {
	return inTx(ctx, db, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM users`); err != nil {
			return err
		}

		insert := `
			INSERT INTO users (id, name, email, phone_number, image_url)
			VALUES ($1, $2, $3, $4, $5)
		`
		for _, u := range Users() {
			if _, err := tx.ExecContext(ctx, insert,
				u.ID, u.Name, u.Email, u.PhoneNumber, u.ImageURL,
			); err != nil {
				return err
			}
		}
		return nil
	})
}

func inTx(ctx context.Context, db *sqlx.DB, fn func(*sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}

func strptr(s string) *string { return &s }

// Users returns the fixed seed user.
func Users() []model.User {
	return []model.User{
		{
			ID:          mustUUID("d034237d-1c3f-4e1b-8b0d-6e01d67e8c3b"),
			Name:        "New User",
			Email:       "new.user@example.com",
			PhoneNumber: strptr(""),
			ImageURL:    strptr("https://placehold.co/100x100/CCCCCC/000000.png?text=NU"),
		},
	}
}
