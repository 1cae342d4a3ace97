package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/pkg/errors"

	"github.com/pawprint-hq/pawprint/internal/apierror"
	"github.com/pawprint-hq/pawprint/model"
)

// CreateUser inserts a new user into the database.
func (d Datasource) CreateUser(user model.User) (model.User, error) {
	user.CreatedAt = time.Now()

	err := d.Conn.QueryRow(`
		INSERT INTO users (name, email, created_at)
		VALUES ($1, NULLIF($2, ''), $3)
		RETURNING id
	`, user.Name, user.Email, user.CreatedAt).Scan(&user.ID)
	if err != nil {
		return user, apierror.NewAPIError(apierror.ErrInternalServer, "failed to create user", errors.Wrap(err, "inserting user"))
	}

	return user, nil
}

// GetUserByID retrieves a user from the database by ID.
func (d Datasource) GetUserByID(ctx context.Context, id int64) (*model.User, error) {
	row := d.Conn.QueryRowContext(ctx, `
		SELECT id, name, COALESCE(email, ''), created_at
		FROM users
		WHERE id = $1
	`, id)

	user := &model.User{}
	err := row.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apierror.NewAPIError(apierror.ErrNotFound, fmt.Sprintf("user with id %d not found", id), err)
		}
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve user", errors.Wrap(err, "scanning user"))
	}

	return user, nil
}

// GetAllUsers retrieves all users from the database.
func (d Datasource) GetAllUsers() ([]model.User, error) {
	rows, err := d.Conn.Query(`
		SELECT id, name, COALESCE(email, ''), created_at
		FROM users
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to retrieve users", errors.Wrap(err, "querying users"))
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user := model.User{}
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.CreatedAt); err != nil {
			return nil, apierror.NewAPIError(apierror.ErrInternalServer, "failed to scan user", err)
		}
		users = append(users, user)
	}

	return users, rows.Err()
}
