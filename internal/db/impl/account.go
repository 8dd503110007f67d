package impl

import (
	"context"
	"database/sql"
	"time"

	"agora/internal/domain"
)

func (d *dbImpl) InsertUser(ctx context.Context, username, slug, email, passwordHash string, admin bool) (id int64, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO users(username, slug, email, joined_on, admin)
			 VALUES (?, ?, ?, ?, ?)`,
			username, slug, email, time.Now(), admin)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO accounts(user_id, password) VALUES (?, ?)`,
			id, passwordHash)
		return err
	})
	return
}

func (d *dbImpl) GetAuthDataByUsername(ctx context.Context, username string) (domain.Account, error) {
	return d.getAuthData(ctx,
		`SELECT users.id, users.username, users.slug, accounts.password, users.admin
		 FROM users JOIN accounts ON accounts.user_id = users.id
		 WHERE LOWER(users.username) = LOWER(?)`, username)
}

func (d *dbImpl) GetAuthDataByEmail(ctx context.Context, email string) (domain.Account, error) {
	return d.getAuthData(ctx,
		`SELECT users.id, users.username, users.slug, accounts.password, users.admin
		 FROM users JOIN accounts ON accounts.user_id = users.id
		 WHERE LOWER(users.email) = LOWER(?)`, email)
}

func (d *dbImpl) getAuthData(ctx context.Context, query, key string) (domain.Account, error) {
	var a domain.Account
	err := d.db.QueryRowContext(ctx, query, key).
		Scan(&a.UserID, &a.Username, &a.Slug, &a.Password, &a.Admin)
	if err != nil {
		return domain.Account{}, d.HandleError(err)
	}
	return a, nil
}
