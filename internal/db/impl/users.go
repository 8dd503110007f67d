package impl

import (
	"context"
	"database/sql"
	"time"

	"agora/internal/domain"
)

const userColumns = `id, username, slug, email, title, followers, following,
	avatar_digest, joined_on, last_click, hidden_presence, admin, moderator`

func scanUser(row interface{ Scan(...any) error }) (domain.User, error) {
	var u domain.User
	var title, digest sql.NullString
	var lastClick sql.NullTime
	err := row.Scan(&u.ID, &u.Username, &u.Slug, &u.Email, &title, &u.Followers,
		&u.Following, &digest, &u.JoinedOn, &lastClick, &u.HiddenPresence,
		&u.Admin, &u.Moderator)
	if err != nil {
		return domain.User{}, err
	}
	u.Title = title.String
	u.AvatarDigest = digest.String
	u.LastClick = lastClick.Time
	return u, nil
}

func (d *dbImpl) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	u, err := scanUser(row)
	return u, d.HandleError(err)
}

func (d *dbImpl) GetUserBySlug(ctx context.Context, slug string) (domain.User, error) {
	row := d.db.QueryRowContext(ctx, `SELECT `+userColumns+` FROM users WHERE slug = ?`, slug)
	u, err := scanUser(row)
	return u, d.HandleError(err)
}

func (d *dbImpl) TouchLastClick(ctx context.Context, id int64, at time.Time) error {
	_, err := d.db.ExecContext(ctx, `UPDATE users SET last_click = ? WHERE id = ?`, at, id)
	return d.HandleError(err)
}

func (d *dbImpl) SetAvatarDigest(ctx context.Context, id int64, digest string) error {
	_, err := d.db.ExecContext(ctx, `UPDATE users SET avatar_digest = ? WHERE id = ?`, digest, id)
	return d.HandleError(err)
}
