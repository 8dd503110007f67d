package impl

import (
	"context"
	"database/sql"

	"agora/internal/domain"
)

func (d *dbImpl) IsFollowing(ctx context.Context, actorID, targetID int64) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_follows WHERE follower_id = ? AND followed_id = ?)`,
		actorID, targetID).Scan(&exists)
	return exists, d.HandleError(err)
}

func (d *dbImpl) IsBlocking(ctx context.Context, actorID, targetID int64) (bool, error) {
	var exists bool
	err := d.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM user_blocks WHERE blocker_id = ? AND blocked_id = ?)`,
		actorID, targetID).Scan(&exists)
	return exists, d.HandleError(err)
}

// ToggleFollow flips the follow edge and refreshes both denormalized counters
// from the edge table in the same transaction. The counters are recomputed,
// not incremented, so they can never drift from the edges; only the counter
// columns are written back.
func (d *dbImpl) ToggleFollow(ctx context.Context, actorID, targetID int64) (following bool, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM user_follows WHERE follower_id = ? AND followed_id = ?)`,
			actorID, targetID).Scan(&exists)
		if err != nil {
			return err
		}

		if exists {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM user_follows WHERE follower_id = ? AND followed_id = ?`,
				actorID, targetID)
		} else {
			following = true
			_, err = tx.ExecContext(ctx,
				`INSERT INTO user_follows(follower_id, followed_id) VALUES (?, ?)`,
				actorID, targetID)
		}
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE users
			 SET followers = (SELECT COUNT(*) FROM user_follows WHERE followed_id = ?)
			 WHERE id = ?`, targetID, targetID)
		if err != nil {
			return err
		}

		_, err = tx.ExecContext(ctx,
			`UPDATE users
			 SET following = (SELECT COUNT(*) FROM user_follows WHERE follower_id = ?)
			 WHERE id = ?`, actorID, actorID)
		return err
	})
	return following, err
}

// ToggleBlock flips the block edge. Blocks have no denormalized counters, so
// the transaction only touches the edge table.
func (d *dbImpl) ToggleBlock(ctx context.Context, actorID, targetID int64) (blocking bool, err error) {
	err = d.WithTx(ctx, func(tx *sql.Tx) error {
		var exists bool
		err := tx.QueryRowContext(ctx,
			`SELECT EXISTS(SELECT 1 FROM user_blocks WHERE blocker_id = ? AND blocked_id = ?)`,
			actorID, targetID).Scan(&exists)
		if err != nil {
			return err
		}

		if exists {
			_, err = tx.ExecContext(ctx,
				`DELETE FROM user_blocks WHERE blocker_id = ? AND blocked_id = ?`,
				actorID, targetID)
		} else {
			blocking = true
			_, err = tx.ExecContext(ctx,
				`INSERT INTO user_blocks(blocker_id, blocked_id) VALUES (?, ?)`,
				actorID, targetID)
		}
		return err
	})
	return blocking, err
}

func (d *dbImpl) CountFollowers(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_follows WHERE followed_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) CountFollows(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM user_follows WHERE follower_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) ListFollowers(ctx context.Context, userID int64, limit, offset int64) ([]domain.User, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 JOIN user_follows ON user_follows.follower_id = users.id
		 WHERE user_follows.followed_id = ?
		 ORDER BY users.slug
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (d *dbImpl) ListFollows(ctx context.Context, userID int64, limit, offset int64) ([]domain.User, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT `+userColumns+` FROM users
		 JOIN user_follows ON user_follows.followed_id = users.id
		 WHERE user_follows.follower_id = ?
		 ORDER BY users.slug
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
