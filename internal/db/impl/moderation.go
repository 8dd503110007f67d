package impl

import (
	"context"
	"database/sql"
	"time"

	"agora/internal/domain"
)

func (d *dbImpl) CountWarnings(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM warnings WHERE user_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) ListOpenWarningTimes(ctx context.Context, userID int64) ([]time.Time, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT given_on FROM warnings
		 WHERE user_id = ? AND is_canceled = 0
		 ORDER BY id ASC`, userID)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var times []time.Time
	for rows.Next() {
		var at time.Time
		if err := rows.Scan(&at); err != nil {
			return nil, err
		}
		times = append(times, at)
	}
	return times, rows.Err()
}

func (d *dbImpl) ListWarnings(ctx context.Context, userID int64, limit, offset int64) ([]domain.Warning, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, user_id, reason, given_by, given_on, is_canceled
		 FROM warnings WHERE user_id = ?
		 ORDER BY id DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var warnings []domain.Warning
	for rows.Next() {
		var w domain.Warning
		if err := rows.Scan(&w.ID, &w.UserID, &w.Reason, &w.GivenBy, &w.GivenOn, &w.IsCanceled); err != nil {
			return nil, err
		}
		warnings = append(warnings, w)
	}
	return warnings, rows.Err()
}

func (d *dbImpl) CountNameChanges(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM namechanges WHERE user_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) ListNameChanges(ctx context.Context, userID int64, limit, offset int64) ([]domain.NameChange, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, user_id, old_username, new_username, changed_by, changed_on
		 FROM namechanges WHERE user_id = ?
		 ORDER BY id DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var changes []domain.NameChange
	for rows.Next() {
		var nc domain.NameChange
		if err := rows.Scan(&nc.ID, &nc.UserID, &nc.OldUsername, &nc.NewUsername, &nc.ChangedBy, &nc.ChangedOn); err != nil {
			return nil, err
		}
		changes = append(changes, nc)
	}
	return changes, rows.Err()
}

func (d *dbImpl) GetActiveBan(ctx context.Context, userID int64, now time.Time) (domain.Ban, error) {
	row := d.db.QueryRowContext(ctx,
		`SELECT id, user_id, reason, given_on, expires_on
		 FROM bans
		 WHERE user_id = ? AND is_canceled = 0 AND (expires_on IS NULL OR expires_on > ?)
		 ORDER BY id DESC
		 LIMIT 1`, userID, now)

	var b domain.Ban
	var expires sql.NullTime
	err := row.Scan(&b.ID, &b.UserID, &b.Reason, &b.GivenOn, &expires)
	if err != nil {
		return domain.Ban{}, d.HandleError(err)
	}
	if expires.Valid {
		b.ExpiresOn = &expires.Time
	}
	return b, nil
}
