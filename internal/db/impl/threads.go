package impl

import (
	"context"

	"agora/internal/domain"
)

func (d *dbImpl) CountPostsBy(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE poster_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) ListPostsBy(ctx context.Context, userID int64, limit, offset int64) ([]domain.Post, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT posts.id, posts.thread_id, threads.title, posts.poster_id, posts.content, posts.posted_on
		 FROM posts
		 JOIN threads ON threads.id = posts.thread_id
		 WHERE posts.poster_id = ?
		 ORDER BY posts.id DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(&p.ID, &p.ThreadID, &p.ThreadTitle, &p.PosterID, &p.Content, &p.PostedOn); err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (d *dbImpl) CountThreadsBy(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := d.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM threads WHERE starter_id = ?`, userID).Scan(&count)
	return count, d.HandleError(err)
}

func (d *dbImpl) ListThreadsBy(ctx context.Context, userID int64, limit, offset int64) ([]domain.Thread, error) {
	rows, err := d.db.QueryContext(ctx,
		`SELECT id, title, slug, starter_id, started_on, replies
		 FROM threads WHERE starter_id = ?
		 ORDER BY id DESC
		 LIMIT ? OFFSET ?`, userID, limit, offset)
	if err != nil {
		return nil, d.HandleError(err)
	}
	defer rows.Close()

	var threads []domain.Thread
	for rows.Next() {
		var t domain.Thread
		if err := rows.Scan(&t.ID, &t.Title, &t.Slug, &t.StarterID, &t.StartedOn, &t.Replies); err != nil {
			return nil, err
		}
		threads = append(threads, t)
	}
	return threads, rows.Err()
}
