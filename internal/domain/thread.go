package domain

import "time"

type Thread struct {
	ID        int64
	Title     string
	Slug      string
	StarterID int64
	StartedOn time.Time
	Replies   int64
}

type Post struct {
	ID       int64
	ThreadID int64
	// ThreadTitle is denormalized into the listing for display.
	ThreadTitle string
	PosterID    int64
	Content     string
	PostedOn    time.Time
}
