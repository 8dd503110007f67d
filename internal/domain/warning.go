package domain

import "time"

type Warning struct {
	ID         int64
	UserID     int64
	Reason     string
	GivenBy    string
	GivenOn    time.Time
	IsCanceled bool
	// IsActive is derived per request by the warning windowing pass; it is
	// never persisted.
	IsActive bool
}

type NameChange struct {
	ID          int64
	UserID      int64
	OldUsername string
	NewUsername string
	ChangedBy   string
	ChangedOn   time.Time
	// Changes annotates the rename with the character-level diff between the
	// old and the new name, for display.
	Changes []NameDiff
}

type NameDiffOp int

const (
	NameKept NameDiffOp = iota
	NameInserted
	NameDeleted
)

type NameDiff struct {
	Op   NameDiffOp
	Text string
}

type Ban struct {
	ID       int64
	UserID   int64
	Reason   string
	GivenOn  time.Time
	// ExpiresOn is nil for permanent bans.
	ExpiresOn *time.Time
}
