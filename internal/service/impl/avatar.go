package core

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	"agora/internal/storage"
)

func (s *AppService) SetAvatar(ctx context.Context, userID int64, content []byte) (string, error) {
	hasher := sha256.New()
	hasher.Write(content)
	digest := hex.EncodeToString(hasher.Sum(nil))

	err := s.avatars.Create(bytes.NewReader(content), digest)
	// The store is content addressed, so a colliding digest means the image
	// is already there.
	if err != nil && !errors.Is(err, storage.ErrAlreadyExists) {
		return "", err
	}

	if err := s.DB.SetAvatarDigest(ctx, userID, digest); err != nil {
		return "", err
	}
	return digest, nil
}

func (s *AppService) GetAvatar(ctx context.Context, digest string) ([]byte, error) {
	return s.avatars.Open(digest)
}
