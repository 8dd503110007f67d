package core

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"agora/internal/acl"
	"agora/internal/db"
	"agora/internal/domain"
	"agora/internal/service"
	"agora/internal/validate"
)

// AuthenticateUser confirms the user's identity and, if their credentials are correct, returns data to be put
// in the login session, such as the user's name and id.
func (s *AppService) AuthenticateUser(ctx context.Context, user, password string) (u domain.Account, authenticated bool, err error) {
	user = strings.ToLower(strings.TrimSpace(user))

	err = validate.Email(user)
	if err == nil {
		u, err = s.DB.GetAuthDataByEmail(ctx, user)
	} else if err = validate.Username(user); err == nil {
		u, err = s.DB.GetAuthDataByUsername(ctx, user)
	} else {
		err = errors.New("invalid username or email")
	}

	if errors.Is(err, db.ErrNotFound) {
		return domain.Account{}, false, nil
	}
	if err != nil {
		return domain.Account{}, false, err
	}

	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	authenticated = err == nil
	return u, authenticated, nil
}

func (s *AppService) CreateUser(ctx context.Context, username, password, email string, admin bool) error {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	err := validate.SignUpForm(username, password, email)
	if err != nil {
		return fmt.Errorf("%w: %s", service.ErrInvalidInput, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return err
	}

	_, err = s.DB.InsertUser(ctx, username, validate.Slugify(username), email, string(hash), admin)
	return err
}

// ViewerByID rebuilds the permission context behind a session and records the
// click for the online tracker.
func (s *AppService) ViewerByID(ctx context.Context, id int64) (acl.ViewerContext, error) {
	u, err := s.DB.GetUserByID(ctx, id)
	if err != nil {
		return acl.Guest(), err
	}

	if err := s.DB.TouchLastClick(ctx, id, time.Now()); err != nil {
		return acl.Guest(), err
	}
	u.LastClick = time.Now()
	return acl.ForUser(&u), nil
}
