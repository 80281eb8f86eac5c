package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"plantstore-admin/internal/client"
	"plantstore-admin/internal/model"
)

// the session is a single row; token and user id live or die together
const recordID = 1

type Store interface {
	// Restore loads a previously persisted session. It returns true when a
	// usable session was found.
	Restore(ctx context.Context) (bool, error)
	Login(ctx context.Context, email, password string) error
	Logout(ctx context.Context) error

	Authenticated() bool
	Token() string
	UserID() string
}

type storeImpl struct {
	mu          sync.Mutex
	db          *gorm.DB
	storeClient client.StoreClient

	token  string
	userID string
}

func NewStore(db *gorm.DB, storeClient client.StoreClient) Store {
	return &storeImpl{
		db:          db,
		storeClient: storeClient,
	}
}

func (s *storeImpl) Restore(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var record model.SessionRecord
	err := s.db.WithContext(ctx).First(&record, recordID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read session record: %w", err)
	}

	if record.Token == "" || record.UserID == "" {
		return false, nil
	}
	if tokenExpired(record.Token) {
		if err := s.clearLocked(ctx); err != nil {
			return false, err
		}
		return false, nil
	}

	s.token = record.Token
	s.userID = record.UserID
	return true, nil
}

func (s *storeImpl) Login(ctx context.Context, email, password string) error {
	result, err := s.storeClient.Login(ctx, email, password)
	if err != nil {
		return fmt.Errorf("backend login: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	record := model.SessionRecord{
		ID:     recordID,
		Token:  result.Token,
		UserID: result.User.ID,
	}
	if err := s.db.WithContext(ctx).Save(&record).Error; err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.token = result.Token
	s.userID = result.User.ID
	return nil
}

func (s *storeImpl) Logout(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clearLocked(ctx)
}

func (s *storeImpl) clearLocked(ctx context.Context) error {
	err := s.db.WithContext(ctx).
		Delete(&model.SessionRecord{}, recordID).Error
	if err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}

	s.token = ""
	s.userID = ""
	return nil
}

func (s *storeImpl) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token != "" && s.userID != ""
}

func (s *storeImpl) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *storeImpl) UserID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.userID
}

// tokenExpired reports whether token is a JWT with an exp claim in the past.
// Opaque tokens, or JWTs without exp, are accepted as-is; the backend is the
// authority and will answer 401 if it disagrees.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(time.Now())
}
