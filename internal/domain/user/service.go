package user

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/ptalab/emr/internal/platform/auth"
)

// ErrInvalidCredentials is returned on a failed login. The same error covers
// an unknown email and a wrong password so the two are indistinguishable.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ActivityRecorder appends entries to the chart activity log on behalf of a
// named user.
type ActivityRecorder interface {
	RecordFor(ctx context.Context, userID uuid.UUID, action, details string)
}

type Service struct {
	repo     Repository
	secret   string
	ttl      time.Duration
	activity ActivityRecorder
}

func NewService(repo Repository, secret string, ttl time.Duration, activity ActivityRecorder) *Service {
	return &Service{repo: repo, secret: secret, ttl: ttl, activity: activity}
}

// Login verifies the credentials and issues a bearer token. Successful logins
// land in the activity log attributed to the authenticated account.
func (s *Service) Login(ctx context.Context, email, password string) (string, *User, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.IssueToken(s.secret, u.ID, u.Name, u.Role, s.ttl)
	if err != nil {
		return "", nil, err
	}
	s.activity.RecordFor(ctx, u.ID, "login", u.Email)
	return token, u, nil
}

// Register creates an account with a hashed password.
func (s *Service) Register(ctx context.Context, email, name, role, password string, credentials, licenseNumber *string) (*User, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}
	u := &User{
		Email:         email,
		Name:          name,
		Role:          role,
		Credentials:   credentials,
		LicenseNumber: licenseNumber,
		PasswordHash:  hash,
	}
	if u.Role == "" {
		u.Role = auth.RoleStudent
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]*User, error) {
	return s.repo.List(ctx)
}

// SignatureLine resolves the attestation line for the given clinician.
func (s *Service) SignatureLine(ctx context.Context, id uuid.UUID) (string, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	return u.SignatureLine(), nil
}
