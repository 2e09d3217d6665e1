package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"
	"github.com/mssola/useragent"
	"go.opentelemetry.io/otel"

	"campusconnect/internal/audit"
	"campusconnect/internal/auth/models"
	"campusconnect/internal/auth/secrets"
	jwttoken "campusconnect/internal/jwt_token"
	"campusconnect/internal/platform/metrics"
	dErrors "campusconnect/pkg/domain-errors"
	"campusconnect/pkg/platform/sentinel"
)

var tracer = otel.Tracer("campusconnect/internal/auth")

type UserStore interface {
	Save(ctx context.Context, cred *models.Credential) error
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)
	FindByID(ctx context.Context, id string) (*models.Credential, error)
	UpdateUser(ctx context.Context, user models.User) error
}

type SessionStore interface {
	Save(ctx context.Context, sess *models.Session) error
	FindByID(ctx context.Context, id string) (*models.Session, error)
	Delete(ctx context.Context, id string) error
}

// Service is the authentication façade: registration, login, logout, and the
// session-derived current user. It owns the only code path that ever sees
// credential secrets.
type Service struct {
	users    UserStore
	sessions SessionStore
	tokens   *jwttoken.JWTService
	metrics  *metrics.Metrics
	auditor  *audit.Publisher
	tokenTTL time.Duration
}

func New(
	users UserStore,
	sessions SessionStore,
	tokens *jwttoken.JWTService,
	m *metrics.Metrics,
	auditor *audit.Publisher,
	tokenTTL time.Duration,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		metrics:  m,
		auditor:  auditor,
		tokenTTL: tokenTTL,
	}
}

// Register creates a new account, opens a session, and returns the user
// snapshot (never the secret) plus an access token.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest, userAgent string) (*models.AuthResult, error) {
	ctx, span := tracer.Start(ctx, "auth.Register")
	defer span.End()

	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Duplicate check happens before the (expensive) hash; the store enforces
	// uniqueness again on save.
	if _, err := s.users.FindByEmail(ctx, req.Email); err == nil {
		return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check existing email: %w", err)
	}

	hash, err := secrets.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	avatar := placeholderAvatar()
	user := models.User{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Avatar:     avatar,
		Role:       req.Role,
		College:    req.College,
		Department: req.Department,
		Year:       req.Year,
	}

	if err := s.users.Save(ctx, &models.Credential{User: user, SecretHash: hash}); err != nil {
		if errors.Is(err, sentinel.ErrConflict) {
			return nil, dErrors.New(dErrors.CodeConflict, "email already registered")
		}
		return nil, fmt.Errorf("save credential: %w", err)
	}

	result, err := s.openSession(ctx, user, userAgent)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.UsersRegistered.Inc()
	}
	s.emit(ctx, audit.Event{UserID: user.ID, Action: audit.ActionUserRegistered, Subject: user.Email})
	return result, nil
}

// Login validates credentials and opens a session. Unknown emails and wrong
// passwords fail identically so callers cannot probe for accounts.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest, userAgent string) (*models.AuthResult, error) {
	ctx, span := tracer.Start(ctx, "auth.Login")
	defer span.End()

	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	invalid := dErrors.New(dErrors.CodeUnauthorized, "invalid credentials")

	cred, err := s.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, sentinel.ErrNotFound) {
		s.countLoginFailure()
		return nil, invalid
	}
	if err != nil {
		return nil, fmt.Errorf("find credential: %w", err)
	}

	if err := secrets.Verify(req.Password, cred.SecretHash); err != nil {
		s.countLoginFailure()
		return nil, invalid
	}

	result, err := s.openSession(ctx, cred.User, userAgent)
	if err != nil {
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Logins.Inc()
	}
	s.emit(ctx, audit.Event{UserID: cred.User.ID, Action: audit.ActionUserLogin, Subject: cred.User.Email})
	return result, nil
}

// Logout removes the session and its persisted snapshot.
func (s *Service) Logout(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		// Already gone; logout is idempotent.
		return nil
	}
	if err != nil {
		return fmt.Errorf("find session: %w", err)
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.emit(ctx, audit.Event{UserID: sess.UserID, Action: audit.ActionUserLogout})
	return nil
}

// CurrentUser returns the session's user snapshot. A missing session (for
// example after logout) reads as unauthenticated even when the token itself
// is still valid.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) (*models.User, error) {
	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}
	user := sess.User
	return &user, nil
}

// UpdateProfile changes the mutable display fields and refreshes the session
// snapshot so the persisted copy stays equal to the directory record.
func (s *Service) UpdateProfile(ctx context.Context, sessionID string, req *models.UpdateProfileRequest) (*models.User, error) {
	if req == nil {
		return nil, dErrors.New(dErrors.CodeBadRequest, "request is required")
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	sess, err := s.sessions.FindByID(ctx, sessionID)
	if errors.Is(err, sentinel.ErrNotFound) {
		return nil, dErrors.New(dErrors.CodeUnauthorized, "session expired")
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	user := sess.User
	user.Name = req.Name
	user.College = req.College
	user.Department = req.Department
	user.Year = req.Year
	if req.Avatar != "" {
		user.Avatar = req.Avatar
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "user not found")
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	sess.User = user
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("refresh session snapshot: %w", err)
	}

	s.emit(ctx, audit.Event{UserID: user.ID, Action: audit.ActionProfileUpdated})
	return &user, nil
}

func (s *Service) openSession(ctx context.Context, user models.User, userAgent string) (*models.AuthResult, error) {
	sess := &models.Session{
		ID:                uuid.NewString(),
		UserID:            user.ID,
		User:              user,
		DeviceDisplayName: deviceDisplayName(userAgent),
		CreatedAt:         time.Now(),
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return nil, fmt.Errorf("save session: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.ID, sess.ID, s.tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("generate access token: %w", err)
	}
	return &models.AuthResult{User: user, Token: token}, nil
}

func (s *Service) countLoginFailure() {
	if s.metrics != nil {
		s.metrics.LoginFailures.Inc()
	}
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor == nil {
		return
	}
	_ = s.auditor.Emit(ctx, event)
}

// deviceDisplayName turns a User-Agent header into a short human-readable
// label stored on the session, e.g. "Firefox on Linux x86_64".
func deviceDisplayName(userAgent string) string {
	if userAgent == "" {
		return ""
	}
	ua := useragent.New(userAgent)
	browser, _ := ua.Browser()
	if browser == "" {
		return ""
	}
	if os := ua.OS(); os != "" {
		return browser + " on " + os
	}
	return browser
}

func placeholderAvatar() string {
	return fmt.Sprintf("https://images.pexels.com/photos/%d/pexels-photo.jpeg?auto=compress&cs=tinysrgb&w=150", rand.IntN(1000000))
}
