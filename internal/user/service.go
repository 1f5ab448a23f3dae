package user

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"ptstudio/internal/api"
	"ptstudio/internal/auth"
	"ptstudio/internal/logger"
	"ptstudio/internal/storage"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidImage       = errors.New("file is not a supported image")
	ErrAvatarUnavailable  = errors.New("avatar uploads are not configured")
	ErrInvalidDate        = errors.New("date_of_birth must be YYYY-MM-DD")
)

const avatarMaxSide = 512

// ReferralRecorder links a new client to whoever referred them.
type ReferralRecorder interface {
	RecordSignup(ctx context.Context, referredID int, code string) error
}

type Tokens struct {
	AccessSecret  string
	RefreshSecret string
}

type Service interface {
	Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, req LoginRequest) (*AuthResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error)
	SignOut(ctx context.Context, session auth.Session, refreshToken string) error
	GetProfile(ctx context.Context, userID int) (*Profile, error)
	UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*Profile, error)
	GetClientProfile(ctx context.Context, userID int) (*ClientProfile, error)
	UpdateClientProfile(ctx context.Context, userID int, req UpdateClientProfileRequest) (*ClientProfile, error)
	UploadAvatar(ctx context.Context, userID int, image io.Reader) (*Profile, error)
	ListClients(ctx context.Context, query string, page api.Page) ([]ClientSummary, error)
	GetClientDetail(ctx context.Context, userID int) (*ClientDetail, error)
}

type service struct {
	repo        Repository
	tokens      Tokens
	revocations auth.RevocationStore
	referrals   ReferralRecorder
	store       storage.Store
	now         func() time.Time
}

// NewService builds the account service. store may be nil, which disables
// avatar uploads; revocations may be nil, which makes sign-out a no-op.
func NewService(repo Repository, tokens Tokens, revocations auth.RevocationStore, referrals ReferralRecorder, store storage.Store) Service {
	return &service{
		repo:        repo,
		tokens:      tokens,
		revocations: revocations,
		referrals:   referrals,
		store:       store,
		now:         time.Now,
	}
}

func newReferralCode() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *service) issue(p *Profile) (*AuthResponse, error) {
	pair, err := auth.IssuePair(p.ID, p.Email, p.Role, s.tokens.AccessSecret, s.tokens.RefreshSecret)
	if err != nil {
		return nil, err
	}
	return &AuthResponse{AccessToken: pair.Access, RefreshToken: pair.Refresh, User: *p}, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (*AuthResponse, error) {
	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	p, err := s.repo.Create(ctx, Profile{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: passwordHash,
		FullName:     strings.TrimSpace(req.FullName),
		Phone:        strings.TrimSpace(req.Phone),
		Role:         auth.RoleClient,
		ReferralCode: newReferralCode(),
	})
	if err != nil {
		return nil, err
	}
	logger.Info("client registered", "user_id", p.ID)

	if req.ReferralCode != "" && s.referrals != nil {
		if err := s.referrals.RecordSignup(ctx, p.ID, req.ReferralCode); err != nil {
			logger.Warn("referral code not applied", "user_id", p.ID, "code", req.ReferralCode, "error", err)
		}
	}
	return s.issue(p)
}

func (s *service) Login(ctx context.Context, req LoginRequest) (*AuthResponse, error) {
	p, err := s.repo.FindByEmail(ctx, strings.TrimSpace(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !auth.CheckPassword(p.PasswordHash, req.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issue(p)
}

func (s *service) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if s.revocations == nil {
		return false, nil
	}
	return s.revocations.IsRevoked(ctx, tokenID)
}

// Refresh issues a new access token carrying the user's current role.
func (s *service) Refresh(ctx context.Context, refreshToken string) (*RefreshResponse, error) {
	claims, err := auth.ValidateRefreshToken(refreshToken, s.tokens.RefreshSecret)
	if err != nil {
		return nil, err
	}
	revoked, err := s.isRevoked(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, auth.ErrTokenRevoked
	}

	p, err := s.repo.FindByID(ctx, claims.UserID)
	if err != nil {
		return nil, err
	}
	access, err := auth.GenerateAccessToken(p.ID, p.Email, p.Role, s.tokens.AccessSecret)
	if err != nil {
		return nil, err
	}
	return &RefreshResponse{AccessToken: access, User: *p}, nil
}

// SignOut revokes the access token of session and, when given, the refresh
// token issued alongside it.
func (s *service) SignOut(ctx context.Context, session auth.Session, refreshToken string) error {
	if s.revocations == nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, session.TokenID, session.ExpiresAt); err != nil {
		return err
	}
	if refreshToken == "" {
		return nil
	}

	claims, err := auth.ValidateRefreshToken(refreshToken, s.tokens.RefreshSecret)
	if err != nil || claims.UserID != session.UserID {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.ExpiresAt.Time)
}

func (s *service) GetProfile(ctx context.Context, userID int) (*Profile, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *service) UpdateProfile(ctx context.Context, userID int, req UpdateProfileRequest) (*Profile, error) {
	if req.FullName != nil {
		name := strings.TrimSpace(*req.FullName)
		req.FullName = &name
	}
	if req.Phone != nil {
		phone := strings.TrimSpace(*req.Phone)
		req.Phone = &phone
	}
	return s.repo.UpdateProfile(ctx, userID, req.FullName, req.Phone)
}

func (s *service) GetClientProfile(ctx context.Context, userID int) (*ClientProfile, error) {
	return s.repo.GetClientProfile(ctx, userID)
}

// UpdateClientProfile merges the given fields over the stored profile. An
// empty date_of_birth clears it.
func (s *service) UpdateClientProfile(ctx context.Context, userID int, req UpdateClientProfileRequest) (*ClientProfile, error) {
	cp, err := s.repo.GetClientProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			cp.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil || dob.After(s.now()) {
				return nil, ErrInvalidDate
			}
			cp.DateOfBirth = &dob
		}
	}
	if req.Goals != nil {
		cp.Goals = strings.TrimSpace(*req.Goals)
	}
	if req.Injuries != nil {
		cp.Injuries = strings.TrimSpace(*req.Injuries)
	}
	if req.EmergencyContact != nil {
		cp.EmergencyContact = strings.TrimSpace(*req.EmergencyContact)
	}
	cp.UserID = userID
	return s.repo.UpsertClientProfile(ctx, *cp)
}

func avatarPath(userID int, now time.Time) string {
	return fmt.Sprintf("avatars/%d/%s-%s.jpg", userID, now.Format("20060102"), uuid.NewString())
}

// UploadAvatar re-encodes the image as a JPEG no larger than 512px on either
// side and replaces the previous avatar.
func (s *service) UploadAvatar(ctx context.Context, userID int, image io.Reader) (*Profile, error) {
	if s.store == nil {
		return nil, ErrAvatarUnavailable
	}

	img, err := imaging.Decode(image, imaging.AutoOrientation(true))
	if err != nil {
		return nil, ErrInvalidImage
	}
	img = imaging.Fit(img, avatarMaxSide, avatarMaxSide, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(85)); err != nil {
		return nil, err
	}

	url, err := s.store.Upload(ctx, avatarPath(userID, s.now()), "image/jpeg", buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("upload avatar: %w", err)
	}

	previous, err := s.repo.SetAvatar(ctx, userID, url)
	if err != nil {
		return nil, err
	}
	if previous != "" && previous != url {
		if err := s.store.Delete(ctx, previous); err != nil {
			logger.Warn("failed to delete previous avatar", "user_id", userID, "url", previous, "error", err)
		}
	}
	logger.Info("avatar updated", "user_id", userID)
	return s.repo.FindByID(ctx, userID)
}

func (s *service) ListClients(ctx context.Context, query string, page api.Page) ([]ClientSummary, error) {
	return s.repo.ListClients(ctx, strings.TrimSpace(query), page)
}

func (s *service) GetClientDetail(ctx context.Context, userID int) (*ClientDetail, error) {
	p, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	cp, err := s.repo.GetClientProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.repo.GetBalance(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &ClientDetail{Profile: *p, ClientProfile: *cp, Balance: balance}, nil
}
