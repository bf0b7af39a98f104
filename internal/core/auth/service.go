package auth

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/config"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAdminExists        = errors.New("admin with this email already exists")
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
)

type Service struct {
	repo   *Repository
	config *config.JWTConfig
}

func NewService(repo *Repository, cfg *config.JWTConfig) *Service {
	return &Service{repo: repo, config: cfg}
}

type JWTClaims struct {
	AdminID uuid.UUID `json:"admin_id"`
	Email   string    `json:"email"`
	Role    string    `json:"role"`
	jwt.RegisteredClaims
}

func (s *Service) Login(ctx context.Context, req *LoginRequest) (*AuthResponse, error) {
	admin, err := s.repo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if admin == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(admin)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{Token: token, Admin: admin}, nil
}

// CreateAdmin provisions a dashboard operator account. Used by the bootstrap
// command only; the dashboard has no self-registration.
func (s *Service) CreateAdmin(ctx context.Context, email, password, name, role string) (*Admin, error) {
	existing, err := s.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAdminExists
	}

	if _, ok := RolePermissions[role]; !ok {
		return nil, fmt.Errorf("unknown role %q", role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	admin := &Admin{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := s.repo.CreateAdmin(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *Service) GetAdminByID(ctx context.Context, id uuid.UUID) (*Admin, error) {
	return s.repo.GetAdminByID(ctx, id)
}

func (s *Service) generateToken(admin *Admin) (string, error) {
	claims := JWTClaims{
		AdminID: admin.ID,
		Email:   admin.Email,
		Role:    admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.ExpirationDuration())),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.config.Secret))
}

func (s *Service) ValidateToken(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, ErrUnauthorized
}

// RecordAudit writes one audit entry per dashboard mutation. Failures are
// logged, not surfaced; the mutation itself already succeeded.
func (s *Service) RecordAudit(ctx context.Context, adminID uuid.UUID, entityType, entityID, action string, ip, userAgent *string) {
	entry := &AuditLog{
		ID:         uuid.New(),
		AdminID:    adminID,
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		IPAddress:  ip,
		UserAgent:  userAgent,
	}
	if err := s.repo.CreateAuditLog(ctx, entry); err != nil {
		log.Printf("audit log write failed: %v", err)
	}
}

func (s *Service) ListAuditLogs(ctx context.Context, p listquery.Params) (listquery.Page[*AuditLog], error) {
	return s.repo.ListAuditLogs(ctx, p)
}
