package providers

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("provider key not found")

const RouteProviderKeys = "/admin/providers/keys"

type Service struct {
	repo     *Repository
	notifier revalidate.Invalidator
}

func NewService(repo *Repository, notifier revalidate.Invalidator) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Key], error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Create(ctx context.Context, req *CreateKeyRequest) (*CreateKeyResponse, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Provider, ozzo.Required),
		ozzo.Field(&req.Name, ozzo.Required),
	)); err != nil {
		return nil, err
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	rawKey := "tlk_" + hex.EncodeToString(raw)

	hash := sha256.Sum256([]byte(rawKey))

	key := &Key{
		ID:       uuid.New(),
		Provider: req.Provider,
		Name:     req.Name,
		KeyHash:  hex.EncodeToString(hash[:]),
	}

	if err := s.repo.Create(ctx, key); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteProviderKeys)
	return &CreateKeyResponse{Key: key, RawKey: rawKey}, nil
}

func (s *Service) Revoke(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteProviderKeys)
	return nil
}
