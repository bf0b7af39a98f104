package ads

import (
	"context"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("ad not found")

const RouteAds = "/admin/ads"

type Service struct {
	repo     *Repository
	notifier revalidate.Invalidator
}

func NewService(repo *Repository, notifier revalidate.Invalidator) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Ad], error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Ad, error) {
	ad, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ad == nil {
		return nil, ErrNotFound
	}
	return ad, nil
}

func (s *Service) Create(ctx context.Context, req *CreateAdRequest) (*Ad, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Placement, ozzo.Required, ozzo.In(PlacementFeedBanner, PlacementWatchlist, PlacementInterstitial)),
		ozzo.Field(&req.Name, ozzo.Required),
		ozzo.Field(&req.Creative, ozzo.Required),
	)); err != nil {
		return nil, err
	}

	if err := validateCreative(req.Placement, req.Creative); err != nil {
		return nil, err
	}

	ad := &Ad{
		ID:             uuid.New(),
		Placement:      req.Placement,
		PlacementLabel: listquery.Label(req.Placement),
		Name:           req.Name,
		Creative:       req.Creative,
		StartsAt:       req.StartsAt,
		EndsAt:         req.EndsAt,
		IsActive:       true,
	}

	if err := s.repo.Create(ctx, ad); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAds)
	return ad, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateAdRequest) (*Ad, error) {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		ad.Name = *req.Name
	}
	if req.Creative != nil {
		if err := validateCreative(ad.Placement, req.Creative); err != nil {
			return nil, err
		}
		ad.Creative = req.Creative
	}
	if req.StartsAt != nil {
		ad.StartsAt = req.StartsAt
	}
	if req.EndsAt != nil {
		ad.EndsAt = req.EndsAt
	}

	if err := s.repo.Update(ctx, ad); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAds)
	return ad, nil
}

func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (*Ad, error) {
	ad, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	ad.IsActive = !ad.IsActive
	if err := s.repo.SetActive(ctx, id, ad.IsActive); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAds)
	return ad, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteAds)
	return nil
}
