package announcements

import (
	"context"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("announcement not found")

const RouteAnnouncements = "/admin/announcements"

type Service struct {
	repo     *Repository
	notifier revalidate.Invalidator
}

func NewService(repo *Repository, notifier revalidate.Invalidator) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Announcement], error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

// Create validates before any write; a missing title_en never reaches the
// store.
func (s *Service) Create(ctx context.Context, req *CreateAnnouncementRequest) (*Announcement, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.TitleEn, ozzo.Required, ozzo.Length(1, 200)),
		ozzo.Field(&req.TitleAr, ozzo.Length(0, 200)),
	)); err != nil {
		return nil, err
	}

	a := &Announcement{
		ID:       uuid.New(),
		TitleEn:  req.TitleEn,
		TitleAr:  req.TitleAr,
		BodyEn:   req.BodyEn,
		BodyAr:   req.BodyAr,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAnnouncements)
	return a, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateAnnouncementRequest) (*Announcement, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TitleEn != nil {
		a.TitleEn = *req.TitleEn
	}
	if req.TitleAr != nil {
		a.TitleAr = *req.TitleAr
	}
	if req.BodyEn != nil {
		a.BodyEn = *req.BodyEn
	}
	if req.BodyAr != nil {
		a.BodyAr = *req.BodyAr
	}

	if err := validation.FromOzzo(ozzo.ValidateStruct(a,
		ozzo.Field(&a.TitleEn, ozzo.Required, ozzo.Length(1, 200)),
	)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, a); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAnnouncements)
	return a, nil
}

func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (*Announcement, error) {
	a, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	a.IsActive = !a.IsActive
	if err := s.repo.SetActive(ctx, id, a.IsActive); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteAnnouncements)
	return a, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteAnnouncements)
	return nil
}
