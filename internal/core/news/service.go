package news

import (
	"context"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("article not found")

const RouteNews = "/admin/news"

type Service struct {
	repo     *Repository
	notifier revalidate.Invalidator
}

func NewService(repo *Repository, notifier revalidate.Invalidator) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Article], error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Article, error) {
	article, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, ErrNotFound
	}
	return article, nil
}

func (s *Service) Create(ctx context.Context, req *CreateArticleRequest) (*Article, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.TitleEn, ozzo.Required),
		ozzo.Field(&req.Source, ozzo.Required),
		ozzo.Field(&req.Category, ozzo.Required),
		ozzo.Field(&req.URL, is.URL),
	)); err != nil {
		return nil, err
	}

	article := &Article{
		ID:            uuid.New(),
		TitleEn:       req.TitleEn,
		TitleAr:       req.TitleAr,
		Source:        req.Source,
		Category:      req.Category,
		CategoryLabel: listquery.Label(req.Category),
		URL:           req.URL,
		IsActive:      true,
		PublishedAt:   req.PublishedAt,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteNews)
	return article, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateArticleRequest) (*Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TitleEn != nil {
		article.TitleEn = *req.TitleEn
	}
	if req.TitleAr != nil {
		article.TitleAr = *req.TitleAr
	}
	if req.Source != nil {
		article.Source = *req.Source
	}
	if req.Category != nil {
		article.Category = *req.Category
		article.CategoryLabel = listquery.Label(article.Category)
	}
	if req.URL != nil {
		article.URL = *req.URL
	}
	if req.PublishedAt != nil {
		article.PublishedAt = req.PublishedAt
	}

	if err := validation.FromOzzo(ozzo.ValidateStruct(article,
		ozzo.Field(&article.TitleEn, ozzo.Required),
		ozzo.Field(&article.Source, ozzo.Required),
	)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, article); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteNews)
	return article, nil
}

// ToggleActive flips the published state; it never touches other fields.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (*Article, error) {
	article, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	article.IsActive = !article.IsActive
	if err := s.repo.SetActive(ctx, id, article.IsActive); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteNews)
	return article, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteNews)
	return nil
}
