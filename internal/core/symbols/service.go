package symbols

import (
	"context"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var (
	ErrNotFound      = errors.New("symbol not found")
	ErrAlreadyExists = errors.New("symbol with this ticker already exists")
)

const RouteSymbols = "/admin/symbols"

type Service struct {
	repo     *Repository
	notifier revalidate.Invalidator
}

func NewService(repo *Repository, notifier revalidate.Invalidator) *Service {
	return &Service{repo: repo, notifier: notifier}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Symbol], error) {
	return s.repo.List(ctx, p)
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Symbol, error) {
	symbol, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if symbol == nil {
		return nil, ErrNotFound
	}
	return symbol, nil
}

func (s *Service) Create(ctx context.Context, req *CreateSymbolRequest) (*Symbol, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Ticker, ozzo.Required, ozzo.Length(1, 12)),
		ozzo.Field(&req.Name, ozzo.Required),
		ozzo.Field(&req.Exchange, ozzo.Required),
	)); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByTicker(ctx, req.Ticker)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyExists
	}

	symbol := &Symbol{
		ID:       uuid.New(),
		Ticker:   req.Ticker,
		Name:     req.Name,
		Exchange: req.Exchange,
		IsActive: true,
	}

	if err := s.repo.Create(ctx, symbol); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteSymbols)
	return symbol, nil
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, req *UpdateSymbolRequest) (*Symbol, error) {
	symbol, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		symbol.Name = *req.Name
	}
	if req.Exchange != nil {
		symbol.Exchange = *req.Exchange
	}

	if err := validation.FromOzzo(ozzo.ValidateStruct(symbol,
		ozzo.Field(&symbol.Name, ozzo.Required),
		ozzo.Field(&symbol.Exchange, ozzo.Required),
	)); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, symbol); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteSymbols)
	return symbol, nil
}

func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (*Symbol, error) {
	symbol, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	symbol.IsActive = !symbol.IsActive
	if err := s.repo.SetActive(ctx, id, symbol.IsActive); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteSymbols)
	return symbol, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteSymbols)
	return nil
}
