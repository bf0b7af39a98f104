package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/enrich"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("report not found")

const (
	RouteBugReports  = "/admin/reports/bugs"
	RoutePostReports = "/admin/reports/posts"
)

type Service struct {
	repo      *Repository
	notifier  revalidate.Invalidator
	reporters enrich.Resolver[uuid.UUID, community.UserRef]
}

func NewService(repo *Repository, users *community.UserRepository, notifier revalidate.Invalidator) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		reporters: enrich.Resolver[uuid.UUID, community.UserRef]{
			Fetch:       users.GetRefsByIDs,
			Key:         func(ref community.UserRef) uuid.UUID { return ref.ID },
			Placeholder: community.UnknownUser,
		},
	}
}

func (s *Service) ListBugReports(ctx context.Context, p listquery.Params) (listquery.Page[*BugReport], error) {
	page, err := s.repo.ListBugReports(ctx, p)
	if err != nil {
		return page, err
	}

	ids := make([]uuid.UUID, len(page.Data))
	for i, b := range page.Data {
		ids[i] = b.ReporterID
	}

	resolved, err := s.reporters.ResolveMany(ctx, ids)
	if err != nil {
		return page, err
	}
	for _, b := range page.Data {
		b.Reporter = s.reporters.Lookup(resolved, b.ReporterID)
	}

	return page, nil
}

func (s *Service) ListPostReports(ctx context.Context, p listquery.Params) (listquery.Page[*PostReport], error) {
	page, err := s.repo.ListPostReports(ctx, p)
	if err != nil {
		return page, err
	}

	ids := make([]uuid.UUID, len(page.Data))
	for i, r := range page.Data {
		ids[i] = r.ReporterID
	}

	resolved, err := s.reporters.ResolveMany(ctx, ids)
	if err != nil {
		return page, err
	}
	for _, r := range page.Data {
		r.Reporter = s.reporters.Lookup(resolved, r.ReporterID)
	}

	return page, nil
}

// UpdateBugReportStatus moves a bug report along the open -> triaged ->
// resolved path. Backwards moves are rejected.
func (s *Service) UpdateBugReportStatus(ctx context.Context, id uuid.UUID, req *UpdateStatusRequest) (*BugReport, error) {
	if err := validateStatus(req.Status); err != nil {
		return nil, err
	}

	b, err := s.repo.GetBugReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, ErrNotFound
	}

	if !canTransition(b.Status, req.Status) {
		return nil, transitionError(b.Status, req.Status)
	}

	if err := s.repo.SetBugReportStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	b.Status = req.Status
	b.StatusLabel = listquery.Label(req.Status)

	s.notifier.Invalidate(RouteBugReports)
	return b, nil
}

func (s *Service) UpdatePostReportStatus(ctx context.Context, id uuid.UUID, req *UpdateStatusRequest) (*PostReport, error) {
	if err := validateStatus(req.Status); err != nil {
		return nil, err
	}

	r, err := s.repo.GetPostReport(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}

	if !canTransition(r.Status, req.Status) {
		return nil, transitionError(r.Status, req.Status)
	}

	if err := s.repo.SetPostReportStatus(ctx, id, req.Status); err != nil {
		return nil, err
	}
	r.Status = req.Status
	r.StatusLabel = listquery.Label(req.Status)

	s.notifier.Invalidate(RoutePostReports)
	return r, nil
}

func (s *Service) DeleteBugReport(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.DeleteBugReport(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteBugReports)
	return nil
}

func (s *Service) DeletePostReport(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.DeletePostReport(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RoutePostReports)
	return nil
}

func validateStatus(status string) error {
	switch status {
	case StatusOpen, StatusTriaged, StatusResolved:
		return nil
	}
	return &validation.ValidationErrors{Errors: []validation.FieldError{
		{Field: "status", Message: "must be one of open, triaged, resolved"},
	}}
}

func transitionError(from, to string) error {
	return &validation.ValidationErrors{Errors: []validation.FieldError{
		{Field: "status", Message: fmt.Sprintf("cannot move from %s to %s", from, to)},
	}}
}
