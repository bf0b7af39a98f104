package notifications

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/community"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/enrich"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("notification not found")

const RouteNotifications = "/admin/notifications"

type Service struct {
	repo       *Repository
	notifier   revalidate.Invalidator
	recipients enrich.Resolver[uuid.UUID, community.UserRef]
}

func NewService(repo *Repository, users *community.UserRepository, notifier revalidate.Invalidator) *Service {
	return &Service{
		repo:     repo,
		notifier: notifier,
		recipients: enrich.Resolver[uuid.UUID, community.UserRef]{
			Fetch:       users.GetRefsByIDs,
			Key:         func(ref community.UserRef) uuid.UUID { return ref.ID },
			Placeholder: community.UnknownUser,
		},
	}
}

func (s *Service) List(ctx context.Context, p listquery.Params) (listquery.Page[*Notification], error) {
	page, err := s.repo.List(ctx, p)
	if err != nil {
		return page, err
	}

	ids := make([]uuid.UUID, len(page.Data))
	for i, n := range page.Data {
		ids[i] = n.RecipientID
	}

	resolved, err := s.recipients.ResolveMany(ctx, ids)
	if err != nil {
		return page, err
	}
	for _, n := range page.Data {
		n.Recipient = s.recipients.Lookup(resolved, n.RecipientID)
	}

	return page, nil
}

// ToggleRead flips the read flag; identical input is idempotent at the
// storage level.
func (s *Service) ToggleRead(ctx context.Context, id uuid.UUID) (*Notification, error) {
	n, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, ErrNotFound
	}

	n.IsRead = !n.IsRead
	if err := s.repo.SetRead(ctx, id, n.IsRead); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteNotifications)
	return n, nil
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteNotifications)
	return nil
}
