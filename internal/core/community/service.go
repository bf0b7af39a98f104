package community

import (
	"context"
	"errors"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/enrich"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
)

var ErrNotFound = errors.New("not found")

// Listing routes invalidated after mutations.
const (
	RouteUsers    = "/admin/community/users"
	RoutePosts    = "/admin/community/posts"
	RouteComments = "/admin/community/comments"
)

type Service struct {
	users    *UserRepository
	content  *ContentRepository
	notifier revalidate.Invalidator
	authors  enrich.Resolver[uuid.UUID, UserRef]
}

func NewService(users *UserRepository, content *ContentRepository, notifier revalidate.Invalidator) *Service {
	s := &Service{users: users, content: content, notifier: notifier}
	s.authors = enrich.Resolver[uuid.UUID, UserRef]{
		Fetch:       users.GetRefsByIDs,
		Key:         func(ref UserRef) uuid.UUID { return ref.ID },
		Placeholder: UnknownUser,
	}
	return s
}

func (s *Service) ListUsers(ctx context.Context, p listquery.Params) (listquery.Page[*User], error) {
	return s.users.List(ctx, p)
}

func (s *Service) GetUser(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *Service) UpdateUser(ctx context.Context, id uuid.UUID, req *UpdateUserRequest) (*User, error) {
	if err := validation.FromOzzo(ozzo.ValidateStruct(req,
		ozzo.Field(&req.Status, ozzo.When(req.Status != nil, ozzo.In(StatusActive, StatusSuspended))),
	)); err != nil {
		return nil, err
	}

	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.DisplayName != nil {
		user.DisplayName = *req.DisplayName
	}
	if req.Status != nil {
		user.Status = *req.Status
		user.StatusLabel = listquery.Label(user.Status)
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteUsers)
	return user, nil
}

// ToggleSuspend flips a user between active and suspended.
func (s *Service) ToggleSuspend(ctx context.Context, id uuid.UUID) (*User, error) {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if user.Status == StatusSuspended {
		user.Status = StatusActive
	} else {
		user.Status = StatusSuspended
	}
	user.StatusLabel = listquery.Label(user.Status)

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	s.notifier.Invalidate(RouteUsers)
	return user, nil
}

func (s *Service) DeleteUser(ctx context.Context, id uuid.UUID) error {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}

	if err := s.users.SoftDelete(ctx, id); err != nil {
		return err
	}

	s.notifier.Invalidate(RouteUsers)
	return nil
}

func (s *Service) ListPosts(ctx context.Context, p listquery.Params) (listquery.Page[*Post], error) {
	page, err := s.content.ListPosts(ctx, p)
	if err != nil {
		return page, err
	}

	ids := make([]uuid.UUID, len(page.Data))
	for i, post := range page.Data {
		ids[i] = post.AuthorID
	}

	resolved, err := s.authors.ResolveMany(ctx, ids)
	if err != nil {
		return page, err
	}
	for _, post := range page.Data {
		post.Author = s.authors.Lookup(resolved, post.AuthorID)
	}

	return page, nil
}

func (s *Service) DeletePost(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.content.DeletePost(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RoutePosts)
	return nil
}

func (s *Service) ListComments(ctx context.Context, p listquery.Params) (listquery.Page[*Comment], error) {
	page, err := s.content.ListComments(ctx, p)
	if err != nil {
		return page, err
	}

	ids := make([]uuid.UUID, len(page.Data))
	for i, comment := range page.Data {
		ids[i] = comment.AuthorID
	}

	resolved, err := s.authors.ResolveMany(ctx, ids)
	if err != nil {
		return page, err
	}
	for _, comment := range page.Data {
		comment.Author = s.authors.Lookup(resolved, comment.AuthorID)
	}

	return page, nil
}

func (s *Service) DeleteComment(ctx context.Context, id uuid.UUID) error {
	deleted, err := s.content.DeleteComment(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	s.notifier.Invalidate(RouteComments)
	return nil
}
