// Package stats aggregates the dashboard overview counters. Each widget is a
// single COUNT against one of the two stores; the widgets have no ordering
// dependency so they are fetched concurrently.
package stats

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

type Overview struct {
	TotalUsers          int `json:"totalUsers"`
	NewUsersLast7Days   int `json:"newUsersLast7Days"`
	PostsToday          int `json:"postsToday"`
	UnreadNotifications int `json:"unreadNotifications"`
	OpenBugReports      int `json:"openBugReports"`
}

type Service struct {
	accounts *postgres.Client
	content  *postgres.Client
}

func NewService(accounts, content *postgres.Client) *Service {
	return &Service{accounts: accounts, content: content}
}

func (s *Service) Overview(ctx context.Context) (*Overview, error) {
	o := &Overview{}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(s.count(ctx, s.accounts,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`, &o.TotalUsers))
	g.Go(s.count(ctx, s.accounts,
		`SELECT COUNT(*) FROM users WHERE deleted_at IS NULL AND created_at >= NOW() - INTERVAL '7 days'`, &o.NewUsersLast7Days))
	g.Go(s.count(ctx, s.content,
		`SELECT COUNT(*) FROM posts WHERE created_at >= date_trunc('day', NOW())`, &o.PostsToday))
	g.Go(s.count(ctx, s.content,
		`SELECT COUNT(*) FROM notifications WHERE is_read = false`, &o.UnreadNotifications))
	g.Go(s.count(ctx, s.content,
		`SELECT COUNT(*) FROM bug_reports WHERE status = 'open'`, &o.OpenBugReports))

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *Service) count(ctx context.Context, db *postgres.Client, query string, dst *int) func() error {
	return func() error {
		return db.DB.QueryRowContext(ctx, query).Scan(dst)
	}
}
