package stats

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestOverview(t *testing.T) {
	accountsDB, accountsMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer accountsDB.Close()
	contentDB, contentMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer contentDB.Close()

	accountsMock.MatchExpectationsInOrder(false)
	contentMock.MatchExpectationsInOrder(false)

	accountsMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE deleted_at IS NULL$").
		WillReturnRows(countRows(1200))
	accountsMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE deleted_at IS NULL AND created_at >=").
		WillReturnRows(countRows(37))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").
		WillReturnRows(countRows(85))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notifications").
		WillReturnRows(countRows(410))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bug_reports").
		WillReturnRows(countRows(6))

	svc := NewService(&postgres.Client{DB: accountsDB}, &postgres.Client{DB: contentDB})
	o, err := svc.Overview(context.Background())
	if err != nil {
		t.Fatalf("Overview error: %v", err)
	}

	if o.TotalUsers != 1200 {
		t.Errorf("totalUsers = %d, want 1200", o.TotalUsers)
	}
	if o.NewUsersLast7Days != 37 {
		t.Errorf("newUsersLast7Days = %d, want 37", o.NewUsersLast7Days)
	}
	if o.PostsToday != 85 {
		t.Errorf("postsToday = %d, want 85", o.PostsToday)
	}
	if o.UnreadNotifications != 410 {
		t.Errorf("unreadNotifications = %d, want 410", o.UnreadNotifications)
	}
	if o.OpenBugReports != 6 {
		t.Errorf("openBugReports = %d, want 6", o.OpenBugReports)
	}
}

func TestOverview_PropagatesFailure(t *testing.T) {
	accountsDB, accountsMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer accountsDB.Close()
	contentDB, contentMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer contentDB.Close()

	accountsMock.MatchExpectationsInOrder(false)
	contentMock.MatchExpectationsInOrder(false)

	boom := errors.New("connection refused")
	accountsMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE deleted_at IS NULL$").
		WillReturnRows(countRows(1))
	accountsMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM users WHERE deleted_at IS NULL AND created_at >=").
		WillReturnError(boom)
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").WillReturnRows(countRows(0))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM notifications").WillReturnRows(countRows(0))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bug_reports").WillReturnRows(countRows(0))

	svc := NewService(&postgres.Client{DB: accountsDB}, &postgres.Client{DB: contentDB})
	if _, err := svc.Overview(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
}
