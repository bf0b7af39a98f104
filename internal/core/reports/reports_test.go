package reports

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

// A malformed reporter id filter still reaches the database, bound to the nil
// UUID, and simply matches nothing.
func TestListBugReports_MalformedReporterID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT id, reporter_id, title, description, app_version, platform, status, created_at, updated_at FROM bug_reports WHERE reporter_id = \\$1").
		WithArgs(uuid.Nil, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "reporter_id", "title", "description", "app_version", "platform", "status", "created_at", "updated_at"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bug_reports WHERE reporter_id = \\$1").
		WithArgs(uuid.Nil).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	repo := NewRepository(&postgres.Client{DB: db})
	page, err := repo.ListBugReports(context.Background(), listquery.Params{
		Page:     1,
		PageSize: 10,
		Filters:  map[string][]string{"reporter_id": {"not-a-uuid"}},
	})
	if err != nil {
		t.Fatalf("ListBugReports error: %v", err)
	}

	if page.TotalCount != 0 {
		t.Errorf("totalCount = %d, want 0", page.TotalCount)
	}
	if len(page.Data) != 0 {
		t.Errorf("data length = %d, want 0", len(page.Data))
	}
	if page.Data == nil {
		t.Error("data should be an empty slice, not nil")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to string
		want     bool
	}{
		{StatusOpen, StatusTriaged, true},
		{StatusOpen, StatusResolved, true},
		{StatusTriaged, StatusResolved, true},
		{StatusTriaged, StatusOpen, false},
		{StatusResolved, StatusOpen, false},
		{StatusResolved, StatusTriaged, false},
		{StatusOpen, StatusOpen, false},
	}

	for _, tc := range cases {
		if got := canTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("canTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestValidateStatus(t *testing.T) {
	if err := validateStatus(StatusTriaged); err != nil {
		t.Errorf("triaged should be valid, got %v", err)
	}
	if err := validateStatus("escalated"); err == nil {
		t.Error("unknown status should be rejected")
	}
}
