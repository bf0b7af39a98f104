package community

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/listquery"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

// Posts come from the content store, authors from the accounts store. A post
// whose author has vanished from accounts still renders, with the placeholder
// author attached.
func TestListPosts_StitchesAuthorsAcrossStores(t *testing.T) {
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

	knownAuthor := uuid.New()
	goneAuthor := uuid.New()
	now := time.Now()

	contentMock.ExpectQuery("SELECT id, author_id, title, body, symbol, likes, created_at FROM posts").
		WillReturnRows(sqlmock.NewRows([]string{"id", "author_id", "title", "body", "symbol", "likes", "created_at"}).
			AddRow(uuid.New(), knownAuthor, "AAPL to the moon", "earnings look strong", "AAPL", 12, now).
			AddRow(uuid.New(), goneAuthor, "TSLA dip", "buying opportunity?", "TSLA", 3, now).
			AddRow(uuid.New(), knownAuthor, "Cash is a position", "sitting this one out", "SPY", 0, now))
	contentMock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM posts").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	// Two distinct author ids; the accounts store only knows one of them.
	accountsMock.ExpectQuery("SELECT id, username, display_name FROM users WHERE id = ANY\\(\\$1\\)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "username", "display_name"}).
			AddRow(knownAuthor, "trader_joe", "Joe"))

	svc := NewService(
		NewUserRepository(&postgres.Client{DB: accountsDB}),
		NewContentRepository(&postgres.Client{DB: contentDB}),
		revalidate.NewNotifier(),
	)

	page, err := svc.ListPosts(context.Background(), listquery.Params{Page: 1, PageSize: 10})
	if err != nil {
		t.Fatalf("ListPosts error: %v", err)
	}

	if len(page.Data) != 3 {
		t.Fatalf("data length = %d, want 3", len(page.Data))
	}

	if page.Data[0].Author.Username != "trader_joe" {
		t.Errorf("first post author = %q, want trader_joe", page.Data[0].Author.Username)
	}
	if page.Data[1].Author.Username != "Unknown User" {
		t.Errorf("gone author should resolve to placeholder, got %q", page.Data[1].Author.Username)
	}
	if page.Data[1].Author.ID != goneAuthor {
		t.Error("placeholder should keep the original author id")
	}
	if page.Data[2].Author.Username != "trader_joe" {
		t.Errorf("third post author = %q, want trader_joe", page.Data[2].Author.Username)
	}

	if err := accountsMock.ExpectationsWereMet(); err != nil {
		t.Fatalf("accounts store should be hit exactly once: %v", err)
	}
}

func TestDeletePost_MissingRowIsNotFound(t *testing.T) {
	contentDB, contentMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer contentDB.Close()

	contentMock.ExpectExec("DELETE FROM posts WHERE id = \\$1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	notifier := revalidate.NewNotifier()
	var invalidated []string
	notifier.Subscribe(func(route string) { invalidated = append(invalidated, route) })

	svc := NewService(nil, NewContentRepository(&postgres.Client{DB: contentDB}), notifier)

	if err := svc.DeletePost(context.Background(), uuid.New()); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if len(invalidated) != 0 {
		t.Errorf("failed delete must not invalidate, got %v", invalidated)
	}
}
