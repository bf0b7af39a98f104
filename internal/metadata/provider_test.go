package metadata

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAllowedValues_CachedAfterFirstFetch(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT e.enumlabel").
		WithArgs("bug_reports", "status").
		WillReturnRows(sqlmock.NewRows([]string{"enumlabel"}).
			AddRow("open").AddRow("triaged").AddRow("resolved"))

	p := NewProvider(db)
	ctx := context.Background()

	first, err := p.AllowedValues(ctx, "bug_reports", "status")
	if err != nil {
		t.Fatalf("AllowedValues error: %v", err)
	}
	if len(first) != 3 || first[0] != "open" {
		t.Fatalf("unexpected values %v", first)
	}

	// Second call must be served from cache; no second query is expected.
	second, err := p.AllowedValues(ctx, "bug_reports", "status")
	if err != nil {
		t.Fatalf("cached AllowedValues error: %v", err)
	}
	if len(second) != 3 {
		t.Fatalf("unexpected cached values %v", second)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAllowedValues_NonEnumColumnEmpty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("SELECT e.enumlabel").
		WithArgs("news_articles", "title_en").
		WillReturnRows(sqlmock.NewRows([]string{"enumlabel"}))

	p := NewProvider(db)
	values, err := p.AllowedValues(context.Background(), "news_articles", "title_en")
	if err != nil {
		t.Fatalf("AllowedValues error: %v", err)
	}
	if values == nil || len(values) != 0 {
		t.Fatalf("expected empty non-nil list, got %v", values)
	}
}
