package listquery

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

type symbolRow struct {
	ID     string
	Ticker string
}

func scanSymbol(rows *sql.Rows) (symbolRow, error) {
	var r symbolRow
	err := rows.Scan(&r.ID, &r.Ticker)
	return r, err
}

func TestExecute_SecondPageOfTwentyFive(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	rows := sqlmock.NewRows([]string{"id", "ticker"})
	for i := 10; i < 20; i++ {
		rows.AddRow(fmt.Sprintf("id-%d", i), fmt.Sprintf("TCK%d", i))
	}

	mock.ExpectQuery("SELECT id, ticker FROM symbols ORDER BY created_at DESC LIMIT \\$1 OFFSET \\$2").
		WithArgs(10, 10).
		WillReturnRows(rows)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM symbols").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(25))

	q := Query{Table: "symbols", Columns: []string{"id", "ticker"}}
	spec := Spec{
		Sort:     Sort{Column: "created_at", Direction: "DESC"},
		Page:     2,
		PageSize: 10,
	}

	page, err := Execute(context.Background(), db, q, spec, scanSymbol)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	if len(page.Data) != 10 {
		t.Errorf("data length = %d, want 10", len(page.Data))
	}
	if page.TotalCount != 25 {
		t.Errorf("totalCount = %d, want 25", page.TotalCount)
	}
	if page.PageCount != 3 {
		t.Errorf("pageCount = %d, want 3", page.PageCount)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestExecute_EmptyResultKeepsDataNonNil(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	mock.ExpectQuery("SELECT id, ticker FROM symbols").
		WillReturnRows(sqlmock.NewRows([]string{"id", "ticker"}))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM symbols").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	q := Query{Table: "symbols", Columns: []string{"id", "ticker"}}
	spec := Spec{Sort: Sort{Column: "id", Direction: "ASC"}, Page: 1, PageSize: 10}

	page, err := Execute(context.Background(), db, q, spec, scanSymbol)
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if page.Data == nil {
		t.Fatal("data should be an empty slice, not nil")
	}
	if page.TotalCount != 0 || page.PageCount != 0 {
		t.Errorf("empty table: totalCount=%d pageCount=%d, want 0/0", page.TotalCount, page.PageCount)
	}
}

func TestExecute_QueryFailureReturnsStorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	mock.MatchExpectationsInOrder(false)

	boom := errors.New("connection reset")
	mock.ExpectQuery("SELECT id, ticker FROM symbols").WillReturnError(boom)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM symbols").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	q := Query{Table: "symbols", Columns: []string{"id", "ticker"}}
	spec := Spec{Sort: Sort{Column: "id", Direction: "ASC"}, Page: 1, PageSize: 10}

	_, err = Execute(context.Background(), db, q, spec, scanSymbol)
	var se *StorageError
	if !errors.As(err, &se) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if !errors.Is(err, boom) {
		t.Fatalf("StorageError should wrap the driver error, got %v", err)
	}
}

// Sort and pagination must not leak into the count: the count statement is
// built from the predicate arguments alone.
func TestBuildWhere_CountIndependentOfSort(t *testing.T) {
	preds := []Predicate{
		{Column: "status", Kind: KindEquals, Value: "open"},
	}

	whereA, argsA, _ := buildWhere("", preds, "", nil, 1)
	whereB, argsB, _ := buildWhere("", preds, "", nil, 1)

	if whereA != whereB || len(argsA) != len(argsB) {
		t.Fatalf("where clause should be deterministic: %q vs %q", whereA, whereB)
	}
	if whereA != "status = $1" {
		t.Fatalf("unexpected where clause %q", whereA)
	}
}

func TestBuildWhere_Kinds(t *testing.T) {
	preds := []Predicate{
		{Column: "type", Kind: KindInSet, Value: []string{"like", "system"}},
		{Column: "is_read", Kind: KindBoolSet, Value: false},
	}

	where, args, next := buildWhere("deleted_at IS NULL", preds, "fed", []string{"title_en", "title_ar"}, 1)

	want := "deleted_at IS NULL AND type = ANY($1) AND is_read = $2 AND (title_en ILIKE $3 OR title_ar ILIKE $4)"
	if where != want {
		t.Fatalf("where = %q, want %q", where, want)
	}
	if len(args) != 4 {
		t.Fatalf("args = %d, want 4", len(args))
	}
	if next != 5 {
		t.Fatalf("next arg index = %d, want 5", next)
	}
}
