package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/news"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newNewsTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	mock.MatchExpectationsInOrder(false)

	svc := news.NewService(news.NewRepository(&postgres.Client{DB: db}), revalidate.NewNotifier())
	h := NewNewsHandler(svc, nil)

	r := gin.New()
	r.GET("/news", h.List)
	return r, mock
}

func TestNewsList_ResponseShape(t *testing.T) {
	r, mock := newNewsTestRouter(t)

	now := time.Now()
	cols := []string{"id", "title_en", "title_ar", "source", "category", "url", "is_active", "published_at", "created_at", "updated_at"}
	mock.ExpectQuery("SELECT id, title_en, title_ar, source, category, url, is_active, published_at, created_at, updated_at FROM news_articles").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(uuid.New(), "Fed holds rates", nil, "reuters", "macro", "https://example.com/fed", true, now, now, now).
			AddRow(uuid.New(), "Earnings roundup", "ملخص الأرباح", "bloomberg", "earnings", nil, nil, now, now, now))
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM news_articles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news?page=1&pageSize=10", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var body struct {
		Data []struct {
			TitleEn       string `json:"titleEn"`
			CategoryLabel string `json:"categoryLabel"`
			IsActive      bool   `json:"isActive"`
		} `json:"data"`
		TotalCount int `json:"totalCount"`
		PageCount  int `json:"pageCount"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not the list DTO: %v; body: %s", err, w.Body.String())
	}

	if len(body.Data) != 2 {
		t.Errorf("data length = %d, want 2", len(body.Data))
	}
	if body.TotalCount != 42 || body.PageCount != 5 {
		t.Errorf("totalCount/pageCount = %d/%d, want 42/5", body.TotalCount, body.PageCount)
	}
	if body.Data[0].CategoryLabel != "Macro" {
		t.Errorf("categoryLabel = %q, want Macro", body.Data[0].CategoryLabel)
	}
	// NULL is_active renders as active.
	if !body.Data[1].IsActive {
		t.Error("article with NULL is_active should render as active")
	}
}

func TestNewsList_StorageFailureIs500(t *testing.T) {
	r, mock := newNewsTestRouter(t)

	mock.ExpectQuery("SELECT id, title_en").WillReturnError(sqlmock.ErrCancelled)
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM news_articles").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/news", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}
