package announcements

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/core/validation"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/revalidate"
	"github.com/tradinglens-app/tradinglens-dashboard-sub000/internal/storage/postgres"
)

func TestCreate_MissingTitleRejectedBeforeWrite(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()
	// No INSERT expectation: the write must never happen.

	notifier := revalidate.NewNotifier()
	var invalidated []string
	notifier.Subscribe(func(route string) { invalidated = append(invalidated, route) })

	svc := NewService(NewRepository(&postgres.Client{DB: db}), notifier)

	_, err = svc.Create(context.Background(), &CreateAnnouncementRequest{BodyEn: "We are live"})
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !validation.IsValidationError(err) {
		t.Fatalf("expected ValidationErrors, got %T: %v", err, err)
	}

	ve := validation.GetValidationErrors(err)
	if len(ve.Errors) != 1 || ve.Errors[0].Field != "titleEn" {
		t.Errorf("unexpected field errors: %+v", ve.Errors)
	}

	if len(invalidated) != 0 {
		t.Errorf("no route should be invalidated on a failed create, got %v", invalidated)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("database should be untouched: %v", err)
	}
}

func TestCreate_ValidInvalidatesListingRoute(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	now := time.Now()
	mock.ExpectQuery("INSERT INTO announcements").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	notifier := revalidate.NewNotifier()
	var invalidated []string
	notifier.Subscribe(func(route string) { invalidated = append(invalidated, route) })

	svc := NewService(NewRepository(&postgres.Client{DB: db}), notifier)

	a, err := svc.Create(context.Background(), &CreateAnnouncementRequest{TitleEn: "Maintenance window"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if !a.IsActive {
		t.Error("new announcements should start active")
	}

	if len(invalidated) != 1 || invalidated[0] != RouteAnnouncements {
		t.Errorf("invalidated = %v, want [%s]", invalidated, RouteAnnouncements)
	}
}
