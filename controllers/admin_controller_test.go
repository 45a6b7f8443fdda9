package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"srvices-backend/entity"
	"srvices-backend/repository"
	"srvices-backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newAdminRouter(t *testing.T) (*gin.Engine, *gorm.DB, *services.VerificationService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&entity.User{}, &entity.DriverDocument{}, &entity.Booking{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	verify := services.NewVerificationService(db)
	exportSvc := services.NewExportService(repository.NewUserRepository(db), repository.NewBookingRepository(db))
	ctrl := NewAdminController(db, verify, exportSvc)

	r := gin.New()
	r.PATCH("/admin/users/:id/status", ctrl.UpdateUserStatus)
	return r, db, verify
}

func patchStatus(t *testing.T, r *gin.Engine, id, status string) int {
	t.Helper()
	body := bytes.NewBufferString(`{"status":"` + status + `"}`)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/admin/users/"+id+"/status", body)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w.Code
}

// The generic status endpoint must not activate a driver the verification
// gate would refuse.
func TestUpdateUserStatusHonorsDriverGate(t *testing.T) {
	r, db, verify := newAdminRouter(t)

	admin := &entity.User{Email: "admin@test.local", UserType: entity.UserTypeAdmin, Status: entity.UserStatusActive, Language: "en"}
	driver := &entity.User{Email: "driver@test.local", UserType: entity.UserTypeDriver, Status: entity.UserStatusPendingApproval, Language: "en"}
	for _, u := range []*entity.User{admin, driver} {
		if err := db.Create(u).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	if code := patchStatus(t, r, driver.ID, "active"); code != http.StatusConflict {
		t.Fatalf("activate unverified driver: status = %d, want 409", code)
	}
	var fresh entity.User
	if err := db.First(&fresh, "id = ?", driver.ID).Error; err != nil {
		t.Fatalf("reload driver: %v", err)
	}
	if fresh.Status != entity.UserStatusPendingApproval {
		t.Fatalf("driver status = %s despite refusal", fresh.Status)
	}

	doc, err := verify.SubmitDocument(driver.ID, "license", "")
	if err != nil {
		t.Fatal(err)
	}
	if code := patchStatus(t, r, driver.ID, "active"); code != http.StatusConflict {
		t.Fatalf("activate with pending doc: status = %d, want 409", code)
	}

	if err := verify.ReviewDocument(doc.ID, true, "", admin.ID); err != nil {
		t.Fatal(err)
	}
	if code := patchStatus(t, r, driver.ID, "active"); code != http.StatusOK {
		t.Fatalf("activate verified driver: status = %d, want 200", code)
	}
	if err := db.First(&fresh, "id = ?", driver.ID).Error; err != nil {
		t.Fatal(err)
	}
	if fresh.Status != entity.UserStatusActive {
		t.Fatalf("driver status = %s, want active", fresh.Status)
	}
}

// Customers are not gated, the endpoint still flips them directly.
func TestUpdateUserStatusCustomer(t *testing.T) {
	r, db, _ := newAdminRouter(t)

	customer := &entity.User{Email: "cust@test.local", UserType: entity.UserTypeCustomer, Status: entity.UserStatusActive, Language: "en"}
	if err := db.Create(customer).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	if code := patchStatus(t, r, customer.ID, "suspended"); code != http.StatusOK {
		t.Fatalf("suspend customer: status = %d, want 200", code)
	}
	var fresh entity.User
	if err := db.First(&fresh, "id = ?", customer.ID).Error; err != nil {
		t.Fatal(err)
	}
	if fresh.Status != entity.UserStatusSuspended {
		t.Fatalf("customer status = %s, want suspended", fresh.Status)
	}

	if code := patchStatus(t, r, customer.ID, "vaporized"); code != http.StatusBadRequest {
		t.Fatalf("unknown status: status = %d, want 400", code)
	}
}

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("GST", 4*3600)
	in := time.Date(2026, 3, 14, 1, 30, 45, 0, loc)
	want := time.Date(2026, 3, 14, 0, 0, 0, 0, loc)

	got := startOfDay(in)
	if !got.Equal(want) {
		t.Fatalf("startOfDay = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Fatalf("location = %v, want %v", got.Location(), loc)
	}
}
