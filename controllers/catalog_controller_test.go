package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"srvices-backend/entity"
	"srvices-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newCatalogRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
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
	if err := db.AutoMigrate(&entity.Service{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctrl := NewCatalogController(repository.NewServiceRepository(db))
	r := gin.New()
	r.GET("/api/services", ctrl.List)
	r.GET("/api/services/:id", ctrl.Detail)
	return r, db
}

func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()
	services := []entity.Service{
		{Name: "Home Cleaning", Category: "cleaning", BasePrice: 5000, IsActive: true, IsInstantBooking: true, Position: 0},
		{Name: "AC Repair", Category: "maintenance", BasePrice: 15000, IsActive: true, Position: 1},
		{Name: "Deep Cleaning", Category: "cleaning", BasePrice: 12000, IsActive: true, IsAvailableToday: true, Position: 2},
		{Name: "Hidden Service", Category: "cleaning", BasePrice: 100, IsActive: false, Position: 3},
	}
	for i := range services {
		if err := db.Create(&services[i]).Error; err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
}

func getServices(t *testing.T, r *gin.Engine, query string) (int, []entity.Service) {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/services"+query, nil)
	r.ServeHTTP(w, req)

	var out []entity.Service
	if w.Code == http.StatusOK {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("decode: %v", err)
		}
	}
	return w.Code, out
}

func TestListServicesActiveOnly(t *testing.T) {
	r, db := newCatalogRouter(t)
	seedCatalog(t, db)

	code, out := getServices(t, r, "")
	if code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if len(out) != 3 {
		t.Fatalf("got %d services, want 3 (inactive hidden)", len(out))
	}
	for _, s := range out {
		if !s.IsActive {
			t.Fatalf("inactive service %q leaked", s.Name)
		}
	}
	// catalog order by position
	if out[0].Name != "Home Cleaning" || out[2].Name != "Deep Cleaning" {
		t.Fatalf("order = %v, %v, %v", out[0].Name, out[1].Name, out[2].Name)
	}
}

func TestListServicesFilters(t *testing.T) {
	r, db := newCatalogRouter(t)
	seedCatalog(t, db)

	_, out := getServices(t, r, "?category=cleaning")
	if len(out) != 2 {
		t.Fatalf("category filter: %d, want 2", len(out))
	}

	_, out = getServices(t, r, "?min_price=10000")
	if len(out) != 2 {
		t.Fatalf("min_price filter: %d, want 2", len(out))
	}

	_, out = getServices(t, r, "?max_price=6000")
	if len(out) != 1 || out[0].Name != "Home Cleaning" {
		t.Fatalf("max_price filter: %v", out)
	}

	_, out = getServices(t, r, "?instant_booking=true")
	if len(out) != 1 || out[0].Name != "Home Cleaning" {
		t.Fatalf("instant_booking filter: %v", out)
	}

	_, out = getServices(t, r, "?available_today=true")
	if len(out) != 1 || out[0].Name != "Deep Cleaning" {
		t.Fatalf("available_today filter: %v", out)
	}

	_, out = getServices(t, r, "?search=repair")
	if len(out) != 1 || out[0].Name != "AC Repair" {
		t.Fatalf("search filter: %v", out)
	}

	// no match is still a 200 with an empty array
	code, out := getServices(t, r, "?category=nope")
	if code != http.StatusOK || len(out) != 0 {
		t.Fatalf("empty result: code %d, %v", code, out)
	}
}

func TestListServicesLimitOffset(t *testing.T) {
	r, db := newCatalogRouter(t)
	seedCatalog(t, db)

	_, out := getServices(t, r, "?limit=2")
	if len(out) != 2 {
		t.Fatalf("limit: %d, want 2", len(out))
	}
	_, out = getServices(t, r, "?limit=2&offset=2")
	if len(out) != 1 || out[0].Name != "Deep Cleaning" {
		t.Fatalf("offset: %v", out)
	}
}

func TestListServicesMissingConfiguration(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := NewCatalogController(nil)
	r := gin.New()
	r.GET("/api/services", ctrl.List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
}

func TestServiceDetailHidesInactive(t *testing.T) {
	r, db := newCatalogRouter(t)
	seedCatalog(t, db)

	var hidden entity.Service
	if err := db.Where("is_active = ?", false).First(&hidden).Error; err != nil {
		t.Fatal(err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/services/"+hidden.ID, nil))
	if w.Code != http.StatusNotFound {
		t.Fatalf("inactive detail status = %d, want 404", w.Code)
	}
}
