package controllers

import (
	"net/http"
	"strconv"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/export"
	"srvices-backend/pkg/listview"
	"srvices-backend/pkg/resp"
	"srvices-backend/repository"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	usersPageSize   = 10
	driversPageSize = 8
)

// AdminController: dashboard, user/driver management, verification, exports.
type AdminController struct {
	DB           *gorm.DB
	Users        *repository.UserRepository
	Bookings     *repository.BookingRepository
	Verification *services.VerificationService
	Export       *services.ExportService
}

func NewAdminController(db *gorm.DB, verification *services.VerificationService, exportSvc *services.ExportService) *AdminController {
	return &AdminController{
		DB:           db,
		Users:        repository.NewUserRepository(db),
		Bookings:     repository.NewBookingRepository(db),
		Verification: verification,
		Export:       exportSvc,
	}
}

// startOfDay returns midnight of t's calendar day in t's own zone.
// Truncate would cut against the UTC epoch and skew the daily counters.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Dashboard: headline counters.
func (ac *AdminController) Dashboard(c *gin.Context) {
	db := ac.DB

	var totalUsers, totalDrivers, pendingDrivers, openBookings, bookingsToday int64

	if err := db.Model(&entity.User{}).Count(&totalUsers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.User{}).Where("user_type = ?", entity.UserTypeDriver).Count(&totalDrivers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.User{}).
		Where("user_type = ? AND status = ?", entity.UserTypeDriver, entity.UserStatusPendingApproval).
		Count(&pendingDrivers).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	if err := db.Model(&entity.Booking{}).Where("status = ?", entity.BookingPendingOffers).Count(&openBookings).Error; err != nil {
		resp.ServerError(c, err)
		return
	}
	start := startOfDay(time.Now())
	if err := db.Model(&entity.Booking{}).Where("created_at >= ?", start).Count(&bookingsToday).Error; err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{
		"totalUsers":     totalUsers,
		"totalDrivers":   totalDrivers,
		"pendingDrivers": pendingDrivers,
		"openBookings":   openBookings,
		"bookingsToday":  bookingsToday,
	})
}

// ListUsers: GET /admin/users?status=&search=&page=
func (ac *AdminController) ListUsers(c *gin.Context) {
	users, err := ac.Users.ListByType(entity.UserTypeCustomer)
	if err != nil {
		resp.Error(c, err)
		return
	}

	status := c.Query("status")
	search := c.Query("search")

	filtered := listview.Filter(users,
		func(u entity.User) bool { return status == "" || string(u.Status) == status },
		func(u entity.User) bool { return listview.MatchText(search, u.FullName, u.Email) },
	)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, page := listview.Page(filtered, page, usersPageSize)

	resp.OK(c, gin.H{
		"items":      items,
		"page":       page,
		"pageSize":   usersPageSize,
		"totalItems": len(filtered),
		"totalPages": listview.TotalPages(len(filtered), usersPageSize),
	})
}

// ListDrivers: GET /admin/drivers?status=&search=&page=
func (ac *AdminController) ListDrivers(c *gin.Context) {
	drivers, err := ac.Users.ListByType(entity.UserTypeDriver)
	if err != nil {
		resp.Error(c, err)
		return
	}

	status := c.Query("status")
	search := c.Query("search")

	filtered := listview.Filter(drivers,
		func(u entity.User) bool { return status == "" || string(u.Status) == status },
		func(u entity.User) bool {
			return listview.MatchText(search, u.FullName, u.Email, u.LicenseNumber, u.VehiclePlate)
		},
	)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, page := listview.Page(filtered, page, driversPageSize)

	resp.OK(c, gin.H{
		"items":      items,
		"page":       page,
		"pageSize":   driversPageSize,
		"totalItems": len(filtered),
		"totalPages": listview.TotalPages(len(filtered), driversPageSize),
	})
}

type UserStatusReq struct {
	Status string `json:"status" binding:"required"`
}

// UpdateUserStatus: PATCH /admin/users/:id/status
func (ac *AdminController) UpdateUserStatus(c *gin.Context) {
	var req UserStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	switch entity.UserStatus(req.Status) {
	case entity.UserStatusActive, entity.UserStatusSuspended, entity.UserStatusPendingApproval:
	default:
		resp.BadRequest(c, "unknown status")
		return
	}

	id := c.Param("id")
	user, err := ac.Users.FindByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}

	// Activating a driver always runs through the document gate, same as
	// the dedicated approve endpoint.
	if user.UserType == entity.UserTypeDriver && entity.UserStatus(req.Status) == entity.UserStatusActive {
		driver, err := ac.Verification.ActivateDriver(id)
		if err != nil {
			resp.Error(c, err)
			return
		}
		resp.OK(c, driver)
		return
	}

	if err := ac.Users.Update(id, map[string]any{"status": req.Status}); err != nil {
		resp.Error(c, err)
		return
	}
	user, err = ac.Users.FindByID(id)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

// DeleteUser: DELETE /admin/users/:id — the client confirms before calling.
func (ac *AdminController) DeleteUser(c *gin.Context) {
	if _, err := ac.Users.FindByID(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ac.Users.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// ===== Driver verification =====

// DriverDocuments: GET /admin/drivers/:id/documents
func (ac *AdminController) DriverDocuments(c *gin.Context) {
	docs, err := ac.Verification.DriverDocuments(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"documents":  docs,
		"canApprove": services.CanApproveDriver(docs),
	})
}

type ReviewDocumentReq struct {
	Approve bool   `json:"approve"`
	Reason  string `json:"reason"`
}

// ReviewDocument: PATCH /admin/documents/:id
func (ac *AdminController) ReviewDocument(c *gin.Context) {
	var req ReviewDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	adminID := utils.CurrentUserID(c)
	if err := ac.Verification.ReviewDocument(c.Param("id"), req.Approve, req.Reason, adminID); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reviewed": c.Param("id")})
}

// ApproveDriver: PATCH /admin/drivers/:id/approve
func (ac *AdminController) ApproveDriver(c *gin.Context) {
	driver, err := ac.Verification.ApproveDriver(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, driver)
}

type RejectDriverReq struct {
	Force bool `json:"force"`
}

// RejectDriver: PATCH /admin/drivers/:id/reject
func (ac *AdminController) RejectDriver(c *gin.Context) {
	var req RejectDriverReq
	_ = c.ShouldBindJSON(&req)

	driver, err := ac.Verification.RejectDriver(c.Param("id"), req.Force)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, driver)
}

// ===== Bookings overview =====

func (ac *AdminController) ListBookings(c *gin.Context) {
	bookings, err := ac.Bookings.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}

	status := c.Query("status")
	filtered := listview.Filter(bookings,
		func(b entity.Booking) bool { return status == "" || string(b.Status) == status },
	)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, page := listview.Page(filtered, page, 50)

	resp.OK(c, gin.H{
		"items":      items,
		"page":       page,
		"pageSize":   50,
		"totalItems": len(filtered),
		"totalPages": listview.TotalPages(len(filtered), 50),
	})
}

// ===== CSV exports =====

func (ac *AdminController) ExportUsers(c *gin.Context) {
	rows, err := ac.Export.UserRows()
	if err != nil {
		resp.Error(c, err)
		return
	}
	ac.sendCSV(c, "users", services.UserExportHeader, rows)
}

func (ac *AdminController) ExportDrivers(c *gin.Context) {
	rows, err := ac.Export.DriverRows()
	if err != nil {
		resp.Error(c, err)
		return
	}
	ac.sendCSV(c, "drivers", services.DriverExportHeader, rows)
}

func (ac *AdminController) sendCSV(c *gin.Context, name string, header []string, rows [][]string) {
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+export.Filename(name, time.Now())+`"`)
	c.Status(http.StatusOK)
	if err := export.Write(c.Writer, header, rows); err != nil {
		// headers already sent, just log via gin's error list
		_ = c.Error(err)
	}
}
