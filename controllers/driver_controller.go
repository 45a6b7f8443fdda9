package controllers

import (
	"srvices-backend/entity"
	"srvices-backend/pkg/resp"
	"srvices-backend/repository"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
)

// DriverController covers the driver dashboard: the open-bookings feed,
// accept/complete, documents and earnings.
type DriverController struct {
	Bookings     *services.BookingService
	Verification *services.VerificationService
	Txns         *repository.TransactionRepository
}

func NewDriverController(bookings *services.BookingService, verification *services.VerificationService, txns *repository.TransactionRepository) *DriverController {
	return &DriverController{Bookings: bookings, Verification: verification, Txns: txns}
}

// GET /partner/driver/feed — bookings still collecting offers
func (dc *DriverController) Feed(c *gin.Context) {
	rows, err := dc.Bookings.Repo.ListOpen(50)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

// GET /partner/driver/jobs — bookings assigned to me
func (dc *DriverController) Jobs(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rows, err := dc.Bookings.Repo.ListForDriver(uid, 50)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

func (dc *DriverController) Accept(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	b, err := dc.Bookings.Accept(c.Param("id"), uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

func (dc *DriverController) Complete(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	b, err := dc.Bookings.Get(c.Param("id"), uid, utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if b.DriverID == nil || *b.DriverID != uid {
		resp.Forbidden(c, "not your job")
		return
	}

	done, err := dc.Bookings.Complete(b.ID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, done)
}

func (dc *DriverController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CancelReq
	_ = c.ShouldBindJSON(&req)

	b, err := dc.Bookings.Get(c.Param("id"), uid, utils.CurrentRole(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if b.DriverID == nil || *b.DriverID != uid {
		resp.Forbidden(c, "not your job")
		return
	}

	cancelled, err := dc.Bookings.Cancel(b.ID, req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, cancelled)
}

// ===== Documents =====

type SubmitDocumentReq struct {
	DocumentType string `json:"documentType" binding:"required"`
	DocumentURL  string `json:"documentUrl" binding:"required"`
}

func (dc *DriverController) SubmitDocument(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req SubmitDocumentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	doc, err := dc.Verification.SubmitDocument(uid, req.DocumentType, req.DocumentURL)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, doc)
}

func (dc *DriverController) MyDocuments(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	docs, err := dc.Verification.DriverDocuments(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, docs)
}

// GET /partner/driver/earnings
func (dc *DriverController) Earnings(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	balance, err := dc.Txns.WalletBalance(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	rows, err := dc.Bookings.Repo.ListForDriver(uid, 100)
	if err != nil {
		resp.Error(c, err)
		return
	}

	completed := 0
	for _, r := range rows {
		if r.Status == entity.BookingCompleted {
			completed++
		}
	}
	resp.OK(c, gin.H{
		"walletBalance":     balance,
		"completedBookings": completed,
		"recent":            rows,
	})
}
