package controllers

import (
	"time"

	"srvices-backend/pkg/resp"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
)

// BookingController covers the customer side of the booking lifecycle.
type BookingController struct {
	Svc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{Svc: svc}
}

type CreateBookingReq struct {
	ServiceID   string    `json:"serviceId" binding:"required"`
	Location    string    `json:"location" binding:"required"`
	ServiceDate time.Time `json:"serviceDate" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,min=1"`
	Notes       string    `json:"notes"`
}

func (bc *BookingController) Create(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req CreateBookingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	b, err := bc.Svc.Create(services.CreateBookingInput{
		CustomerID:  uid,
		ServiceID:   req.ServiceID,
		Location:    req.Location,
		ServiceDate: req.ServiceDate,
		Quantity:    req.Quantity,
		Notes:       req.Notes,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, b)
}

// GET /profile/bookings
func (bc *BookingController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rows, err := bc.Svc.Repo.ListForCustomer(uid, 50)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

func (bc *BookingController) Detail(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	b, err := bc.Svc.Get(c.Param("id"), uid, role)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}

type CancelReq struct {
	Reason string `json:"reason"`
}

func (bc *BookingController) Cancel(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	var req CancelReq
	_ = c.ShouldBindJSON(&req)

	// ownership check before the transition
	if _, err := bc.Svc.Get(c.Param("id"), uid, role); err != nil {
		resp.Error(c, err)
		return
	}

	b, err := bc.Svc.Cancel(c.Param("id"), req.Reason)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, b)
}
