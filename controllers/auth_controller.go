package controllers

import (
	"srvices-backend/pkg/resp"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
)

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(svc *services.AuthService) *AuthController {
	return &AuthController{Svc: svc}
}

type RegisterReq struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	FullName    string `json:"fullName" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Language    string `json:"language"`
	AsDriver    bool   `json:"asDriver"`
}

func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ac.Svc.Register(services.RegisterInput{
		Email:       req.Email,
		Password:    req.Password,
		FullName:    req.FullName,
		PhoneNumber: req.PhoneNumber,
		Language:    req.Language,
		AsDriver:    req.AsDriver,
	})
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, user)
}

type LoginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (ac *AuthController) Login(c *gin.Context) {
	var req LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, user, err := ac.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, "invalid credentials")
		return
	}
	resp.OK(c, gin.H{"token": token, "user": user})
}

func (ac *AuthController) Me(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	user, err := ac.Svc.GetProfile(uid, utils.CurrentEmail(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}

type UpdateMeReq struct {
	FullName      *string `json:"fullName,omitempty"`
	PhoneNumber   *string `json:"phoneNumber,omitempty"`
	Language      *string `json:"language,omitempty"`
	LicenseNumber *string `json:"licenseNumber,omitempty"`
	VehicleMake   *string `json:"vehicleMake,omitempty"`
	VehicleModel  *string `json:"vehicleModel,omitempty"`
	VehicleColor  *string `json:"vehicleColor,omitempty"`
	VehiclePlate  *string `json:"vehiclePlate,omitempty"`
}

func (ac *AuthController) UpdateMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req UpdateMeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	set := func(col string, v *string) {
		if v != nil {
			updates[col] = *v
		}
	}
	set("full_name", req.FullName)
	set("phone_number", req.PhoneNumber)
	set("language", req.Language)
	set("license_number", req.LicenseNumber)
	set("vehicle_make", req.VehicleMake)
	set("vehicle_model", req.VehicleModel)
	set("vehicle_color", req.VehicleColor)
	set("vehicle_plate", req.VehiclePlate)

	user, err := ac.Svc.UpdateProfile(uid, updates)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, user)
}
