package controllers

import (
	"srvices-backend/entity"
	"srvices-backend/pkg/resp"
	"srvices-backend/repository"
	"srvices-backend/services"

	"github.com/gin-gonic/gin"
)

// AdminCatalogController: service CRUD and pricing rules.
type AdminCatalogController struct {
	Services *repository.ServiceRepository
	Pricing  *services.PricingService
}

func NewAdminCatalogController(svcRepo *repository.ServiceRepository, pricing *services.PricingService) *AdminCatalogController {
	return &AdminCatalogController{Services: svcRepo, Pricing: pricing}
}

// ===== Services =====

func (ac *AdminCatalogController) ListServices(c *gin.Context) {
	rows, err := ac.Services.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

type ServiceReq struct {
	Name             string  `json:"name" binding:"required"`
	Category         string  `json:"category" binding:"required"`
	BasePrice        int64   `json:"basePrice" binding:"required,min=0"`
	PriceType        string  `json:"priceType" binding:"required,oneof=fixed hourly per_unit"`
	BillingUnit      string  `json:"billingUnit"`
	PlatformFee      float64 `json:"platformFee" binding:"min=0,max=100"`
	IsActive         *bool   `json:"isActive"`
	IsInstantBooking bool    `json:"isInstantBooking"`
	IsAvailableToday bool    `json:"isAvailableToday"`
	Position         int     `json:"position"`
}

func (ac *AdminCatalogController) CreateService(c *gin.Context) {
	var req ServiceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	svc := entity.Service{
		Name:             req.Name,
		Category:         req.Category,
		BasePrice:        req.BasePrice,
		PriceType:        entity.PriceType(req.PriceType),
		BillingUnit:      req.BillingUnit,
		PlatformFee:      req.PlatformFee,
		IsActive:         req.IsActive == nil || *req.IsActive,
		IsInstantBooking: req.IsInstantBooking,
		IsAvailableToday: req.IsAvailableToday,
		Position:         req.Position,
	}
	if err := ac.Services.Create(&svc); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, svc)
}

type ServicePatchReq struct {
	Name             *string  `json:"name,omitempty"`
	Category         *string  `json:"category,omitempty"`
	BasePrice        *int64   `json:"basePrice,omitempty"`
	PriceType        *string  `json:"priceType,omitempty"`
	BillingUnit      *string  `json:"billingUnit,omitempty"`
	PlatformFee      *float64 `json:"platformFee,omitempty"`
	IsActive         *bool    `json:"isActive,omitempty"`
	IsInstantBooking *bool    `json:"isInstantBooking,omitempty"`
	IsAvailableToday *bool    `json:"isAvailableToday,omitempty"`
	Position         *int     `json:"position,omitempty"`
}

func (ac *AdminCatalogController) UpdateService(c *gin.Context) {
	var req ServicePatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if _, err := ac.Services.Get(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}

	updates := map[string]any{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.BasePrice != nil {
		updates["base_price"] = *req.BasePrice
	}
	if req.PriceType != nil {
		switch entity.PriceType(*req.PriceType) {
		case entity.PriceTypeFixed, entity.PriceTypeHourly, entity.PriceTypePerUnit:
			updates["price_type"] = *req.PriceType
		default:
			resp.BadRequest(c, "unknown price type")
			return
		}
	}
	if req.BillingUnit != nil {
		updates["billing_unit"] = *req.BillingUnit
	}
	if req.PlatformFee != nil {
		updates["platform_fee"] = *req.PlatformFee
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsInstantBooking != nil {
		updates["is_instant_booking"] = *req.IsInstantBooking
	}
	if req.IsAvailableToday != nil {
		updates["is_available_today"] = *req.IsAvailableToday
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := ac.Services.Update(c.Param("id"), updates); err != nil {
		resp.Error(c, err)
		return
	}
	svc, err := ac.Services.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, svc)
}

func (ac *AdminCatalogController) DeleteService(c *gin.Context) {
	if _, err := ac.Services.Get(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	if err := ac.Services.Delete(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

type ReorderReq struct {
	OrderedIDs []string `json:"orderedIds" binding:"required,min=1"`
}

func (ac *AdminCatalogController) ReorderServices(c *gin.Context) {
	var req ReorderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ac.Services.Reorder(req.OrderedIDs); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reordered": len(req.OrderedIDs)})
}

// ===== Pricing rules =====

// ListPricingRules returns the service-enriched rule list.
func (ac *AdminCatalogController) ListPricingRules(c *gin.Context) {
	rules, err := ac.Pricing.ListResolved()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rules)
}

type PricingRuleReq struct {
	ServiceID          string   `json:"serviceId" binding:"required"`
	CustomerFixedPrice *int64   `json:"customerFixedPrice,omitempty"`
	DriverPercentage   *float64 `json:"driverPercentage,omitempty"`
	DriverFixedPrice   *int64   `json:"driverFixedPrice,omitempty"`
	IsActive           *bool    `json:"isActive,omitempty"`
}

func (ac *AdminCatalogController) CreatePricingRule(c *gin.Context) {
	var req PricingRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rule := entity.PricingRule{
		ServiceID:          req.ServiceID,
		CustomerFixedPrice: req.CustomerFixedPrice,
		DriverPercentage:   req.DriverPercentage,
		DriverFixedPrice:   req.DriverFixedPrice,
		IsActive:           req.IsActive == nil || *req.IsActive,
	}
	if err := ac.Pricing.CreateRule(&rule); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, rule)
}

func (ac *AdminCatalogController) UpdatePricingRule(c *gin.Context) {
	var req PricingRuleReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{"service_id": req.ServiceID}
	if req.CustomerFixedPrice != nil {
		updates["customer_fixed_price"] = *req.CustomerFixedPrice
	}
	if req.DriverPercentage != nil {
		updates["driver_percentage"] = *req.DriverPercentage
	}
	if req.DriverFixedPrice != nil {
		updates["driver_fixed_price"] = *req.DriverFixedPrice
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if err := ac.Pricing.UpdateRule(c.Param("id"), updates); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": c.Param("id")})
}

func (ac *AdminCatalogController) DeletePricingRule(c *gin.Context) {
	if err := ac.Pricing.DeleteRule(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
