package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"srvices-backend/entity"
	"srvices-backend/pkg/resp"
	"srvices-backend/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// CatalogController serves the public service catalog, including the
// unauthenticated GET /api/services endpoint.
type CatalogController struct {
	Repo *repository.ServiceRepository
}

func NewCatalogController(repo *repository.ServiceRepository) *CatalogController {
	return &CatalogController{Repo: repo}
}

// List handles GET /api/services. An empty result is a valid 200 with [];
// 500 signals missing server configuration or a query failure.
func (cc *CatalogController) List(c *gin.Context) {
	if cc.Repo == nil || cc.Repo.DB == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server configuration missing"})
		return
	}

	q := repository.CatalogQuery{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Location: c.Query("location"),
	}
	if v := c.Query("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MinPrice = &n
		}
	}
	if v := c.Query("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MaxPrice = &n
		}
	}
	if v := c.Query("instant_booking"); v != "" {
		b := v == "true" || v == "1"
		q.InstantBooking = &b
	}
	if v := c.Query("available_today"); v != "" {
		b := v == "true" || v == "1"
		q.AvailableToday = &b
	}
	q.Limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	q.Offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))

	rows, err := cc.Repo.ListActive(q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	if rows == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no result set"})
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (cc *CatalogController) Detail(c *gin.Context) {
	svc, err := cc.Repo.Get(c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	if !svc.IsActive {
		resp.NotFound(c, "not found")
		return
	}
	resp.OK(c, svc)
}

// Categories lists the distinct categories of active services.
func (cc *CatalogController) Categories(c *gin.Context) {
	var categories []string
	err := cc.Repo.DB.Model(&entity.Service{}).
		Where("is_active = ?", true).
		Distinct().Order("category ASC").
		Pluck("category", &categories).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, categories)
}
