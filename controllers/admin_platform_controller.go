package controllers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"srvices-backend/entity"
	"srvices-backend/pkg/listview"
	"srvices-backend/pkg/resp"
	"srvices-backend/repository"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
)

const transactionsPageSize = 50

// AdminPlatformController: wallet/ledger view, settings, API keys,
// notification templates and language strings.
type AdminPlatformController struct {
	Platform *repository.PlatformRepository
	Txns     *repository.TransactionRepository
}

func NewAdminPlatformController(platform *repository.PlatformRepository, txns *repository.TransactionRepository) *AdminPlatformController {
	return &AdminPlatformController{Platform: platform, Txns: txns}
}

// ===== Wallet / ledger =====

// Wallet: GET /admin/wallet — ledger totals plus a paged transaction list.
func (pc *AdminPlatformController) Wallet(c *gin.Context) {
	totals, err := pc.Txns.Totals()
	if err != nil {
		resp.Error(c, err)
		return
	}

	txns, err := pc.Txns.ListAll()
	if err != nil {
		resp.Error(c, err)
		return
	}

	status := c.Query("status")
	txType := c.Query("type")
	filtered := listview.Filter(txns,
		func(t entity.Transaction) bool { return status == "" || string(t.Status) == status },
		func(t entity.Transaction) bool { return txType == "" || string(t.Type) == txType },
	)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	items, page := listview.Page(filtered, page, transactionsPageSize)

	resp.OK(c, gin.H{
		"totals":     totals,
		"items":      items,
		"page":       page,
		"pageSize":   transactionsPageSize,
		"totalItems": len(filtered),
		"totalPages": listview.TotalPages(len(filtered), transactionsPageSize),
	})
}

// ===== Settings =====

func (pc *AdminPlatformController) ListSettings(c *gin.Context) {
	rows, err := pc.Platform.ListSettings()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

type SettingReq struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

func (pc *AdminPlatformController) UpsertSetting(c *gin.Context) {
	var req SettingReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.Platform.UpsertSetting(req.Key, req.Value); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"key": req.Key, "value": req.Value})
}

// ===== API keys =====

func (pc *AdminPlatformController) ListApiKeys(c *gin.Context) {
	rows, err := pc.Platform.ListApiKeys()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

type ApiKeyReq struct {
	Name string `json:"name" binding:"required"`
}

// CreateApiKey returns the plaintext key exactly once.
func (pc *AdminPlatformController) CreateApiKey(c *gin.Context) {
	var req ApiKeyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	raw := make([]byte, 24)
	if _, err := rand.Read(raw); err != nil {
		resp.ServerError(c, err)
		return
	}
	plaintext := "sk_" + hex.EncodeToString(raw)
	sum := sha256.Sum256([]byte(plaintext))

	key := entity.ApiKey{
		Name:      req.Name,
		KeyHash:   hex.EncodeToString(sum[:]),
		Prefix:    plaintext[:10],
		IsActive:  true,
		CreatedBy: utils.CurrentUserID(c),
	}
	if err := pc.Platform.CreateApiKey(&key); err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, gin.H{"apiKey": key, "plaintext": plaintext})
}

func (pc *AdminPlatformController) RevokeApiKey(c *gin.Context) {
	if err := pc.Platform.RevokeApiKey(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"revoked": c.Param("id")})
}

// DeleteApiKey: the client confirms before issuing the DELETE.
func (pc *AdminPlatformController) DeleteApiKey(c *gin.Context) {
	if err := pc.Platform.DeleteApiKey(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}

// ===== Notification templates =====

func (pc *AdminPlatformController) ListTemplates(c *gin.Context) {
	rows, err := pc.Platform.ListTemplates()
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

type TemplateReq struct {
	Subject  *string `json:"subject,omitempty"`
	BodyEn   *string `json:"bodyEn,omitempty"`
	BodyAr   *string `json:"bodyAr,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

func (pc *AdminPlatformController) UpdateTemplate(c *gin.Context) {
	var req TemplateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Subject != nil {
		updates["subject"] = *req.Subject
	}
	if req.BodyEn != nil {
		updates["body_en"] = *req.BodyEn
	}
	if req.BodyAr != nil {
		updates["body_ar"] = *req.BodyAr
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		resp.BadRequest(c, "nothing to update")
		return
	}

	if err := pc.Platform.UpdateTemplate(c.Param("id"), updates); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": c.Param("id")})
}

// ===== Language strings =====

func (pc *AdminPlatformController) ListLanguageStrings(c *gin.Context) {
	rows, err := pc.Platform.ListLanguageStrings(c.Query("lang"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rows)
}

type LanguageStringReq struct {
	Key   string `json:"key" binding:"required"`
	Lang  string `json:"lang" binding:"required,oneof=en ar"`
	Value string `json:"value"`
}

func (pc *AdminPlatformController) UpsertLanguageString(c *gin.Context) {
	var req LanguageStringReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := pc.Platform.UpsertLanguageString(req.Key, req.Lang, req.Value); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"key": req.Key, "lang": req.Lang})
}

func (pc *AdminPlatformController) DeleteLanguageString(c *gin.Context) {
	if err := pc.Platform.DeleteLanguageString(c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": c.Param("id")})
}
