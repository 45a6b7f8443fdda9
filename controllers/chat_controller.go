package controllers

import (
	"strconv"

	"srvices-backend/entity"
	"srvices-backend/pkg/resp"
	"srvices-backend/services"
	"srvices-backend/utils"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	Svc *services.ChatService
}

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

// GET /chat/rooms
func (cc *ChatController) MyRooms(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	rooms, err := cc.Svc.RoomsForUser(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, rooms)
}

// GET /chat/rooms/:id/messages
func (cc *ChatController) Messages(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	room, err := cc.Svc.Authorize(c.Param("id"), uid, role)
	if err != nil {
		resp.Error(c, err)
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	msgs, err := cc.Svc.Messages(room.ID, limit)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, msgs)
}

type SendMessageReq struct {
	Body string `json:"body" binding:"required"`
	Type string `json:"type"`
}

// POST /chat/rooms/:id/messages (REST fallback for clients without WS)
func (cc *ChatController) Send(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	role := utils.CurrentRole(c)

	room, err := cc.Svc.Authorize(c.Param("id"), uid, role)
	if err != nil {
		resp.Error(c, err)
		return
	}

	var req SendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	msg, err := cc.Svc.SendMessage(room.ID, uid, entity.MessageType(req.Type), req.Body)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.Created(c, msg)
}
