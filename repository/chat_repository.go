package repository

import (
	"errors"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type ChatRepository struct {
	DB *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{DB: db}
}

func (r *ChatRepository) CreateRoom(tx *gorm.DB, room *entity.ChatRoom) error {
	return apperr.Gateway("create chat room", tx.Create(room).Error)
}

func (r *ChatRepository) GetRoom(id string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.DB.First(&room, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find chat room", err)
	}
	return &room, nil
}

func (r *ChatRepository) FindRoomByBooking(bookingID string) (*entity.ChatRoom, error) {
	var room entity.ChatRoom
	if err := r.DB.Where("booking_id = ?", bookingID).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find chat room by booking", err)
	}
	return &room, nil
}

// FindRoomsByUser returns rooms where the user is the booking's customer or
// its assigned driver.
func (r *ChatRepository) FindRoomsByUser(userID string) ([]entity.ChatRoom, error) {
	var rooms []entity.ChatRoom
	err := r.DB.Table("chat_rooms AS cr").
		Select("cr.*").
		Joins("JOIN bookings b ON b.id = cr.booking_id").
		Where("(b.customer_id = ? OR b.driver_id = ?) AND cr.deleted_at IS NULL", userID, userID).
		Order("cr.created_at DESC").
		Scan(&rooms).Error
	return rooms, apperr.Gateway("list chat rooms", err)
}

func (r *ChatRepository) FindMessagesByRoom(roomID string, limit int) ([]entity.Message, error) {
	if limit <= 0 || limit > 500 {
		limit = 200
	}
	var msgs []entity.Message
	err := r.DB.Where("room_id = ?", roomID).
		Order("created_at ASC").Limit(limit).
		Find(&msgs).Error
	return msgs, apperr.Gateway("list messages", err)
}

func (r *ChatRepository) CreateMessage(m *entity.Message) error {
	return apperr.Gateway("create message", r.DB.Create(m).Error)
}
