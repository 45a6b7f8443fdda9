// services/chat_service.go
package services

import (
	"strings"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
	"srvices-backend/repository"
)

type ChatService struct {
	repo     *repository.ChatRepository
	bookings *repository.BookingRepository
}

func NewChatService(repo *repository.ChatRepository, bookings *repository.BookingRepository) *ChatService {
	return &ChatService{repo: repo, bookings: bookings}
}

// Authorize checks that the user is a participant of the room's booking.
// Admins may read any room.
func (s *ChatService) Authorize(roomID, userID, role string) (*entity.ChatRoom, error) {
	room, err := s.repo.GetRoom(roomID)
	if err != nil {
		return nil, err
	}
	if role == string(entity.UserTypeAdmin) {
		return room, nil
	}
	b, err := s.bookings.Get(room.BookingID)
	if err != nil {
		return nil, err
	}
	if b.CustomerID != userID && (b.DriverID == nil || *b.DriverID != userID) {
		return nil, apperr.ErrNotFound
	}
	return room, nil
}

func (s *ChatService) RoomForBooking(bookingID string) (*entity.ChatRoom, error) {
	return s.repo.FindRoomByBooking(bookingID)
}

func (s *ChatService) RoomsForUser(userID string) ([]entity.ChatRoom, error) {
	return s.repo.FindRoomsByUser(userID)
}

func (s *ChatService) Messages(roomID string, limit int) ([]entity.Message, error) {
	return s.repo.FindMessagesByRoom(roomID, limit)
}

func (s *ChatService) SendMessage(roomID, senderID string, msgType entity.MessageType, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperr.Validation("message body is required")
	}
	if msgType == "" {
		msgType = entity.MessageText
	}
	msg := &entity.Message{
		Body:     body,
		Type:     msgType,
		SenderID: senderID,
		RoomID:   roomID,
	}
	if err := s.repo.CreateMessage(msg); err != nil {
		return nil, err
	}
	return msg, nil
}
