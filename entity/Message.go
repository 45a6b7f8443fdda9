package entity

type MessageType string

const (
	MessageText   MessageType = "text"
	MessageImage  MessageType = "image"
	MessageSystem MessageType = "system"
)

type Message struct {
	Model
	Body string      `json:"body"`
	Type MessageType `gorm:"type:varchar(16);not null;default:text" json:"type"`

	SenderID string `gorm:"index;not null" json:"senderId"`
	Sender   User   `gorm:"foreignKey:SenderID" json:"-"`

	RoomID string   `gorm:"index;not null" json:"roomId"`
	Room   ChatRoom `gorm:"foreignKey:RoomID" json:"-"` // hidden to avoid loops
}
