package domain

// Stream names
const (
	StreamFarQuery = "stream:parking:far-query"
)

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
