package domain

// Event is the standard envelope pushed over a websocket connection.
type Event struct {
	Name    string      `json:"event"`
	Payload interface{} `json:"payload"`
}

// Realtime event names.
const (
	EventNewMessage           = "newMessage"
	EventNewNotification      = "newNotification"
	EventNotificationRead     = "notificationRead"
	EventAllNotificationsRead = "allNotificationsRead"
	EventNotificationDeleted  = "notificationDeleted"
	EventArticlePublished     = "articlePublished"
)
