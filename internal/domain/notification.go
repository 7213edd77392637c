package domain

type Notification struct {
	NotificationID string `json:"notificationId" dynamodbav:"notification_id"`
	Recipient      string `json:"recipient" dynamodbav:"recipient"`
	Sender         string `json:"sender" dynamodbav:"sender"`
	Type           string `json:"type" dynamodbav:"type"` // "like" | "comment"
	ScreamID       string `json:"screamId" dynamodbav:"scream_id"`
	Read           bool   `json:"read" dynamodbav:"read"`
	CreatedAt      string `json:"createdAt" dynamodbav:"created_at"`
}
