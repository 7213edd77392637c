package dynamo

// DynamoDB attribute names used in key conditions and update expressions across all repos.
// Using constants prevents silent runtime bugs caused by key typos.
const (
	attrHandle         = "handle"
	attrEmail          = "email"
	attrLikeID         = "like_id"
	attrScreamID       = "scream_id"
	attrNotificationID = "notification_id"
	attrRecipient      = "recipient"
	attrCreatedAt      = "created_at"
	attrRead           = "read"
	attrImageURL       = "image_url"

	indexLikesByHandle          = "handle-index"
	indexScreamsByHandle        = "handle-created_at-index"
	indexNotificationsRecipient = "recipient-created_at-index"
)
