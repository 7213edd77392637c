package domain

// Scream is a post. Read-only from the users API.
type Scream struct {
	ScreamID     string `json:"screamId" dynamodbav:"scream_id"`
	Handle       string `json:"handle" dynamodbav:"handle"`
	Body         string `json:"body" dynamodbav:"body"`
	CreatedAt    string `json:"createdAt" dynamodbav:"created_at"`
	UserImage    string `json:"userImage" dynamodbav:"user_image"`
	CommentCount int    `json:"commentCount" dynamodbav:"comment_count"`
	LikeCount    int    `json:"likeCount" dynamodbav:"like_count"`
}
