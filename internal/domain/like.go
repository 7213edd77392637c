package domain

type Like struct {
	LikeID    string `json:"likeId,omitempty" dynamodbav:"like_id"`
	Handle    string `json:"handle" dynamodbav:"handle"`
	ScreamID  string `json:"screamId" dynamodbav:"scream_id"`
	CreatedAt string `json:"createdAt,omitempty" dynamodbav:"created_at,omitempty"`
}
