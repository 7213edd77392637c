package domain

// Account is the identity record behind a user: credentials and the stable
// user ID, keyed by email.
type Account struct {
	Email        string `json:"email" dynamodbav:"email"`
	UserID       string `json:"userId" dynamodbav:"user_id"`
	Handle       string `json:"handle" dynamodbav:"handle"`
	PasswordHash string `json:"-" dynamodbav:"password_hash"`
	CreatedAt    string `json:"createdAt" dynamodbav:"created_at"`
}
