package domain

// User is the public profile record, keyed by handle.
type User struct {
	Handle    string `json:"handle" dynamodbav:"handle"`
	UserID    string `json:"userId" dynamodbav:"user_id"`
	Email     string `json:"email" dynamodbav:"email"`
	CreatedAt string `json:"createdAt" dynamodbav:"created_at"`
	ImageURL  string `json:"imageUrl" dynamodbav:"image_url"`
	Bio       string `json:"bio,omitempty" dynamodbav:"bio,omitempty"`
	Website   string `json:"website,omitempty" dynamodbav:"website,omitempty"`
	Location  string `json:"location,omitempty" dynamodbav:"location,omitempty"`
}

type RegisterRequest struct {
	Email           string `json:"email" validate:"notblank,email"`
	Password        string `json:"password" validate:"notblank"`
	ConfirmPassword string `json:"confirmPassword" validate:"eqfield=Password"`
	Handle          string `json:"handle" validate:"notblank"`
}

type SignInRequest struct {
	Email    string `json:"email" validate:"notblank"`
	Password string `json:"password" validate:"notblank"`
}

// UpdateDetailsRequest carries the optional profile fields. A nil field was
// absent from the payload; a non-nil blank field clears the stored value.
type UpdateDetailsRequest struct {
	Bio      *string `json:"bio"`
	Website  *string `json:"website"`
	Location *string `json:"location"`
}

// AuthenticatedUser is the caller's own profile view.
type AuthenticatedUser struct {
	Credentials   *User          `json:"credentials"`
	Likes         []Like         `json:"likes"`
	Notifications []Notification `json:"notifications"`
}

// UserDetails is another user's public profile view.
type UserDetails struct {
	User    *User    `json:"user"`
	Screams []Scream `json:"screams"`
}
