package httpdto

// SignupRequest is the body of POST /signup. The email_ID key is kept for
// compatibility with existing consumers.
type SignupRequest struct {
	Email    string `json:"email_ID" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest is the body of POST /login.
type LoginRequest struct {
	Email    string `json:"email_ID" binding:"required"`
	Password string `json:"password" binding:"required"`
}
