package httpdto

// Status is the flat success flag every endpoint falls back to. Auth and
// credential failures always render as {"success":false} with HTTP 200;
// consumers key off the body, not the status code.
type Status struct {
	Success bool `json:"success"`
}

// Failure is the uniform failure body. It carries no detail on purpose so
// that an unknown email and a wrong password are indistinguishable.
var Failure = Status{Success: false}

// TokenResponse is returned by signup and login on success.
type TokenResponse struct {
	Token   string `json:"token"`
	Success bool   `json:"success"`
}

func NewTokenResponse(token string) TokenResponse {
	return TokenResponse{Token: token, Success: true}
}
