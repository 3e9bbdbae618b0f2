package dto

// LoginRequest is the body of POST /api/login
type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// LoginResponse mirrors the historical wire shape of the login endpoint:
// success plus a bearer token on 200, success=false plus an error on 401.
type LoginResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token,omitempty"`
	Error   string `json:"error,omitempty"`
}
