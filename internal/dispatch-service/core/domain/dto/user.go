package dto

// UserRequest is the shared body of /user/reg and /user/auth.
type UserRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type AuthResponse struct {
	Msg         string `json:"msg"`
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	UserLogin   string `json:"user_login"`
}
