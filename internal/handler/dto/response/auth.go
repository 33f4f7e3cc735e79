package response

import (
	"loyalty-ledger/internal/usecase/commands"
)

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
	User        struct {
		ID         string  `json:"id"`
		Role       string  `json:"role"`
		BusinessID *string `json:"business_id,omitempty"`
	} `json:"user"`
}

func FromLoginResult(r *commands.LoginResult) *LoginResponse {
	resp := &LoginResponse{
		AccessToken: r.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
	}
	resp.User.ID = r.UserID.String()
	resp.User.Role = r.Role.String()
	if r.BusinessID != nil {
		id := r.BusinessID.String()
		resp.User.BusinessID = &id
	}
	return resp
}
