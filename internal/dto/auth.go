package dto

type AuthRequestDTO struct {
	Login    string `json:"login" example:"user"`
	Password string `json:"password" example:"password"`
}

type AuthResponseDTO struct {
	Token string `json:"token"`
}
