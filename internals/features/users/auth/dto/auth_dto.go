package dto

type LoginRequest struct {
	NIP      string `json:"nip" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type UserDTO struct {
	ID   string `json:"id"`
	NIP  string `json:"nip"`
	Nama string `json:"nama"`
}

type LoginResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
