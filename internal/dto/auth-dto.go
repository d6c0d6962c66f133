package dto

type LoginDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginUserDTO struct {
	ID       uint64 `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

type LoginResponseDTO struct {
	User  LoginUserDTO `json:"user"`
	Token string       `json:"token"`
}
