package dto

type LoginDTO struct {
	Usr string `json:"usr" form:"usr" validate:"required"`
	Pwd string `json:"pwd" form:"pwd" validate:"required"`
}

type LoginResponseDTO struct {
	Message  string `json:"message"`
	FullName string `json:"full_name"`
}
