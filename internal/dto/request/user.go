package request

type CreateUserRequest struct {
	Username string `json:"username" validate:"required,notblank,max=150"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	IsStaff  bool   `json:"is_staff"`
}
