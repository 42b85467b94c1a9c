package dto

// AddUserRequest is the admin variant of registration: role may also be
// "admin", in which case no profile row is created.
type AddUserRequest struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,is-admin-role"`
}

type AdminUserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Status   string `json:"status"`
	Avatar   string `json:"avatar"`
}

type AdminUserListResponse struct {
	Users   []AdminUserResponse `json:"users"`
	Message string              `json:"message"`
}
