package dto

import "time"

type RegisterRequest struct {
	Nama      string  `json:"nama"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	NoTelepon *string `json:"no_telepon,omitempty"`
	Alamat    *string `json:"alamat,omitempty"`
}

type RegisterResponse struct {
	Message string `json:"message"`
	UserID  uint   `json:"user_id"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	ID        uint      `json:"id"`
	Nama      string    `json:"nama"`
	Email     string    `json:"email"`
	NoTelepon *string   `json:"no_telepon"`
	Alamat    *string   `json:"alamat"`
	Status    string    `json:"status"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type LoginResponse struct {
	Message string  `json:"message"`
	Token   string  `json:"token"`
	User    UserDTO `json:"user"`
}

type UserListResponse struct {
	Users []UserDTO `json:"users"`
}

type UpdateUserStatusRequest struct {
	Status string `json:"status"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}
