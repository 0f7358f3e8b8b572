package contracts

type UserUpdateNameRequest struct {
	Name string `json:"name" binding:"required"`
}

type UserUpdatePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}
