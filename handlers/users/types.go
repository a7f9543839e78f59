package users

// Error messages constants
const (
	ErrUserNotFound           = "User not found"
	ErrRoleNotFound           = "Role not found"
	ErrInvalidRequest         = "Invalid request data"
	ErrFailedToHashPassword   = "Failed to hash password"
	ErrFailedToGetUsers       = "Failed to get users"
	ErrFailedToUpdateUser     = "Failed to update user"
	ErrFailedToDeleteUser     = "Failed to delete user"
	ErrFailedToUpdateRoles    = "Failed to update user roles"
	ErrWrongCurrentPassword   = "Current password is incorrect"
	ErrCannotBlockSelf        = "You cannot block your own account"
	ErrCannotDeleteSelf       = "You cannot delete your own account"
	ErrFailedAssociationRoles = "Failed to remove user role associations"
)

// UserIdWithRoles represents a user ID with associated role names for API requests
type UserIdWithRoles struct {
	UserID string   `json:"user_id" binding:"required"`
	Roles  []string `json:"roles" binding:"required"`
}

// PasswordUpdate represents a password update request
type PasswordUpdate struct {
	CurrentPassword string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=8"`
}
