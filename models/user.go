package models

// Roles assignable to a user. The UID is issued by the external auth
// provider; the role is assigned out of band.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

// User represents an authenticated account known to the showcase
type User struct {
	UID  string `json:"uid" db:"uid" gorm:"column:uid;type:varchar(255);primaryKey"`
	Role string `json:"userRole" db:"user_role" gorm:"column:user_role;type:varchar(50);not null;default:user"`
}

func (User) TableName() string { return "users" }

// IsAdmin reports whether the user may moderate projects they do not own.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}
