package db_models

const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "superadmin"
)

type Account struct {
	BaseModel
	Name         string `json:"name"`
	Email        string `gorm:"unique" json:"email"`
	PasswordHash string `json:"-"`
	Phone        string `json:"phone"`
	Role         string `gorm:"default:user;index" json:"role"`

	Orders []Order `gorm:"foreignKey:UserID" json:"-"`
}

// IsStaffRole reports whether a role may use back-office endpoints.
func IsStaffRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
