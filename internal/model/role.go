package model

const (
	// RoleAdmin is the administrative role name.
	RoleAdmin = "Admin"
	// RoleUser is the default role assigned at registration.
	RoleUser = "User"
)

// Role is a named authorization role. The seed set is fixed: {Admin, User}.
type Role struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"uniqueIndex;size:50;not null"`
}
