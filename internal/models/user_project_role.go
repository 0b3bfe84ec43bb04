package models

type ProjectRole string

const (
	RoleOwner     ProjectRole = "Owner"
	RoleDeveloper ProjectRole = "Developer"
	RoleGuest     ProjectRole = "Guest"
)

// UserProjectRole is the many-to-many membership between users and projects
// with the role the user holds on that project. A user holds at most one
// role per project, enforced by the composite unique index.
type UserProjectRole struct {
	ID        uint64      `gorm:"primarykey" json:"id"`
	UserID    uint64      `gorm:"not null;uniqueIndex:idx_user_project" json:"user_id"`
	ProjectID uint64      `gorm:"not null;uniqueIndex:idx_user_project" json:"project_id"`
	Role      ProjectRole `gorm:"type:varchar(50);not null" json:"role"`
	IsDeleted bool        `gorm:"not null;default:false" json:"-"`

	// Relations
	User    User    `gorm:"foreignKey:UserID" json:"-"`
	Project Project `gorm:"foreignKey:ProjectID" json:"-"`
}
