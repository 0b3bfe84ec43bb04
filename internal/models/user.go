package models

// User has no timestamp columns; only projects and tasks track update times.
type User struct {
	ID           uint64 `gorm:"primarykey" json:"id"`
	FirstName    string `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName     string `gorm:"type:varchar(255);not null" json:"last_name"`
	Username     string `gorm:"type:varchar(255);not null" json:"username"`
	Email        string `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"type:varchar(255);not null" json:"-"`
	Role         string `gorm:"type:varchar(100)" json:"role"`
	IsDeleted    bool   `gorm:"not null;default:false" json:"-"`

	// Relations
	AssignedTasks []Task            `gorm:"foreignKey:AssignedTo" json:"-"`
	Memberships   []UserProjectRole `gorm:"foreignKey:UserID" json:"-"`
}
