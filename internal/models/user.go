package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null"`
	Username     string   `gorm:"not null"`
	PasswordHash string   `gorm:"not null"`
	Role         UserRole `gorm:"type:varchar(20);not null"`

	// Relations. Exactly one of the two profiles exists, matching the role;
	// admins have neither.
	HostProfile      *HostProfile      `gorm:"foreignKey:UserID"`
	PerformerProfile *PerformerProfile `gorm:"foreignKey:UserID"`
}
