package db_models

type User struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string `gorm:"size:100"`
	LastName     string `gorm:"size:100"`

	Trips   []Trip       `gorm:"constraint:OnDelete:CASCADE"`
	Profile *UserProfile `gorm:"constraint:OnDelete:CASCADE"`
}
