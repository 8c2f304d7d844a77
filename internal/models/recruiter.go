package models

// Recruiter accounts are created by administrators; they authenticate
// with a password and carry no status machine beyond the active flag.
type Recruiter struct {
	BaseModel
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	FirstName    string
	LastName     string
	IsActive     bool `gorm:"default:true"`
}
