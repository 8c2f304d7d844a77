package models

import "time"

// Organization is a client or vendor account. Login is password based and
// gated on Status; the OTP pair here is the password-reset secret, never a
// login credential.
type Organization struct {
	BaseModel
	Email        string             `gorm:"uniqueIndex;not null"`
	PasswordHash string             `gorm:"not null"`
	Name         string             `gorm:"not null"`
	Kind         OrganizationKind   `gorm:"type:varchar(20);not null"`
	Status       OrganizationStatus `gorm:"type:varchar(20);default:'registered'"`
	Phone        string
	City         string
	Website      string
	LogoKey      string

	Otp          string
	OtpExpiresAt *time.Time

	Jobs []Job `gorm:"foreignKey:OrganizationID"`
}
