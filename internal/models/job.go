package models

import (
	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	OrganizationID string `gorm:"type:uuid;not null;index"`
	Title          string `gorm:"not null"`
	Description    string
	Location       string
	JobType        string
	SalaryMin      *float64
	SalaryMax      *float64
	Skills         datatypes.JSON `gorm:"type:jsonb"`
	Status         JobStatus      `gorm:"type:varchar(20);default:'open'"`

	Organization *Organization `gorm:"foreignKey:OrganizationID"`
}
