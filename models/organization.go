package models

import "time"

type Organization struct {
	OrganizationID       uint      `gorm:"primaryKey;autoIncrement" json:"organizationId"`
	Name                 string    `gorm:"not null;size:100" json:"name"`
	Email                string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Phone                string    `gorm:"size:20" json:"phone"`
	OrgGoals             string    `json:"orgGoals"`
	RecommendationPhones string    `gorm:"size:255" json:"recommendationPhones"`
	Region               string    `gorm:"size:20" json:"region"`
	PasswordHash         string    `gorm:"not null;size:255" json:"-"`
	ImageOrg             string    `gorm:"size:255" json:"imageOrg,omitempty"`
	Image                []byte    `gorm:"type:bytea" json:"-"`
	CreatedAt            time.Time `json:"-"`
	UpdatedAt            time.Time `json:"-"`
}

type OrganizationSignupRequest struct {
	Name                 string `json:"name" binding:"required"`
	Email                string `json:"email" binding:"required,email"`
	Password             string `json:"password" binding:"required,min=6"`
	Phone                string `json:"phone"`
	OrgGoals             string `json:"orgGoals"`
	RecommendationPhones string `json:"recommendationPhones"`
	Region               string `json:"region"`
}

type UpdateOrganizationRequest struct {
	Name                 string `json:"name"`
	Phone                string `json:"phone"`
	OrgGoals             string `json:"orgGoals"`
	RecommendationPhones string `json:"recommendationPhones"`
	Region               string `json:"region"`
}

type OrganizationAuthResponse struct {
	Token        string       `json:"token"`
	Organization Organization `json:"organization"`
}
