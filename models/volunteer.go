package models

import "time"

type Volunteer struct {
	VolunteerID      uint               `gorm:"primaryKey;autoIncrement" json:"volunteerId"`
	Name             string             `gorm:"not null;size:100" json:"name"`
	Email            string             `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Phone            string             `gorm:"size:20" json:"phone"`
	Role             string             `gorm:"size:50" json:"role"`
	Gender           string             `gorm:"size:10" json:"gender"` // Male, Female
	Birth            Date               `json:"birth"`
	Experience       bool               `json:"experience"`
	AmountVolunteers int                `json:"amountVolunteers"`
	Region           string             `gorm:"size:20" json:"region"` // NORTH, SOUTH, CENTER, JERUSALEM, GENERAL
	PasswordHash     string             `gorm:"not null;size:255" json:"-"`
	ImageVol         string             `gorm:"size:255" json:"imageVol,omitempty"`
	Image            []byte             `gorm:"type:bytea" json:"-"`
	FCMToken         string             `json:"-"`
	Requests         []VolunteerRequest `gorm:"foreignKey:VolunteerID" json:"volunteerRequests"`
	Reviews          []VolunteerReview  `gorm:"foreignKey:VolunteerID" json:"volunteerReview"`
	CreatedAt        time.Time          `json:"-"`
	UpdatedAt        time.Time          `json:"-"`
}

// Signup/login payloads. Password travels only on the way in.
type VolunteerSignupRequest struct {
	Name             string `json:"name" binding:"required"`
	Email            string `json:"email" binding:"required,email"`
	Password         string `json:"password" binding:"required,min=6"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	Gender           string `json:"gender"`
	Birth            Date   `json:"birth" binding:"required"`
	Experience       bool   `json:"experience"`
	AmountVolunteers int    `json:"amountVolunteers" binding:"required"`
	Region           string `json:"region"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateVolunteerRequest struct {
	Name             string `json:"name"`
	Phone            string `json:"phone"`
	Role             string `json:"role"`
	Gender           string `json:"gender"`
	Birth            Date   `json:"birth"`
	Experience       *bool  `json:"experience"`
	AmountVolunteers int    `json:"amountVolunteers"`
	Region           string `json:"region"`
}

type VolunteerAuthResponse struct {
	Token     string    `json:"token"`
	Volunteer Volunteer `json:"volunteer"`
}

// ImageDTO is the payload of the image side-channel (getDto/:id): the entity id
// plus its profile image as base64. List endpoints never carry image bytes.
type ImageDTO struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// VolunteerFilters mirrors the organization search form. Zero values mean
// "filter not set"; MaxAmount/MaxAge of 0 mean unbounded.
type VolunteerFilters struct {
	MinAmount       int    `json:"minAmount"`
	MaxAmount       int    `json:"maxAmount"`
	MinAge          int    `json:"minAge"`
	MaxAge          int    `json:"maxAge"`
	Experience      bool   `json:"experience"`
	Region          string `json:"region"`
	Gender          string `json:"gender"`
	VolunteerTypeID uint   `json:"volunteerTypeId"`
	DayOfWeek       string `json:"dayOfWeek"`     // Hebrew day name, e.g. "שלישי"
	AvailableTime   string `json:"availableTime"` // MORNING, AFTERNOON, EVENING, ALL
}
