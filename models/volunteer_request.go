package models

import "time"

// VolunteerRequest is an availability slot a volunteer offers. Once an
// invitation targets it, InvitationInd locks it away from other organizations
// until the invitation is rejected.
type VolunteerRequest struct {
	RequestID     uint            `gorm:"primaryKey;autoIncrement" json:"requestId"`
	VolunteerID   uint            `gorm:"index;not null" json:"volunteerId"`
	Comments      string          `json:"comments"`
	LocalDate     Date            `json:"localDate"`
	AvailableTime string          `gorm:"size:20" json:"availableTime"` // MORNING, AFTERNOON, EVENING, ALL
	AvailableDate Date            `json:"availableDate"`
	Types         []VolunteerType `gorm:"many2many:request_volunteer_types" json:"volunteerTypes"`
	PositionX     float64         `json:"positionX"`
	PositionY     float64         `json:"positionY"`
	InvitationInd bool            `json:"invitationInd"`
	CreatedAt     time.Time       `json:"-"`
	UpdatedAt     time.Time       `json:"-"`
}

type VolunteerRef struct {
	VolunteerID uint `json:"volunteerId" binding:"required"`
}

type OrganizationRef struct {
	OrganizationID uint `json:"organizationId" binding:"required"`
}

type VolunteerTypeRef struct {
	VolunteerTypeID uint `json:"volunteerTypeId"`
}

type RequestRef struct {
	RequestID uint `json:"requestId"`
}

type CreateVolunteerRequestRequest struct {
	Volunteer     VolunteerRef       `json:"volunteer" binding:"required"`
	Comments      string             `json:"comments"`
	LocalDate     Date               `json:"localDate"`
	AvailableTime string             `json:"availableTime" binding:"required,oneof=MORNING AFTERNOON EVENING ALL"`
	AvailableDate Date               `json:"availableDate" binding:"required"`
	Types         []VolunteerTypeRef `json:"volunteerTypes"`
	PositionX     float64            `json:"positionX"`
	PositionY     float64            `json:"positionY"`
}

type UpdateVolunteerRequestRequest struct {
	Comments      string             `json:"comments"`
	AvailableTime string             `json:"availableTime"`
	AvailableDate Date               `json:"availableDate"`
	Types         []VolunteerTypeRef `json:"volunteerTypes"`
	PositionX     float64            `json:"positionX"`
	PositionY     float64            `json:"positionY"`
	InvitationInd *bool              `json:"invitationInd"`
}
