package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Invitation status values. PENDING may move to ACCEPTED or REJECTED,
// ACCEPTED may move to COMPLETED; REJECTED and COMPLETED are terminal.
const (
	StatusPending   = "PENDING"
	StatusAccepted  = "ACCEPTED"
	StatusRejected  = "REJECTED"
	StatusCompleted = "COMPLETED"
)

type VolunteerInvitation struct {
	InvitationID    uint              `gorm:"primaryKey;autoIncrement" json:"invitationId"`
	VolunteerID     uint              `gorm:"index;not null" json:"-"`
	Volunteer       *Volunteer        `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	OrganizationID  uint              `gorm:"index;not null" json:"-"`
	Organization    *Organization     `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	RequestID       *uint             `gorm:"index" json:"-"`
	Request         *VolunteerRequest `gorm:"foreignKey:RequestID" json:"volunteerRequest,omitempty"`
	InvitationDate  Date              `json:"invitationDate"`
	RequestTime     time.Time         `json:"requestTime"`
	ResponseTime    *time.Time        `json:"responseTime"`
	Address         string            `gorm:"size:255" json:"address"`
	ActivityDetails string            `json:"activityDetails"`
	Requirements    string            `json:"requirements"`
	VolunteerTypeID *uint             `json:"-"`
	VolunteerType   *VolunteerType    `gorm:"foreignKey:VolunteerTypeID" json:"volunteerType,omitempty"`
	Status          string            `gorm:"default:PENDING;size:20" json:"status"`
	ReviewInd       bool              `json:"reviewInd"`
	CreatedAt       time.Time         `json:"-"`
	UpdatedAt       time.Time         `json:"-"`
}

// InvitationStatusChange is an audit row written for every status transition,
// whether user-initiated or produced by the past-due sweep.
type InvitationStatusChange struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	InvitationID uint      `gorm:"index;not null" json:"invitationId"`
	FromStatus   string    `gorm:"size:20" json:"fromStatus"`
	ToStatus     string    `gorm:"size:20" json:"toStatus"`
	Swept        bool      `json:"swept"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (sc *InvitationStatusChange) BeforeCreate(tx *gorm.DB) error {
	if sc.ID == uuid.Nil {
		sc.ID = uuid.New()
	}
	return nil
}

type CreateInvitationRequest struct {
	Volunteer       VolunteerRef     `json:"volunteer" binding:"required"`
	Organization    OrganizationRef  `json:"organization" binding:"required"`
	Request         *RequestRef      `json:"volunteerRequest"`
	InvitationDate  Date             `json:"invitationDate" binding:"required"`
	Address         string           `json:"address"`
	ActivityDetails string           `json:"activityDetails"`
	Requirements    string           `json:"requirements"`
	VolunteerType   VolunteerTypeRef `json:"volunteerType"`
}

type UpdateInvitationRequest struct {
	InvitationDate  Date   `json:"invitationDate"`
	Address         string `json:"address"`
	ActivityDetails string `json:"activityDetails"`
	Requirements    string `json:"requirements"`
	Status          string `json:"status" binding:"omitempty,oneof=PENDING ACCEPTED REJECTED COMPLETED"`
	ReviewInd       *bool  `json:"reviewInd"`
}
