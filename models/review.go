package models

import "time"

// VolunteerReview is one organization's feedback on a volunteer after a
// completed invitation. Immutable once written.
type VolunteerReview struct {
	ReviewID       uint          `gorm:"primaryKey;autoIncrement" json:"reviewId"`
	OrganizationID uint          `gorm:"index;not null" json:"-"`
	Organization   *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	VolunteerID    uint          `gorm:"index;not null" json:"-"`
	Volunteer      *Volunteer    `gorm:"foreignKey:VolunteerID" json:"volunteer,omitempty"`
	Comment        string        `json:"comment"`
	Likes          int           `json:"likes"` // 0-5
	CreatedAt      time.Time     `json:"-"`
}

type CreateReviewRequest struct {
	Organization OrganizationRef `json:"organization" binding:"required"`
	Volunteer    VolunteerRef    `json:"volunteer" binding:"required"`
	InvitationID uint            `json:"invitationId"`
	Comment      string          `json:"comment"`
	Likes        int             `json:"likes" binding:"min=0,max=5"`
}
