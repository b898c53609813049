package models

// VolunteerType is a catalog entry: a topic of volunteering bounded by the age
// range eligible for it. Managed by administrators, read-only for the apps.
type VolunteerType struct {
	VolunteerTypeID uint   `gorm:"primaryKey;autoIncrement" json:"volunteerTypeId"`
	Name            string `gorm:"not null;size:100" json:"name"`
	MinAge          int    `json:"minAge"`
	MaxAge          int    `json:"maxAge"`
	Topic           string `gorm:"size:50" json:"topic,omitempty"`
}

type VolunteerTypeRequest struct {
	Name   string `json:"name" binding:"required"`
	MinAge int    `json:"minAge" binding:"min=0"`
	MaxAge int    `json:"maxAge" binding:"min=0"`
	Topic  string `json:"topic"`
}
