package services

import (
	"time"
	"volunteermatch-backend/models"
)

// Day names as the search form sends them.
var hebrewWeekdays = map[time.Weekday]string{
	time.Sunday:    "ראשון",
	time.Monday:    "שני",
	time.Tuesday:   "שלישי",
	time.Wednesday: "רביעי",
	time.Thursday:  "חמישי",
	time.Friday:    "שישי",
	time.Saturday:  "שבת",
}

// HebrewWeekday returns the Hebrew name of the date's day of week.
func HebrewWeekday(d models.Date) string {
	return hebrewWeekdays[d.Weekday()]
}

// AgeAt computes age as whole-year subtraction in UTC, not calendar-exact age:
// someone born 2010-12-31 is 14 on 2024-01-01. The matching rules depend on
// this exact arithmetic, so keep it even though it is off by up to a year near
// birthdays.
func AgeAt(birth models.Date, now time.Time) int {
	return now.UTC().Year() - birth.Year()
}

// RequestMatches reports whether a single availability request satisfies the
// request-level search criteria. A locked request (invitationInd) or one whose
// date already passed never matches.
func RequestMatches(req models.VolunteerRequest, f models.VolunteerFilters, today models.Date) bool {
	if req.InvitationInd {
		return false
	}
	if req.AvailableDate.Before(today) {
		return false
	}
	if f.DayOfWeek != "" && HebrewWeekday(req.AvailableDate) != f.DayOfWeek {
		return false
	}
	if f.AvailableTime != "" && req.AvailableTime != f.AvailableTime && req.AvailableTime != "ALL" {
		return false
	}
	if f.VolunteerTypeID != 0 {
		found := false
		for _, t := range req.Types {
			if t.VolunteerTypeID == f.VolunteerTypeID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// FilterRequests keeps the requests matching the criteria, in input order.
func FilterRequests(reqs []models.VolunteerRequest, f models.VolunteerFilters, today models.Date) []models.VolunteerRequest {
	matched := make([]models.VolunteerRequest, 0, len(reqs))
	for _, req := range reqs {
		if RequestMatches(req, f, today) {
			matched = append(matched, req)
		}
	}
	return matched
}

// VolunteerMatches applies the volunteer-level criteria: party size and age
// ranges (zero max means unbounded), experience when demanded, region and
// gender. A volunteer whose region is the literal "ALL" passes any region
// filter.
func VolunteerMatches(v models.Volunteer, f models.VolunteerFilters, now time.Time) bool {
	if v.AmountVolunteers < f.MinAmount {
		return false
	}
	if f.MaxAmount != 0 && v.AmountVolunteers > f.MaxAmount {
		return false
	}
	age := AgeAt(v.Birth, now)
	if age < f.MinAge {
		return false
	}
	if f.MaxAge != 0 && age > f.MaxAge {
		return false
	}
	if f.Experience && !v.Experience {
		return false
	}
	if f.Region != "" && v.Region != "ALL" && v.Region != f.Region {
		return false
	}
	if f.Gender != "" && v.Gender != f.Gender {
		return false
	}
	return true
}

// FilterVolunteers computes the (volunteer, request) pairs the organization
// search shows: volunteers passing the volunteer-level criteria, each carrying
// only their matching requests; volunteers left with no requests drop out.
// Pure and idempotent: filtering an already-filtered roster with the same
// criteria is a no-op.
func FilterVolunteers(vols []models.Volunteer, f models.VolunteerFilters, now time.Time) []models.Volunteer {
	today := models.NewDate(now.UTC().Year(), now.UTC().Month(), now.UTC().Day())

	matched := make([]models.Volunteer, 0, len(vols))
	for _, v := range vols {
		if !VolunteerMatches(v, f, now) {
			continue
		}
		requests := FilterRequests(v.Requests, f, today)
		if len(requests) == 0 {
			continue
		}
		v.Requests = requests
		matched = append(matched, v)
	}
	return matched
}

// EligibleTypes keeps the catalog entries whose age range admits the given
// age; the request form offers only these.
func EligibleTypes(types []models.VolunteerType, age int) []models.VolunteerType {
	eligible := make([]models.VolunteerType, 0, len(types))
	for _, t := range types {
		if t.MinAge <= age && age <= t.MaxAge {
			eligible = append(eligible, t)
		}
	}
	return eligible
}
