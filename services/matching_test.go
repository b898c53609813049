package services

import (
	"testing"
	"time"
	"volunteermatch-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAgeAt(t *testing.T) {
	tests := []struct {
		name  string
		birth models.Date
		now   time.Time
		want  int
	}{
		{
			name:  "whole-year subtraction ignores month and day",
			birth: models.NewDate(2010, time.December, 31),
			now:   time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
			want:  14,
		},
		{
			name:  "birthday not yet reached this year still counts",
			birth: models.NewDate(2000, time.June, 15),
			now:   time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
			want:  24,
		},
		{
			name:  "same year",
			birth: models.NewDate(2024, time.March, 1),
			now:   time.Date(2024, time.November, 1, 0, 0, 0, 0, time.UTC),
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AgeAt(tt.birth, tt.now))
		})
	}
}

func TestHebrewWeekday(t *testing.T) {
	// 2024-01-02 is a Tuesday.
	assert.Equal(t, "שלישי", HebrewWeekday(models.NewDate(2024, time.January, 2)))
	assert.Equal(t, "ראשון", HebrewWeekday(models.NewDate(2024, time.January, 7)))
	assert.Equal(t, "שבת", HebrewWeekday(models.NewDate(2024, time.January, 6)))
}

func TestRequestMatches(t *testing.T) {
	today := models.NewDate(2024, time.January, 1)
	base := models.VolunteerRequest{
		AvailableDate: models.NewDate(2024, time.January, 2), // Tuesday
		AvailableTime: "MORNING",
		Types:         []models.VolunteerType{{VolunteerTypeID: 3}},
	}

	t.Run("matches day, time and type", func(t *testing.T) {
		f := models.VolunteerFilters{DayOfWeek: "שלישי", AvailableTime: "MORNING", VolunteerTypeID: 3}
		assert.True(t, RequestMatches(base, f, today))
	})

	t.Run("locked request never matches", func(t *testing.T) {
		locked := base
		locked.InvitationInd = true
		assert.False(t, RequestMatches(locked, models.VolunteerFilters{}, today))
	})

	t.Run("past request never matches", func(t *testing.T) {
		past := base
		past.AvailableDate = models.NewDate(2023, time.December, 31)
		assert.False(t, RequestMatches(past, models.VolunteerFilters{}, today))
	})

	t.Run("wrong day", func(t *testing.T) {
		f := models.VolunteerFilters{DayOfWeek: "שני"}
		assert.False(t, RequestMatches(base, f, today))
	})

	t.Run("ALL time bucket matches any time filter", func(t *testing.T) {
		anytime := base
		anytime.AvailableTime = "ALL"
		f := models.VolunteerFilters{AvailableTime: "EVENING"}
		assert.True(t, RequestMatches(anytime, f, today))
	})

	t.Run("wrong time bucket", func(t *testing.T) {
		f := models.VolunteerFilters{AvailableTime: "EVENING"}
		assert.False(t, RequestMatches(base, f, today))
	})

	t.Run("missing type", func(t *testing.T) {
		f := models.VolunteerFilters{VolunteerTypeID: 99}
		assert.False(t, RequestMatches(base, f, today))
	})
}

func TestVolunteerMatches(t *testing.T) {
	now := time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC)
	base := models.Volunteer{
		AmountVolunteers: 5,
		Birth:            models.NewDate(2000, time.June, 15), // age 24
		Experience:       false,
		Region:           "NORTH",
		Gender:           "Female",
	}

	t.Run("zero filters match everyone", func(t *testing.T) {
		assert.True(t, VolunteerMatches(base, models.VolunteerFilters{}, now))
	})

	t.Run("amount range", func(t *testing.T) {
		assert.True(t, VolunteerMatches(base, models.VolunteerFilters{MinAmount: 5, MaxAmount: 5}, now))
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{MinAmount: 6}, now))
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{MaxAmount: 4}, now))
	})

	t.Run("zero max means unbounded", func(t *testing.T) {
		big := base
		big.AmountVolunteers = 1000
		assert.True(t, VolunteerMatches(big, models.VolunteerFilters{MaxAmount: 0}, now))
		assert.True(t, VolunteerMatches(base, models.VolunteerFilters{MaxAge: 0}, now))
	})

	t.Run("age range", func(t *testing.T) {
		assert.True(t, VolunteerMatches(base, models.VolunteerFilters{MinAge: 24, MaxAge: 24}, now))
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{MinAge: 25}, now))
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{MaxAge: 23}, now))
	})

	t.Run("experience demanded", func(t *testing.T) {
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{Experience: true}, now))
		exp := base
		exp.Experience = true
		assert.True(t, VolunteerMatches(exp, models.VolunteerFilters{Experience: true}, now))
	})

	t.Run("region ALL passes any region filter", func(t *testing.T) {
		anywhere := base
		anywhere.Region = "ALL"
		assert.True(t, VolunteerMatches(anywhere, models.VolunteerFilters{Region: "SOUTH"}, now))
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{Region: "SOUTH"}, now))
	})

	t.Run("gender", func(t *testing.T) {
		assert.False(t, VolunteerMatches(base, models.VolunteerFilters{Gender: "Male"}, now))
		assert.True(t, VolunteerMatches(base, models.VolunteerFilters{Gender: "Female"}, now))
	})
}

func TestFilterVolunteers(t *testing.T) {
	now := time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)
	tuesday := models.NewDate(2024, time.January, 2)
	wednesday := models.NewDate(2024, time.January, 3)

	vols := []models.Volunteer{
		{
			VolunteerID:      1,
			AmountVolunteers: 3,
			Birth:            models.NewDate(2004, time.May, 1),
			Region:           "NORTH",
			Requests: []models.VolunteerRequest{
				{RequestID: 10, AvailableDate: tuesday, AvailableTime: "MORNING", Types: []models.VolunteerType{{VolunteerTypeID: 3}}},
				{RequestID: 11, AvailableDate: wednesday, AvailableTime: "MORNING", Types: []models.VolunteerType{{VolunteerTypeID: 3}}},
			},
		},
		{
			VolunteerID:      2,
			AmountVolunteers: 3,
			Birth:            models.NewDate(2004, time.May, 1),
			Region:           "NORTH",
			Requests: []models.VolunteerRequest{
				// Locked, so volunteer 2 drops out entirely.
				{RequestID: 20, AvailableDate: tuesday, AvailableTime: "MORNING", InvitationInd: true, Types: []models.VolunteerType{{VolunteerTypeID: 3}}},
			},
		},
	}

	f := models.VolunteerFilters{DayOfWeek: "שלישי", VolunteerTypeID: 3}
	got := FilterVolunteers(vols, f, now)

	require.Len(t, got, 1)
	assert.Equal(t, uint(1), got[0].VolunteerID)
	require.Len(t, got[0].Requests, 1)
	assert.Equal(t, uint(10), got[0].Requests[0].RequestID)

	t.Run("idempotent", func(t *testing.T) {
		again := FilterVolunteers(got, f, now)
		assert.Equal(t, got, again)
	})

	t.Run("input untouched", func(t *testing.T) {
		assert.Len(t, vols[0].Requests, 2)
	})
}

func TestEligibleTypes(t *testing.T) {
	types := []models.VolunteerType{
		{VolunteerTypeID: 1, MinAge: 10, MaxAge: 18},
		{VolunteerTypeID: 2, MinAge: 18, MaxAge: 80},
		{VolunteerTypeID: 3, MinAge: 25, MaxAge: 40},
	}

	got := EligibleTypes(types, 18)
	require.Len(t, got, 2)
	assert.Equal(t, uint(1), got[0].VolunteerTypeID)
	assert.Equal(t, uint(2), got[1].VolunteerTypeID)

	assert.Empty(t, EligibleTypes(types, 90))
}
