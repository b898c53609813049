package services

import (
	"testing"
	"time"
	"volunteermatch-backend/models"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to string
		want     bool
	}{
		{models.StatusPending, models.StatusAccepted, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusPending, models.StatusCompleted, false},
		{models.StatusAccepted, models.StatusCompleted, true},
		{models.StatusAccepted, models.StatusRejected, false},
		{models.StatusAccepted, models.StatusPending, false},
		{models.StatusRejected, models.StatusAccepted, false},
		{models.StatusCompleted, models.StatusPending, false},
		// Same-status passes so full-object updates are not rejected.
		{models.StatusCompleted, models.StatusCompleted, true},
		{models.StatusPending, models.StatusPending, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestSweptStatus(t *testing.T) {
	today := models.NewDate(2024, time.June, 10)
	past := models.NewDate(2024, time.June, 9)
	future := models.NewDate(2024, time.June, 11)

	t.Run("past-due pending expires to rejected", func(t *testing.T) {
		next, changed := SweptStatus(models.StatusPending, past, today)
		assert.True(t, changed)
		assert.Equal(t, models.StatusRejected, next)
	})

	t.Run("past-due accepted completes", func(t *testing.T) {
		next, changed := SweptStatus(models.StatusAccepted, past, today)
		assert.True(t, changed)
		assert.Equal(t, models.StatusCompleted, next)
	})

	t.Run("today is not past due", func(t *testing.T) {
		_, changed := SweptStatus(models.StatusPending, today, today)
		assert.False(t, changed)
	})

	t.Run("future dates untouched", func(t *testing.T) {
		_, changed := SweptStatus(models.StatusAccepted, future, today)
		assert.False(t, changed)
	})

	t.Run("terminal statuses untouched", func(t *testing.T) {
		_, changed := SweptStatus(models.StatusRejected, past, today)
		assert.False(t, changed)
		_, changed = SweptStatus(models.StatusCompleted, past, today)
		assert.False(t, changed)
	})
}

func TestReviewEligible(t *testing.T) {
	assert.True(t, ReviewEligible(models.VolunteerInvitation{Status: models.StatusCompleted}))
	assert.False(t, ReviewEligible(models.VolunteerInvitation{Status: models.StatusCompleted, ReviewInd: true}))
	assert.False(t, ReviewEligible(models.VolunteerInvitation{Status: models.StatusAccepted}))
	assert.False(t, ReviewEligible(models.VolunteerInvitation{Status: models.StatusPending}))
}

func TestGroupByStatus(t *testing.T) {
	invs := []models.VolunteerInvitation{
		{InvitationID: 1, Status: models.StatusPending},
		{InvitationID: 2, Status: models.StatusCompleted},
		{InvitationID: 3, Status: models.StatusPending},
	}

	groups := GroupByStatus(invs)
	assert.Len(t, groups, 2)
	assert.Len(t, groups[models.StatusPending], 2)
	assert.Equal(t, uint(1), groups[models.StatusPending][0].InvitationID)
	assert.Equal(t, uint(3), groups[models.StatusPending][1].InvitationID)
	assert.Len(t, groups[models.StatusCompleted], 1)
}
