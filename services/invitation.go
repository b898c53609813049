package services

import (
	"fmt"
	"log"
	"time"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
)

// CanTransition reports whether an invitation may move between the two
// statuses. Keeping the same status is always allowed so full-object updates
// (address edits, reviewInd) pass through.
func CanTransition(from, to string) bool {
	if from == to {
		return true
	}
	switch from {
	case models.StatusPending:
		return to == models.StatusAccepted || to == models.StatusRejected
	case models.StatusAccepted:
		return to == models.StatusCompleted
	default:
		return false
	}
}

// SweptStatus returns the status a past-due invitation advances to: an
// unanswered invitation expires to REJECTED, an accepted one is assumed to
// have happened and moves to COMPLETED. Future dates and terminal statuses
// are untouched.
func SweptStatus(status string, date models.Date, today models.Date) (string, bool) {
	if !date.Before(today) {
		return status, false
	}
	switch status {
	case models.StatusPending:
		return models.StatusRejected, true
	case models.StatusAccepted:
		return models.StatusCompleted, true
	default:
		return status, false
	}
}

// ReviewEligible reports whether the organization may still write the single
// review a completed invitation unlocks.
func ReviewEligible(inv models.VolunteerInvitation) bool {
	return inv.Status == models.StatusCompleted && !inv.ReviewInd
}

// GroupByStatus partitions invitations into display buckets. Order within a
// bucket follows input order; the grouping has no semantic effect.
func GroupByStatus(invs []models.VolunteerInvitation) map[string][]models.VolunteerInvitation {
	groups := make(map[string][]models.VolunteerInvitation)
	for _, inv := range invs {
		groups[inv.Status] = append(groups[inv.Status], inv)
	}
	return groups
}

// TransitionInvitation moves an invitation to a new status, stamps the
// response time when it leaves PENDING, writes the audit row, and on
// rejection releases the originating request so other organizations see it
// again.
func TransitionInvitation(inv *models.VolunteerInvitation, to string, swept bool) error {
	from := inv.Status
	if from == to {
		return nil
	}
	if !CanTransition(from, to) {
		return fmt.Errorf("invalid status transition %s -> %s", from, to)
	}

	updates := map[string]interface{}{"status": to}
	if from == models.StatusPending {
		now := time.Now()
		updates["response_time"] = &now
	}
	if err := database.DB.Model(inv).Updates(updates).Error; err != nil {
		return err
	}
	inv.Status = to

	if to == models.StatusRejected && inv.RequestID != nil {
		if err := database.DB.Model(&models.VolunteerRequest{}).
			Where("request_id = ?", *inv.RequestID).
			Update("invitation_ind", false).Error; err != nil {
			return err
		}
	}

	change := models.InvitationStatusChange{
		InvitationID: inv.InvitationID,
		FromStatus:   from,
		ToStatus:     to,
		Swept:        swept,
	}
	if err := database.DB.Create(&change).Error; err != nil {
		log.Printf("⚠️  Failed to record status change for invitation %d: %v", inv.InvitationID, err)
	}
	return nil
}

// SweepInvitations advances every past-due invitation. It runs when the
// invitation list is loaded, not on a timer: state only moves forward when
// somebody looks, matching how the apps behave.
func SweepInvitations(now time.Time) error {
	today := models.NewDate(now.UTC().Year(), now.UTC().Month(), now.UTC().Day())

	var pastDue []models.VolunteerInvitation
	err := database.DB.
		Where("status IN ?", []string{models.StatusPending, models.StatusAccepted}).
		Where("invitation_date < ?", today.Time).
		Find(&pastDue).Error
	if err != nil {
		return err
	}

	for i := range pastDue {
		inv := &pastDue[i]
		if next, changed := SweptStatus(inv.Status, inv.InvitationDate, today); changed {
			if err := TransitionInvitation(inv, next, true); err != nil {
				return err
			}
		}
	}
	return nil
}
