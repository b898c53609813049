package handlers

import (
	"errors"
	"net/http"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/services"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/volunteerReview/volunteerReview
func GetReviews(c *gin.Context) {
	var reviews []models.VolunteerReview
	err := database.DB.
		Preload("Organization").
		Preload("Volunteer").
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		utils.InternalError(c, "Failed to fetch reviews")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", reviews)
}

// GET /api/volunteerReview/volunteerReviewById/:id
func GetReviewByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review ID")
		return
	}

	var review models.VolunteerReview
	err = database.DB.
		Preload("Organization").
		Preload("Volunteer").
		First(&review, id).Error
	if err != nil {
		utils.NotFound(c, "Review not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", review)
}

// POST /api/volunteerReview/addVolunteerReview
//
// When the review is tied to an invitation, the invitation must be
// COMPLETED and not yet reviewed; writing the review flips its reviewInd
// so a second review cannot be filed for the same activity.
func CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var organization models.Organization
	if err := database.DB.First(&organization, req.Organization.OrganizationID).Error; err != nil {
		utils.NotFound(c, "Organization not found")
		return
	}

	var volunteer models.Volunteer
	if err := database.DB.First(&volunteer, req.Volunteer.VolunteerID).Error; err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}

	review := models.VolunteerReview{
		OrganizationID: organization.OrganizationID,
		VolunteerID:    volunteer.VolunteerID,
		Comment:        req.Comment,
		Likes:          req.Likes,
	}

	// Eligibility is re-checked inside the transaction so two submissions
	// racing for the same invitation cannot both insert, and a failed
	// insert never leaves the flag flipped.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.InvitationID != 0 {
			var invitation models.VolunteerInvitation
			if err := tx.First(&invitation, req.InvitationID).Error; err != nil {
				return errInvitationNotFound
			}
			if !services.ReviewEligible(invitation) {
				return errNotReviewable
			}
			if err := tx.Model(&invitation).Update("review_ind", true).Error; err != nil {
				return err
			}
		}
		return tx.Create(&review).Error
	})
	if err != nil {
		switch err {
		case errInvitationNotFound:
			utils.NotFound(c, "Invitation not found")
		case errNotReviewable:
			utils.Conflict(c, "Invitation is not eligible for review")
		default:
			utils.InternalError(c, "Failed to create review")
		}
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Review created", review)
}

var (
	errInvitationNotFound = errors.New("invitation not found")
	errNotReviewable      = errors.New("invitation not eligible for review")
)

// DELETE /api/volunteerReview/deleteVolunteerReviews/:id
func DeleteReview(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid review ID")
		return
	}

	if err := database.DB.Delete(&models.VolunteerReview{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete review")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Review deleted", nil)
}
