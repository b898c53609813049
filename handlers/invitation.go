package handlers

import (
	"errors"
	"net/http"
	"time"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/services"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /api/volunteerInvitation/volunteerInvitation
//
// Loading the list is what advances past-due invitations: the sweep runs
// here, then the fresh state is returned.
func GetInvitations(c *gin.Context) {
	if err := services.SweepInvitations(time.Now()); err != nil {
		utils.InternalError(c, "Failed to sweep invitations")
		return
	}

	var invitations []models.VolunteerInvitation
	err := database.DB.
		Preload("Volunteer").
		Preload("Organization").
		Preload("VolunteerType").
		Preload("Request").
		Find(&invitations).Error
	if err != nil {
		utils.InternalError(c, "Failed to fetch invitations")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", invitations)
}

// GET /api/volunteerInvitation/volunteerInvitationById/:id
func GetInvitationByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invitation ID")
		return
	}

	var invitation models.VolunteerInvitation
	err = database.DB.
		Preload("Volunteer").
		Preload("Organization").
		Preload("VolunteerType").
		Preload("Request").
		First(&invitation, id).Error
	if err != nil {
		utils.NotFound(c, "Invitation not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", invitation)
}

// POST /api/volunteerInvitation/addVolunteerInvitation
func CreateInvitation(c *gin.Context) {
	var req models.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var volunteer models.Volunteer
	if err := database.DB.First(&volunteer, req.Volunteer.VolunteerID).Error; err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}

	var organization models.Organization
	if err := database.DB.First(&organization, req.Organization.OrganizationID).Error; err != nil {
		utils.NotFound(c, "Organization not found")
		return
	}

	invitation := models.VolunteerInvitation{
		VolunteerID:     volunteer.VolunteerID,
		OrganizationID:  organization.OrganizationID,
		InvitationDate:  req.InvitationDate,
		RequestTime:     time.Now(),
		Address:         req.Address,
		ActivityDetails: req.ActivityDetails,
		Requirements:    req.Requirements,
		Status:          models.StatusPending,
	}

	if req.VolunteerType.VolunteerTypeID != 0 {
		typeID := req.VolunteerType.VolunteerTypeID
		invitation.VolunteerTypeID = &typeID
	}

	// Creating the invitation and locking the originating request must be
	// atomic: two organizations racing for one request cannot both win.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if req.Request != nil && req.Request.RequestID != 0 {
			var request models.VolunteerRequest
			if err := tx.First(&request, req.Request.RequestID).Error; err != nil {
				return errRequestNotFound
			}
			if request.InvitationInd {
				return errRequestTaken
			}
			if err := tx.Model(&request).Update("invitation_ind", true).Error; err != nil {
				return err
			}
			requestID := request.RequestID
			invitation.RequestID = &requestID
		}
		return tx.Create(&invitation).Error
	})
	if err != nil {
		switch err {
		case errRequestTaken:
			utils.Conflict(c, "The request is already taken")
		case errRequestNotFound:
			utils.NotFound(c, "Volunteer request not found")
		default:
			utils.InternalError(c, "Failed to create invitation")
		}
		return
	}

	go services.GetNotificationService().NotifyInvitationCreated(volunteer, organization, invitation)

	utils.SuccessResponse(c, http.StatusCreated, "Invitation created", invitation)
}

var (
	errRequestTaken    = errors.New("request already taken")
	errRequestNotFound = errors.New("request not found")
)

// PUT /api/volunteerInvitation/updateVolunteerInvitation/:id
func UpdateInvitation(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invitation ID")
		return
	}

	var req models.UpdateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var invitation models.VolunteerInvitation
	if err := database.DB.First(&invitation, id).Error; err != nil {
		utils.NotFound(c, "Invitation not found")
		return
	}

	if req.Status != "" && req.Status != invitation.Status {
		if !services.CanTransition(invitation.Status, req.Status) {
			utils.BadRequest(c, "Invalid status transition")
			return
		}
		if err := services.TransitionInvitation(&invitation, req.Status, false); err != nil {
			utils.InternalError(c, "Failed to update invitation status")
			return
		}
	}

	updates := map[string]interface{}{}
	if !req.InvitationDate.IsZero() {
		updates["invitation_date"] = req.InvitationDate
	}
	if req.Address != "" {
		updates["address"] = req.Address
	}
	if req.ActivityDetails != "" {
		updates["activity_details"] = req.ActivityDetails
	}
	if req.Requirements != "" {
		updates["requirements"] = req.Requirements
	}
	if req.ReviewInd != nil {
		updates["review_ind"] = *req.ReviewInd
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&invitation).Updates(updates).Error; err != nil {
			utils.InternalError(c, "Failed to update invitation")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation updated", invitation)
}

// DELETE /api/volunteerInvitation/deleteVolunteerInvitations/:id
func DeleteInvitation(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invitation ID")
		return
	}

	if err := database.DB.Delete(&models.VolunteerInvitation{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete invitation")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Invitation deleted", nil)
}

// GET /api/volunteerInvitation/statusHistory/:id
func GetInvitationStatusHistory(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid invitation ID")
		return
	}

	var changes []models.InvitationStatusChange
	if err := database.DB.Where("invitation_id = ?", id).Order("created_at").Find(&changes).Error; err != nil {
		utils.InternalError(c, "Failed to fetch status history")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", changes)
}
