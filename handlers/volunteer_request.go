package handlers

import (
	"net/http"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/volunteerRequest/volunteerRequest
func GetVolunteerRequests(c *gin.Context) {
	var requests []models.VolunteerRequest
	if err := database.DB.Preload("Types").Find(&requests).Error; err != nil {
		utils.InternalError(c, "Failed to fetch volunteer requests")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", requests)
}

// GET /api/volunteerRequest/volunteerRequestById/:id
func GetVolunteerRequestByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID")
		return
	}

	var request models.VolunteerRequest
	if err := database.DB.Preload("Types").First(&request, id).Error; err != nil {
		utils.NotFound(c, "Volunteer request not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", request)
}

// POST /api/volunteerRequest/addVolunteerRequest
func CreateVolunteerRequest(c *gin.Context) {
	var req models.CreateVolunteerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.AvailableDate.Before(models.Today()) {
		utils.BadRequest(c, "Available date must not be in the past")
		return
	}

	var volunteer models.Volunteer
	if err := database.DB.First(&volunteer, req.Volunteer.VolunteerID).Error; err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}

	types, err := resolveTypes(req.Types)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	localDate := req.LocalDate
	if localDate.IsZero() {
		localDate = models.Today()
	}

	request := models.VolunteerRequest{
		VolunteerID:   volunteer.VolunteerID,
		Comments:      req.Comments,
		LocalDate:     localDate,
		AvailableTime: req.AvailableTime,
		AvailableDate: req.AvailableDate,
		Types:         types,
		PositionX:     req.PositionX,
		PositionY:     req.PositionY,
	}

	if err := database.DB.Create(&request).Error; err != nil {
		utils.InternalError(c, "Failed to create volunteer request")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Volunteer request created", request)
}

// PUT /api/volunteerRequest/updateVolunteerRequest/:id
func UpdateVolunteerRequest(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID")
		return
	}

	var req models.UpdateVolunteerRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var request models.VolunteerRequest
	if err := database.DB.Preload("Types").First(&request, id).Error; err != nil {
		utils.NotFound(c, "Volunteer request not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Comments != "" {
		updates["comments"] = req.Comments
	}
	if req.AvailableTime != "" {
		updates["available_time"] = req.AvailableTime
	}
	if !req.AvailableDate.IsZero() {
		updates["available_date"] = req.AvailableDate.Time
	}
	if req.PositionX != 0 {
		updates["position_x"] = req.PositionX
	}
	if req.PositionY != 0 {
		updates["position_y"] = req.PositionY
	}
	if req.InvitationInd != nil {
		updates["invitation_ind"] = *req.InvitationInd
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&request).Updates(updates).Error; err != nil {
			utils.InternalError(c, "Failed to update volunteer request")
			return
		}
	}

	if len(req.Types) > 0 {
		types, err := resolveTypes(req.Types)
		if err != nil {
			utils.BadRequest(c, err.Error())
			return
		}
		if err := database.DB.Model(&request).Association("Types").Replace(types); err != nil {
			utils.InternalError(c, "Failed to update volunteer types")
			return
		}
		request.Types = types
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer request updated", request)
}

// DELETE /api/volunteerRequest/deleteVolunteerRequests/:id
func DeleteVolunteerRequest(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid request ID")
		return
	}

	if err := database.DB.Delete(&models.VolunteerRequest{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete volunteer request")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer request deleted", nil)
}

func resolveTypes(refs []models.VolunteerTypeRef) ([]models.VolunteerType, error) {
	if len(refs) == 0 {
		return nil, nil
	}

	ids := make([]uint, 0, len(refs))
	for _, ref := range refs {
		if ref.VolunteerTypeID != 0 {
			ids = append(ids, ref.VolunteerTypeID)
		}
	}

	var types []models.VolunteerType
	if err := database.DB.Where("volunteer_type_id IN ?", ids).Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}
