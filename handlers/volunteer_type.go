package handlers

import (
	"net/http"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
)

// GET /api/volunteerType/volunteerType
func GetVolunteerTypes(c *gin.Context) {
	var types []models.VolunteerType
	if err := database.DB.Order("volunteer_type_id").Find(&types).Error; err != nil {
		utils.InternalError(c, "Failed to fetch volunteer types")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", types)
}

// GET /api/volunteerType/volunteerTypeById/:id
func GetVolunteerTypeByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer type ID")
		return
	}

	var volunteerType models.VolunteerType
	if err := database.DB.First(&volunteerType, id).Error; err != nil {
		utils.NotFound(c, "Volunteer type not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", volunteerType)
}

// POST /api/volunteerType/addVolunteerTypes
func CreateVolunteerType(c *gin.Context) {
	var req models.VolunteerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	if req.MaxAge < req.MinAge {
		utils.BadRequest(c, "maxAge must not be below minAge")
		return
	}

	volunteerType := models.VolunteerType{
		Name:   req.Name,
		MinAge: req.MinAge,
		MaxAge: req.MaxAge,
		Topic:  req.Topic,
	}

	if err := database.DB.Create(&volunteerType).Error; err != nil {
		utils.InternalError(c, "Failed to create volunteer type")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Volunteer type created", volunteerType)
}

// PUT /api/volunteerType/updateVolunteerTypes/:id
func UpdateVolunteerType(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer type ID")
		return
	}

	var req models.VolunteerTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var volunteerType models.VolunteerType
	if err := database.DB.First(&volunteerType, id).Error; err != nil {
		utils.NotFound(c, "Volunteer type not found")
		return
	}

	volunteerType.Name = req.Name
	volunteerType.MinAge = req.MinAge
	volunteerType.MaxAge = req.MaxAge
	volunteerType.Topic = req.Topic

	if err := database.DB.Save(&volunteerType).Error; err != nil {
		utils.InternalError(c, "Failed to update volunteer type")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer type updated", volunteerType)
}

// DELETE /api/volunteerType/deleteVolunteerTypes/:id
func DeleteVolunteerType(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer type ID")
		return
	}

	if err := database.DB.Delete(&models.VolunteerType{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete volunteer type")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer type deleted", nil)
}
