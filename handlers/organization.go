package handlers

import (
	"net/http"
	"strings"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/organization/organization
func GetOrganizations(c *gin.Context) {
	var organizations []models.Organization
	if err := database.DB.Find(&organizations).Error; err != nil {
		utils.InternalError(c, "Failed to fetch organizations")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", organizations)
}

// GET /api/organization/organizationById/:id
func GetOrganizationByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid organization ID")
		return
	}

	var organization models.Organization
	if err := database.DB.First(&organization, id).Error; err != nil {
		utils.NotFound(c, "Organization not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", organization)
}

// POST /api/organization/addOrganizations
func RegisterOrganization(c *gin.Context) {
	var req models.OrganizationSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	createOrganization(c, req, nil, "")
}

// POST /api/organization/upload (multipart: "organization" JSON part + optional "image")
func RegisterOrganizationWithImage(c *gin.Context) {
	payload := c.PostForm("organization")
	if payload == "" {
		if file, err := c.FormFile("organization"); err == nil {
			f, err := file.Open()
			if err != nil {
				utils.BadRequest(c, "Invalid organization payload")
				return
			}
			defer f.Close()
			buf := make([]byte, file.Size)
			if _, err := f.Read(buf); err != nil {
				utils.BadRequest(c, "Invalid organization payload")
				return
			}
			payload = string(buf)
		}
	}
	if payload == "" {
		utils.BadRequest(c, "Missing organization payload")
		return
	}

	var req models.OrganizationSignupRequest
	if err := bindJSONString(payload, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	image, filename, err := readImagePart(c, "image")
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	createOrganization(c, req, image, filename)
}

func createOrganization(c *gin.Context, req models.OrganizationSignupRequest, image []byte, imageName string) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Organization
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "Failed to hash password")
		return
	}

	organization := models.Organization{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		OrgGoals:             req.OrgGoals,
		RecommendationPhones: req.RecommendationPhones,
		Region:               req.Region,
		PasswordHash:         string(hashed),
		ImageOrg:             imageName,
		Image:                image,
	}

	if err := database.DB.Create(&organization).Error; err != nil {
		utils.InternalError(c, "Failed to create organization")
		return
	}

	token, err := utils.GenerateToken(organization.OrganizationID, utils.RoleOrganization, organization.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Registration successful", models.OrganizationAuthResponse{
		Token:        token,
		Organization: organization,
	})
}

// POST /api/organization/login
func LoginOrganization(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var organization models.Organization
	if err := database.DB.Where("email = ?", req.Email).First(&organization).Error; err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(organization.PasswordHash), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(organization.OrganizationID, utils.RoleOrganization, organization.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", models.OrganizationAuthResponse{
		Token:        token,
		Organization: organization,
	})
}

// PUT /api/organization/updateOrganizations/:id
func UpdateOrganization(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid organization ID")
		return
	}

	var req models.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var organization models.Organization
	if err := database.DB.First(&organization, id).Error; err != nil {
		utils.NotFound(c, "Organization not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.OrgGoals != "" {
		updates["org_goals"] = req.OrgGoals
	}
	if req.RecommendationPhones != "" {
		updates["recommendation_phones"] = req.RecommendationPhones
	}
	if req.Region != "" {
		updates["region"] = req.Region
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&organization).Updates(updates).Error; err != nil {
			utils.InternalError(c, "Failed to update organization")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization updated", organization)
}

// DELETE /api/organization/deleteOrganizations/:id
func DeleteOrganization(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid organization ID")
		return
	}

	if err := database.DB.Delete(&models.Organization{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete organization")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Organization deleted", nil)
}

// GET /api/organization/getDto/:id
func GetOrganizationImage(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid organization ID")
		return
	}

	if dto, ok := cachedImageDTO(imageCacheKey("organization", id)); ok {
		utils.SuccessResponse(c, http.StatusOK, "", dto)
		return
	}

	var organization models.Organization
	if err := database.DB.First(&organization, id).Error; err != nil {
		utils.NotFound(c, "Organization not found")
		return
	}
	if len(organization.Image) == 0 {
		utils.NotFound(c, "Organization has no image")
		return
	}

	dto := encodeImageDTO(organization.OrganizationID, organization.Name, organization.Image)
	cacheImageDTO(imageCacheKey("organization", id), dto)
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}
