package handlers

import (
	"net/http"
	"strings"
	"time"
	"volunteermatch-backend/database"
	"volunteermatch-backend/models"
	"volunteermatch-backend/services"
	"volunteermatch-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// GET /api/volunteer/volunteer
func GetVolunteers(c *gin.Context) {
	var volunteers []models.Volunteer
	err := database.DB.
		Preload("Requests.Types").
		Preload("Reviews.Organization").
		Find(&volunteers).Error
	if err != nil {
		utils.InternalError(c, "Failed to fetch volunteers")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", volunteers)
}

// GET /api/volunteer/volunteerById/:id
func GetVolunteerByID(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer ID")
		return
	}

	var volunteer models.Volunteer
	err = database.DB.
		Preload("Requests.Types").
		Preload("Reviews.Organization").
		First(&volunteer, id).Error
	if err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", volunteer)
}

// POST /api/volunteer/addVolunteers
func RegisterVolunteer(c *gin.Context) {
	var req models.VolunteerSignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	createVolunteer(c, req, nil, "")
}

// POST /api/volunteer/upload (multipart: "volunteer" JSON part + optional "image")
func RegisterVolunteerWithImage(c *gin.Context) {
	payload := c.PostForm("volunteer")
	if payload == "" {
		// The browser sends the JSON as a Blob part, which gin exposes as a file.
		if file, err := c.FormFile("volunteer"); err == nil {
			f, err := file.Open()
			if err != nil {
				utils.BadRequest(c, "Invalid volunteer payload")
				return
			}
			defer f.Close()
			buf := make([]byte, file.Size)
			if _, err := f.Read(buf); err != nil {
				utils.BadRequest(c, "Invalid volunteer payload")
				return
			}
			payload = string(buf)
		}
	}
	if payload == "" {
		utils.BadRequest(c, "Missing volunteer payload")
		return
	}

	var req models.VolunteerSignupRequest
	if err := bindJSONString(payload, &req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	image, filename, err := readImagePart(c, "image")
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	createVolunteer(c, req, image, filename)
}

func createVolunteer(c *gin.Context, req models.VolunteerSignupRequest, image []byte, imageName string) {
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	if msg := validateVolunteerSignup(req); msg != "" {
		utils.BadRequest(c, msg)
		return
	}

	var existing models.Volunteer
	if err := database.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.BadRequest(c, "Email already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.InternalError(c, "Failed to hash password")
		return
	}

	volunteer := models.Volunteer{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		Role:             req.Role,
		Gender:           req.Gender,
		Birth:            req.Birth,
		Experience:       req.Experience,
		AmountVolunteers: req.AmountVolunteers,
		Region:           req.Region,
		PasswordHash:     string(hashed),
		ImageVol:         imageName,
		Image:            image,
	}

	if err := database.DB.Create(&volunteer).Error; err != nil {
		utils.InternalError(c, "Failed to create volunteer")
		return
	}

	token, err := utils.GenerateToken(volunteer.VolunteerID, utils.RoleVolunteer, volunteer.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "Registration successful", models.VolunteerAuthResponse{
		Token:     token,
		Volunteer: volunteer,
	})
}

func validateVolunteerSignup(req models.VolunteerSignupRequest) string {
	now := time.Now()
	if req.Birth.Time.After(now) {
		return "Birth date must be in the past"
	}
	age := services.AgeAt(req.Birth, now)
	if age < 10 || age > 80 {
		return "Age must be between 10 and 80"
	}
	if req.AmountVolunteers <= 0 {
		return "Amount of volunteers must be a positive integer greater than 0"
	}
	return ""
}

// POST /api/volunteer/login
func LoginVolunteer(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var volunteer models.Volunteer
	err := database.DB.
		Preload("Requests.Types").
		Preload("Reviews.Organization").
		Where("email = ?", req.Email).
		First(&volunteer).Error
	if err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(volunteer.PasswordHash), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "Invalid email or password")
		return
	}

	token, err := utils.GenerateToken(volunteer.VolunteerID, utils.RoleVolunteer, volunteer.Email)
	if err != nil {
		utils.InternalError(c, "Failed to generate token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login successful", models.VolunteerAuthResponse{
		Token:     token,
		Volunteer: volunteer,
	})
}

// PUT /api/volunteer/updateVolunteers/:id
func UpdateVolunteer(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer ID")
		return
	}

	var req models.UpdateVolunteerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var volunteer models.Volunteer
	if err := database.DB.First(&volunteer, id).Error; err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}

	updates := map[string]interface{}{}
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Phone != "" {
		updates["phone"] = req.Phone
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Gender != "" {
		updates["gender"] = req.Gender
	}
	if !req.Birth.IsZero() {
		updates["birth"] = req.Birth.Time
	}
	if req.Experience != nil {
		updates["experience"] = *req.Experience
	}
	if req.AmountVolunteers > 0 {
		updates["amount_volunteers"] = req.AmountVolunteers
	}
	if req.Region != "" {
		updates["region"] = req.Region
	}

	if len(updates) > 0 {
		if err := database.DB.Model(&volunteer).Updates(updates).Error; err != nil {
			utils.InternalError(c, "Failed to update volunteer")
			return
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer updated", volunteer)
}

// DELETE /api/volunteer/deleteVolunteers/:id
func DeleteVolunteer(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer ID")
		return
	}

	if err := database.DB.Delete(&models.Volunteer{}, id).Error; err != nil {
		utils.InternalError(c, "Failed to delete volunteer")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Volunteer deleted", nil)
}

// GET /api/volunteer/getDto/:id
func GetVolunteerImage(c *gin.Context) {
	id, err := utils.ParseID(c.Param("id"))
	if err != nil {
		utils.BadRequest(c, "Invalid volunteer ID")
		return
	}

	if dto, ok := cachedImageDTO(imageCacheKey("volunteer", id)); ok {
		utils.SuccessResponse(c, http.StatusOK, "", dto)
		return
	}

	var volunteer models.Volunteer
	if err := database.DB.First(&volunteer, id).Error; err != nil {
		utils.NotFound(c, "Volunteer not found")
		return
	}
	if len(volunteer.Image) == 0 {
		utils.NotFound(c, "Volunteer has no image")
		return
	}

	dto := encodeImageDTO(volunteer.VolunteerID, volunteer.Name, volunteer.Image)
	cacheImageDTO(imageCacheKey("volunteer", id), dto)
	utils.SuccessResponse(c, http.StatusOK, "", dto)
}

// POST /api/volunteer/search
func SearchVolunteers(c *gin.Context) {
	var filters models.VolunteerFilters
	if err := c.ShouldBindJSON(&filters); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	var volunteers []models.Volunteer
	err := database.DB.
		Preload("Requests.Types").
		Preload("Reviews.Organization").
		Find(&volunteers).Error
	if err != nil {
		utils.InternalError(c, "Failed to fetch volunteers")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", services.FilterVolunteers(volunteers, filters, time.Now()))
}

// PUT /api/volunteer/fcm-token
func UpdateVolunteerFCMToken(c *gin.Context) {
	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	userID := utils.CurrentUserID(c)
	if userID == 0 || utils.CurrentUserRole(c) != utils.RoleVolunteer {
		utils.Unauthorized(c, "Volunteer session required")
		return
	}

	if err := database.DB.Model(&models.Volunteer{}).Where("volunteer_id = ?", userID).
		Update("fcm_token", req.Token).Error; err != nil {
		utils.InternalError(c, "Failed to update FCM token")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "FCM token updated", nil)
}
