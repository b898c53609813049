package client

import (
	"testing"
	"time"
	"volunteermatch-backend/models"

	"github.com/stretchr/testify/assert"
)

func validSignup() models.VolunteerSignupRequest {
	return models.VolunteerSignupRequest{
		Name:             "Noa Levi",
		Email:            "noa@example.com",
		Password:         "secret1",
		Phone:            "052-1234567",
		Birth:            models.NewDate(2005, time.March, 2),
		AmountVolunteers: 3,
	}
}

func TestValidateVolunteerSignup(t *testing.T) {
	assert.NoError(t, ValidateVolunteerSignup(validSignup()))

	tests := []struct {
		name   string
		mutate func(*models.VolunteerSignupRequest)
	}{
		{"empty name", func(r *models.VolunteerSignupRequest) { r.Name = "  " }},
		{"bad email", func(r *models.VolunteerSignupRequest) { r.Email = "noa@" }},
		{"short password", func(r *models.VolunteerSignupRequest) { r.Password = "abc" }},
		{"bad phone", func(r *models.VolunteerSignupRequest) { r.Phone = "12345" }},
		{"zero party size", func(r *models.VolunteerSignupRequest) { r.AmountVolunteers = 0 }},
		{"future birth", func(r *models.VolunteerSignupRequest) {
			r.Birth = models.NewDate(time.Now().Year()+1, time.January, 1)
		}},
		{"too young", func(r *models.VolunteerSignupRequest) {
			r.Birth = models.NewDate(time.Now().Year()-5, time.January, 1)
		}},
		{"too old", func(r *models.VolunteerSignupRequest) {
			r.Birth = models.NewDate(time.Now().Year()-95, time.January, 1)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSignup()
			tt.mutate(&req)
			err := ValidateVolunteerSignup(req)
			assert.Error(t, err)
			apiErr, ok := err.(*APIError)
			assert.True(t, ok)
			assert.Equal(t, KindValidation, apiErr.Kind)
		})
	}
}

func TestValidateRequestDate(t *testing.T) {
	now := time.Date(2024, time.June, 10, 15, 0, 0, 0, time.UTC)

	assert.NoError(t, ValidateRequestDate(models.NewDate(2024, time.June, 10), now))
	assert.NoError(t, ValidateRequestDate(models.NewDate(2024, time.June, 17), now))
	assert.Error(t, ValidateRequestDate(models.NewDate(2024, time.June, 9), now))
	assert.Error(t, ValidateRequestDate(models.NewDate(2024, time.June, 18), now))
}

func TestValidateImage(t *testing.T) {
	assert.NoError(t, ValidateImage("image/png"))
	assert.NoError(t, ValidateImage("image/jpeg"))
	assert.Error(t, ValidateImage("application/pdf"))
	assert.Error(t, ValidateImage("text/html"))
}

func TestValidateReview(t *testing.T) {
	assert.NoError(t, ValidateReview(models.CreateReviewRequest{Likes: 0}))
	assert.NoError(t, ValidateReview(models.CreateReviewRequest{Likes: 5}))
	assert.Error(t, ValidateReview(models.CreateReviewRequest{Likes: 6}))
	assert.Error(t, ValidateReview(models.CreateReviewRequest{Likes: -1}))
}
