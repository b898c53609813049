package client

import (
	"context"
	"fmt"
	"net/http"
	"volunteermatch-backend/models"
)

func (c *Client) GetReviews(ctx context.Context) ([]models.VolunteerReview, error) {
	var out []models.VolunteerReview
	if err := c.do(ctx, http.MethodGet, "/api/volunteerReview/volunteerReview", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReviewByID(ctx context.Context, id uint) (*models.VolunteerReview, error) {
	var out models.VolunteerReview
	path := fmt.Sprintf("/api/volunteerReview/volunteerReviewById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateReview(ctx context.Context, req models.CreateReviewRequest) (*models.VolunteerReview, error) {
	if err := ValidateReview(req); err != nil {
		return nil, err
	}
	var out models.VolunteerReview
	if err := c.do(ctx, http.MethodPost, "/api/volunteerReview/addVolunteerReview", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteReview(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/volunteerReview/deleteVolunteerReviews/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
