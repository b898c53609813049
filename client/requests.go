package client

import (
	"context"
	"fmt"
	"net/http"
	"time"
	"volunteermatch-backend/models"
)

func (c *Client) GetVolunteerRequests(ctx context.Context) ([]models.VolunteerRequest, error) {
	var out []models.VolunteerRequest
	if err := c.do(ctx, http.MethodGet, "/api/volunteerRequest/volunteerRequest", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVolunteerRequestByID(ctx context.Context, id uint) (*models.VolunteerRequest, error) {
	var out models.VolunteerRequest
	path := fmt.Sprintf("/api/volunteerRequest/volunteerRequestById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVolunteerRequest(ctx context.Context, req models.CreateVolunteerRequestRequest) (*models.VolunteerRequest, error) {
	if err := ValidateRequestDate(req.AvailableDate, time.Now()); err != nil {
		return nil, err
	}
	var out models.VolunteerRequest
	if err := c.do(ctx, http.MethodPost, "/api/volunteerRequest/addVolunteerRequest", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVolunteerRequest(ctx context.Context, id uint, req models.UpdateVolunteerRequestRequest) (*models.VolunteerRequest, error) {
	var out models.VolunteerRequest
	path := fmt.Sprintf("/api/volunteerRequest/updateVolunteerRequest/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVolunteerRequest(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/volunteerRequest/deleteVolunteerRequests/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
