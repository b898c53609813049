package client

import (
	"context"
	"fmt"
	"net/http"
	"volunteermatch-backend/models"
)

func (c *Client) GetVolunteerTypes(ctx context.Context) ([]models.VolunteerType, error) {
	var out []models.VolunteerType
	if err := c.do(ctx, http.MethodGet, "/api/volunteerType/volunteerType", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVolunteerTypeByID(ctx context.Context, id uint) (*models.VolunteerType, error) {
	var out models.VolunteerType
	path := fmt.Sprintf("/api/volunteerType/volunteerTypeById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateVolunteerType(ctx context.Context, req models.VolunteerTypeRequest) (*models.VolunteerType, error) {
	var out models.VolunteerType
	if err := c.do(ctx, http.MethodPost, "/api/volunteerType/addVolunteerTypes", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateVolunteerType(ctx context.Context, id uint, req models.VolunteerTypeRequest) (*models.VolunteerType, error) {
	var out models.VolunteerType
	path := fmt.Sprintf("/api/volunteerType/updateVolunteerTypes/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVolunteerType(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/volunteerType/deleteVolunteerTypes/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}
