package client

import (
	"context"
	"fmt"
	"net/http"
	"volunteermatch-backend/models"
)

// GetInvitations fetches the invitation list. Listing also advances
// past-due invitations server-side, so callers always see swept state.
func (c *Client) GetInvitations(ctx context.Context) ([]models.VolunteerInvitation, error) {
	var out []models.VolunteerInvitation
	if err := c.do(ctx, http.MethodGet, "/api/volunteerInvitation/volunteerInvitation", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetInvitationByID(ctx context.Context, id uint) (*models.VolunteerInvitation, error) {
	var out models.VolunteerInvitation
	path := fmt.Sprintf("/api/volunteerInvitation/volunteerInvitationById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateInvitation(ctx context.Context, req models.CreateInvitationRequest) (*models.VolunteerInvitation, error) {
	var out models.VolunteerInvitation
	if err := c.do(ctx, http.MethodPost, "/api/volunteerInvitation/addVolunteerInvitation", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateInvitation(ctx context.Context, id uint, req models.UpdateInvitationRequest) (*models.VolunteerInvitation, error) {
	var out models.VolunteerInvitation
	path := fmt.Sprintf("/api/volunteerInvitation/updateVolunteerInvitation/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AcceptInvitation and friends are the shorthand the apps actually use;
// each one is an UpdateInvitation carrying only the status change.
func (c *Client) AcceptInvitation(ctx context.Context, id uint) (*models.VolunteerInvitation, error) {
	return c.UpdateInvitation(ctx, id, models.UpdateInvitationRequest{Status: models.StatusAccepted})
}

func (c *Client) RejectInvitation(ctx context.Context, id uint) (*models.VolunteerInvitation, error) {
	return c.UpdateInvitation(ctx, id, models.UpdateInvitationRequest{Status: models.StatusRejected})
}

func (c *Client) CompleteInvitation(ctx context.Context, id uint) (*models.VolunteerInvitation, error) {
	return c.UpdateInvitation(ctx, id, models.UpdateInvitationRequest{Status: models.StatusCompleted})
}

func (c *Client) DeleteInvitation(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/volunteerInvitation/deleteVolunteerInvitations/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) GetInvitationStatusHistory(ctx context.Context, id uint) ([]models.InvitationStatusChange, error) {
	var out []models.InvitationStatusChange
	path := fmt.Sprintf("/api/volunteerInvitation/statusHistory/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
