package client

import (
	"context"
	"fmt"
	"net/http"
	"volunteermatch-backend/models"
)

func (c *Client) GetVolunteers(ctx context.Context) ([]models.Volunteer, error) {
	var out []models.Volunteer
	if err := c.do(ctx, http.MethodGet, "/api/volunteer/volunteer", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetVolunteerByID(ctx context.Context, id uint) (*models.Volunteer, error) {
	var out models.Volunteer
	path := fmt.Sprintf("/api/volunteer/volunteerById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SignupVolunteer registers a volunteer and installs the returned token
// so the session is usable immediately.
func (c *Client) SignupVolunteer(ctx context.Context, req models.VolunteerSignupRequest) (*models.VolunteerAuthResponse, error) {
	if err := ValidateVolunteerSignup(req); err != nil {
		return nil, err
	}
	var out models.VolunteerAuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/volunteer/addVolunteers", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

// SignupVolunteerWithImage does the multipart signup: the profile JSON in
// the "volunteer" part, the photo bytes as a file part.
func (c *Client) SignupVolunteerWithImage(ctx context.Context, req models.VolunteerSignupRequest, imageName string, image []byte) (*models.VolunteerAuthResponse, error) {
	if err := ValidateVolunteerSignup(req); err != nil {
		return nil, err
	}
	var out models.VolunteerAuthResponse
	if err := c.doMultipart(ctx, "/api/volunteer/upload", "volunteer", req, imageName, image, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) LoginVolunteer(ctx context.Context, email, password string) (*models.VolunteerAuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var out models.VolunteerAuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/volunteer/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) UpdateVolunteer(ctx context.Context, id uint, req models.UpdateVolunteerRequest) (*models.Volunteer, error) {
	var out models.Volunteer
	path := fmt.Sprintf("/api/volunteer/updateVolunteers/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteVolunteer(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/volunteer/deleteVolunteers/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) GetVolunteerImage(ctx context.Context, id uint) (*models.ImageDTO, error) {
	var out models.ImageDTO
	path := fmt.Sprintf("/api/volunteer/getDto/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveVolunteerImage fetches the image DTO only when the volunteer's
// ImageVol flag says a custom image exists; a nil DTO means use the
// default avatar, no round trip made.
func (c *Client) ResolveVolunteerImage(ctx context.Context, v models.Volunteer) (*models.ImageDTO, error) {
	if v.ImageVol == "" {
		return nil, nil
	}
	return c.GetVolunteerImage(ctx, v.VolunteerID)
}

// SearchVolunteers runs the organization-side volunteer search with the
// given filter set.
func (c *Client) SearchVolunteers(ctx context.Context, filters models.VolunteerFilters) ([]models.Volunteer, error) {
	var out []models.Volunteer
	if err := c.do(ctx, http.MethodPost, "/api/volunteer/search", filters, &out); err != nil {
		return nil, err
	}
	return out, nil
}
