package client

import (
	"context"
	"fmt"
	"net/http"
	"volunteermatch-backend/models"
)

func (c *Client) GetOrganizations(ctx context.Context) ([]models.Organization, error) {
	var out []models.Organization
	if err := c.do(ctx, http.MethodGet, "/api/organization/organization", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrganizationByID(ctx context.Context, id uint) (*models.Organization, error) {
	var out models.Organization
	path := fmt.Sprintf("/api/organization/organizationById/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) SignupOrganization(ctx context.Context, req models.OrganizationSignupRequest) (*models.OrganizationAuthResponse, error) {
	if err := ValidateOrganizationSignup(req); err != nil {
		return nil, err
	}
	var out models.OrganizationAuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/organization/addOrganizations", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) SignupOrganizationWithImage(ctx context.Context, req models.OrganizationSignupRequest, imageName string, image []byte) (*models.OrganizationAuthResponse, error) {
	if err := ValidateOrganizationSignup(req); err != nil {
		return nil, err
	}
	var out models.OrganizationAuthResponse
	if err := c.doMultipart(ctx, "/api/organization/upload", "organization", req, imageName, image, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) LoginOrganization(ctx context.Context, email, password string) (*models.OrganizationAuthResponse, error) {
	req := models.LoginRequest{Email: email, Password: password}
	var out models.OrganizationAuthResponse
	if err := c.do(ctx, http.MethodPost, "/api/organization/login", req, &out); err != nil {
		return nil, err
	}
	c.SetToken(out.Token)
	return &out, nil
}

func (c *Client) UpdateOrganization(ctx context.Context, id uint, req models.UpdateOrganizationRequest) (*models.Organization, error) {
	var out models.Organization
	path := fmt.Sprintf("/api/organization/updateOrganizations/%d", id)
	if err := c.do(ctx, http.MethodPut, path, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteOrganization(ctx context.Context, id uint) error {
	path := fmt.Sprintf("/api/organization/deleteOrganizations/%d", id)
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) GetOrganizationImage(ctx context.Context, id uint) (*models.ImageDTO, error) {
	var out models.ImageDTO
	path := fmt.Sprintf("/api/organization/getDto/%d", id)
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ResolveOrganizationImage is the ImageOrg-gated counterpart of
// ResolveVolunteerImage.
func (c *Client) ResolveOrganizationImage(ctx context.Context, o models.Organization) (*models.ImageDTO, error) {
	if o.ImageOrg == "" {
		return nil, nil
	}
	return c.GetOrganizationImage(ctx, o.OrganizationID)
}
