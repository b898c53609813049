package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
	"volunteermatch-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDecodesEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/volunteerType/volunteerType", r.URL.Path)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": []map[string]interface{}{
				{"volunteerTypeId": 1, "name": "Tutoring", "minAge": 16, "maxAge": 80},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	types, err := c.GetVolunteerTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, types, 1)
	assert.Equal(t, "Tutoring", types[0].Name)
	assert.Equal(t, 16, types[0].MinAge)
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	_, err := c.GetVolunteers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientNormalizesServerRejection(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": false,
			"message": "The request is already taken",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateInvitation(context.Background(), models.CreateInvitationRequest{
		Volunteer:      models.VolunteerRef{VolunteerID: 1},
		Organization:   models.OrganizationRef{OrganizationID: 1},
		InvitationDate: models.Today(),
	})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindValidation, apiErr.Kind)
	assert.Equal(t, "The request is already taken", apiErr.Message)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
}

func TestClientNormalizesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "boom"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetVolunteers(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindUnknown, apiErr.Kind)
}

func TestClientNormalizesNetworkFailure(t *testing.T) {
	c := New("http://127.0.0.1:1")
	c.HTTPClient.Timeout = time.Second

	_, err := c.GetVolunteers(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindNetwork, apiErr.Kind)
	assert.Zero(t, apiErr.Status)
}

func TestClientNormalizesMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.GetVolunteers(context.Background())
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindUnknown, apiErr.Kind)
}

func TestLoginInstallsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token":     "tok-login",
				"volunteer": map[string]interface{}{"volunteerId": 4, "name": "Dana"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.LoginVolunteer(context.Background(), "dana@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "tok-login", resp.Token)
	assert.Equal(t, "tok-login", c.Token())
	assert.Equal(t, uint(4), resp.Volunteer.VolunteerID)
}

func TestSignupMultipartShape(t *testing.T) {
	var jsonPart string
	var gotFile bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		jsonPart = r.FormValue("volunteer")
		_, _, err := r.FormFile("image")
		gotFile = err == nil
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token":     "tok-new",
				"volunteer": map[string]interface{}{"volunteerId": 10},
			},
		})
	}))
	defer srv.Close()

	req := models.VolunteerSignupRequest{
		Name:             "Noa",
		Email:            "noa@example.com",
		Password:         "secret1",
		Birth:            models.NewDate(2005, time.March, 2),
		AmountVolunteers: 2,
	}

	c := New(srv.URL)
	resp, err := c.SignupVolunteerWithImage(context.Background(), req, "me.png", []byte{0x89, 0x50})
	require.NoError(t, err)
	assert.Equal(t, uint(10), resp.Volunteer.VolunteerID)
	assert.True(t, gotFile)

	var decoded models.VolunteerSignupRequest
	require.NoError(t, json.Unmarshal([]byte(jsonPart), &decoded))
	assert.Equal(t, "noa@example.com", decoded.Email)
}

func TestResolveVolunteerImage(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"id": 3, "name": "avatar.png", "image": "aGk="},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)

	t.Run("default avatar skips the round trip", func(t *testing.T) {
		dto, err := c.ResolveVolunteerImage(context.Background(), models.Volunteer{VolunteerID: 3})
		require.NoError(t, err)
		assert.Nil(t, dto)
		assert.Zero(t, hits)
	})

	t.Run("custom image fetches the DTO", func(t *testing.T) {
		dto, err := c.ResolveVolunteerImage(context.Background(), models.Volunteer{
			VolunteerID: 3,
			ImageVol:    "avatar.png",
		})
		require.NoError(t, err)
		require.NotNil(t, dto)
		assert.Equal(t, "aGk=", dto.Image)
		assert.Equal(t, 1, hits)
	})
}

func TestClientSideValidationShortCircuits(t *testing.T) {
	// No server at all: validation must fail before any request is made.
	c := New("http://127.0.0.1:1")

	_, err := c.SignupVolunteer(context.Background(), models.VolunteerSignupRequest{
		Name:             "Noa",
		Email:            "not-an-email",
		Password:         "secret1",
		Birth:            models.NewDate(2005, time.March, 2),
		AmountVolunteers: 2,
	})
	require.Error(t, err)
	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, KindValidation, apiErr.Kind)
}
