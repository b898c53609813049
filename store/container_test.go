package store

import (
	"context"
	"errors"
	"testing"
	"volunteermatch-backend/client"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID   uint
	Name string
}

func TestContainerLifecycle(t *testing.T) {
	c := NewContainer[widget]()
	assert.Equal(t, StatusIdle, c.Status())
	assert.True(t, c.ShouldFetch())

	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}, nil
	})

	assert.Equal(t, StatusSucceeded, c.Status())
	assert.False(t, c.ShouldFetch())
	assert.Len(t, c.Items(), 2)
	assert.Empty(t, c.Err())
}

func TestContainerFetchFailure(t *testing.T) {
	c := NewContainer[widget]()
	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return nil, errors.New("boom")
	})

	assert.Equal(t, StatusFailed, c.Status())
	assert.Equal(t, "boom", c.Err())
	// The guard fires once; a failed load needs an explicit retry.
	assert.False(t, c.ShouldFetch())
}

func TestContainerDiscardsStaleCompletion(t *testing.T) {
	c := NewContainer[widget]()

	// First operation starts, then a second one starts and finishes
	// before the first completes. The first completion must be dropped.
	firstSeq := c.begin()

	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 2, Name: "fresh"}}, nil
	})

	// Simulate the slow first operation finishing now.
	c.mu.Lock()
	if c.current(firstSeq) {
		c.items = []widget{{ID: 1, Name: "stale"}}
	}
	c.mu.Unlock()

	items := c.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "fresh", items[0].Name)
}

func TestContainerCreateAppends(t *testing.T) {
	c := NewContainer[widget]()
	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1}}, nil
	})

	c.Create(context.Background(), func(context.Context) (*widget, error) {
		return &widget{ID: 2}, nil
	})

	assert.Len(t, c.Items(), 2)
	assert.Equal(t, StatusSucceeded, c.Status())
}

func TestContainerUpdateReplacesSelectedOnly(t *testing.T) {
	c := NewContainer[widget]()
	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1, Name: "old"}}, nil
	})

	c.Update(context.Background(), func(context.Context) (*widget, error) {
		return &widget{ID: 1, Name: "new"}, nil
	})

	require.NotNil(t, c.Selected())
	assert.Equal(t, "new", c.Selected().Name)
	// The collection is deliberately left stale until the next FetchAll.
	assert.Equal(t, "old", c.Items()[0].Name)
}

func TestContainerDelete(t *testing.T) {
	c := NewContainer[widget]()
	c.FetchAll(context.Background(), func(context.Context) ([]widget, error) {
		return []widget{{ID: 1}, {ID: 2}, {ID: 3}}, nil
	})
	c.Select(&widget{ID: 2})

	c.Delete(context.Background(),
		func(context.Context) error { return nil },
		func(w widget) bool { return w.ID == 2 })

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, uint(1), items[0].ID)
	assert.Equal(t, uint(3), items[1].ID)
	assert.Nil(t, c.Selected())
}

func TestContainerLoginAndLogout(t *testing.T) {
	c := NewContainer[widget]()
	c.Login(context.Background(), func(context.Context) (*widget, string, error) {
		return &widget{ID: 5, Name: "me"}, "tok-123", nil
	})

	require.NotNil(t, c.Connected())
	assert.Equal(t, uint(5), c.Connected().ID)
	// The account is also the selected entity, so detail views work
	// straight after login.
	require.NotNil(t, c.Selected())
	assert.Equal(t, uint(5), c.Selected().ID)
	assert.Equal(t, "tok-123", c.Token())
	assert.Equal(t, StatusSucceeded, c.Status())

	c.Logout()

	assert.Nil(t, c.Connected())
	assert.Nil(t, c.Selected())
	assert.Empty(t, c.Token())
	assert.Empty(t, c.Items())
	assert.Equal(t, StatusIdle, c.Status())
	assert.True(t, c.ShouldFetch())
}

func TestContainerLogoutDiscardsInFlight(t *testing.T) {
	c := NewContainer[widget]()
	seq := c.begin()

	c.Logout()

	// Completion of the pre-logout operation must not resurrect state.
	c.mu.Lock()
	if c.current(seq) {
		c.items = []widget{{ID: 99}}
		c.status = StatusSucceeded
	}
	c.mu.Unlock()

	assert.Empty(t, c.Items())
	assert.Equal(t, StatusIdle, c.Status())
}

func TestContainerSignupConnectsAndAppends(t *testing.T) {
	c := NewContainer[widget]()
	c.Signup(context.Background(), func(context.Context) (*widget, string, error) {
		return &widget{ID: 8, Name: "new"}, "tok-8", nil
	})

	require.NotNil(t, c.Connected())
	require.NotNil(t, c.Selected())
	assert.Equal(t, uint(8), c.Selected().ID)
	assert.Equal(t, "tok-8", c.Token())
	assert.Len(t, c.Items(), 1)
}

func TestContainerFailureKeepsServerMessage(t *testing.T) {
	c := NewContainer[widget]()
	c.Signup(context.Background(), func(context.Context) (*widget, string, error) {
		return nil, "", &client.APIError{
			Kind:    client.KindValidation,
			Message: "Email already registered",
			Status:  400,
		}
	})

	// The view shows the server's words, not the kind/status framing.
	assert.Equal(t, "Email already registered", c.Err())
	assert.Equal(t, StatusFailed, c.Status())
}

func TestContainerLoginFailureKeepsDisconnected(t *testing.T) {
	c := NewContainer[widget]()
	c.Login(context.Background(), func(context.Context) (*widget, string, error) {
		return nil, "", errors.New("bad credentials")
	})

	assert.Nil(t, c.Connected())
	assert.Empty(t, c.Token())
	assert.Equal(t, StatusFailed, c.Status())
	assert.Equal(t, "bad credentials", c.Err())
}
