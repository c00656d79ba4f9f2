package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillforge/marketplace-backend/internal/dto"
)

func validProject() dto.PostProjectRequest {
	return dto.PostProjectRequest{
		Title:       "Landing page",
		Description: "Build a landing page",
		Skills:      "html,css",
		Budget:      decimal.NewFromInt(500),
		ClientEmail: "client@example.com",
	}
}

func TestCreateProjectRequiresAllFields(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	req := validProject()
	req.Title = ""
	assert.ErrorIs(t, svc.Create(&req), ErrMissingFields)

	req = validProject()
	req.Budget = decimal.Zero
	assert.ErrorIs(t, svc.Create(&req), ErrMissingFields)

	req = validProject()
	req.ClientEmail = ""
	assert.ErrorIs(t, svc.Create(&req), ErrMissingFields)

	req = validProject()
	require.NoError(t, svc.Create(&req))
}

func TestListByClientFilters(t *testing.T) {
	svc := NewProjectService(newTestDB(t))

	first := validProject()
	require.NoError(t, svc.Create(&first))

	second := validProject()
	second.Title = "API integration"
	second.ClientEmail = "other@example.com"
	require.NoError(t, svc.Create(&second))

	mine, err := svc.ListByClient("client@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "Landing page", mine[0].Title)

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	// An owner with no projects gets an empty result, not an error.
	none, err := svc.ListByClient("stranger@example.com")
	require.NoError(t, err)
	assert.Empty(t, none)
}
