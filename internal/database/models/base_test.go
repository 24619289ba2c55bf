package models_test

import (
	"testing"

	"foodbank-backend/internal/database/models"
	"foodbank-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrateAndAssignID verifies the schema migrates on the in-memory
// database and that the create hook assigns UUID primary keys
func TestMigrateAndAssignID(t *testing.T) {
	db := testutils.SetupTestDB(t)

	org := &models.Organization{Name: "harbour-food-bank"}
	require.NoError(t, db.Create(org).Error)

	assert.NotEqual(t, uuid.Nil, org.ID)
	assert.False(t, org.CreatedAt.IsZero())
	assert.False(t, org.UpdatedAt.IsZero())
}

// TestCreateKeepsPresetID verifies a caller-supplied ID survives the hook
func TestCreateKeepsPresetID(t *testing.T) {
	db := testutils.SetupTestDB(t)

	id := uuid.New()
	org := &models.Organization{BaseModel: models.BaseModel{ID: id}, Name: "harbour-food-bank"}
	require.NoError(t, db.Create(org).Error)

	var got models.Organization
	require.NoError(t, db.First(&got, "id = ?", id).Error)
	assert.Equal(t, id, got.ID)
}
