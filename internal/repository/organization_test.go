//go:build integration
// +build integration

package repository

import (
	"testing"

	"foodbank-backend/internal/database/models"
	"foodbank-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// OrganizationRepositoryTestSuite tests the OrganizationRepository against a
// real Postgres instance
type OrganizationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *OrganizationRepository
}

// SetupSuite runs before all tests in the suite
func (suite *OrganizationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewOrganizationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *OrganizationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *OrganizationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *OrganizationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new organization
func (suite *OrganizationRepositoryTestSuite) TestCreate() {
	org := &models.Organization{Name: "harbour-food-bank", Address: "12 Main St"}

	err := suite.repo.Create(org)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, org.ID)
	suite.NotZero(org.CreatedAt)
	suite.NotZero(org.UpdatedAt)
}

// TestCreateDuplicateName tests the unique constraint on organization name
func (suite *OrganizationRepositoryTestSuite) TestCreateDuplicateName() {
	err := suite.repo.Create(&models.Organization{Name: "harbour-food-bank"})
	suite.NoError(err)

	err = suite.repo.Create(&models.Organization{Name: "harbour-food-bank"})
	suite.Error(err)
	suite.Contains(err.Error(), "duplicate key value")
}

// TestGetByID tests retrieving an organization by ID
func (suite *OrganizationRepositoryTestSuite) TestGetByID() {
	org := testutils.CreateTestOrganization(suite.T(), suite.baseTestSuite.DB)

	retrieved, err := suite.repo.GetByID(org.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
	suite.Equal(org.Name, retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent organization
func (suite *OrganizationRepositoryTestSuite) TestGetByIDNotFound() {
	org, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(org)
}

// TestGetByName tests retrieving an organization by name
func (suite *OrganizationRepositoryTestSuite) TestGetByName() {
	org := testutils.CreateTestOrganization(suite.T(), suite.baseTestSuite.DB)

	retrieved, err := suite.repo.GetByName(org.Name)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(org.ID, retrieved.ID)
}

// TestGetAll tests listing organizations with pagination
func (suite *OrganizationRepositoryTestSuite) TestGetAll() {
	for i := 0; i < 5; i++ {
		testutils.CreateTestOrganization(suite.T(), suite.baseTestSuite.DB)
	}

	orgs, total, err := suite.repo.GetAll(10, 0)
	suite.NoError(err)
	suite.Len(orgs, 5)
	suite.Equal(int64(5), total)

	orgs, total, err = suite.repo.GetAll(2, 4)
	suite.NoError(err)
	suite.Len(orgs, 1)
	suite.Equal(int64(5), total)
}

// TestUpdate tests updating an organization
func (suite *OrganizationRepositoryTestSuite) TestUpdate() {
	org := testutils.CreateTestOrganization(suite.T(), suite.baseTestSuite.DB)

	org.Address = "99 Harbour Rd"
	err := suite.repo.Update(org)
	suite.NoError(err)

	updated, err := suite.repo.GetByID(org.ID)
	suite.NoError(err)
	suite.Equal("99 Harbour Rd", updated.Address)
}

// TestDelete tests deleting an organization
func (suite *OrganizationRepositoryTestSuite) TestDelete() {
	org := testutils.CreateTestOrganization(suite.T(), suite.baseTestSuite.DB)

	err := suite.repo.Delete(org.ID)
	suite.NoError(err)

	_, err = suite.repo.GetByID(org.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)
}

// Run the test suite
func TestOrganizationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationRepositoryTestSuite))
}
