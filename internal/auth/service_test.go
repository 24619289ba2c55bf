package auth

import (
	"testing"
	"time"

	"foodbank-backend/internal/database/models"
	apperrors "foodbank-backend/internal/errors"
	"foodbank-backend/internal/logger"
	"foodbank-backend/internal/repository"
	"foodbank-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// fakeMailer records reset codes instead of dialing SMTP
type fakeMailer struct {
	to    []string
	codes []string
}

func (f *fakeMailer) SendPasswordResetCode(to, code string) error {
	f.to = append(f.to, to)
	f.codes = append(f.codes, code)
	return nil
}

// AuthServiceTestSuite defines the test suite for AuthService
type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	mailer  *fakeMailer
	service *AuthService

	org *models.Organization
}

// SetupTest sets up the test suite
func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = testutils.SetupTestDB(suite.T())
	suite.mailer = &fakeMailer{}

	suite.service = NewAuthService(
		repository.NewUserRepository(suite.db),
		repository.NewOrganizationRepository(suite.db),
		repository.NewPasswordResetRepository(suite.db),
		suite.mailer,
		"test-secret",
		validator.New(),
		logger.New(),
	)

	suite.org = testutils.CreateTestOrganization(suite.T(), suite.db)
}

func (suite *AuthServiceTestSuite) register(email, password string) *LoginResponse {
	resp, err := suite.service.Register(&RegisterRequest{
		OrganizationID: suite.org.ID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          email,
		Password:       password,
	})
	require.NoError(suite.T(), err)
	return resp
}

// TestRegisterIssuesToken tests that registration creates a volunteer and
// returns a valid token
func (suite *AuthServiceTestSuite) TestRegisterIssuesToken() {
	resp := suite.register("jane@example.com", "correct-horse")

	assert.Equal(suite.T(), "Bearer", resp.TokenType)
	assert.Equal(suite.T(), "volunteer", resp.Role)
	assert.NotEmpty(suite.T(), resp.AccessToken)

	claims, err := suite.service.ValidateJWT(resp.AccessToken)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), resp.UserID, claims.UserID)
	assert.Equal(suite.T(), suite.org.ID, claims.OrganizationID)
	assert.Equal(suite.T(), "jane@example.com", claims.Email)
}

// TestRegisterDuplicateEmail tests the per-organization email uniqueness check
func (suite *AuthServiceTestSuite) TestRegisterDuplicateEmail() {
	suite.register("jane@example.com", "correct-horse")

	_, err := suite.service.Register(&RegisterRequest{
		OrganizationID: suite.org.ID,
		FirstName:      "Jane",
		LastName:       "Doe",
		Email:          "jane@example.com",
		Password:       "correct-horse",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
}

// TestLogin tests password authentication
func (suite *AuthServiceTestSuite) TestLogin() {
	suite.register("jane@example.com", "correct-horse")

	resp, err := suite.service.Login(&LoginRequest{Email: "jane@example.com", Password: "correct-horse"})
	require.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), resp.AccessToken)

	_, err = suite.service.Login(&LoginRequest{Email: "jane@example.com", Password: "wrong"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)

	_, err = suite.service.Login(&LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestLoginInactiveUser tests that deactivated accounts cannot authenticate
func (suite *AuthServiceTestSuite) TestLoginInactiveUser() {
	resp := suite.register("jane@example.com", "correct-horse")

	require.NoError(suite.T(), suite.db.Model(&models.User{}).
		Where("id = ?", resp.UserID).Update("is_active", false).Error)

	_, err := suite.service.Login(&LoginRequest{Email: "jane@example.com", Password: "correct-horse"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
}

// TestPasswordResetFlow tests the full forgot/reset round trip
func (suite *AuthServiceTestSuite) TestPasswordResetFlow() {
	suite.register("jane@example.com", "correct-horse")

	require.NoError(suite.T(), suite.service.ForgotPassword(&ForgotPasswordRequest{Email: "jane@example.com"}))
	require.Len(suite.T(), suite.mailer.codes, 1)
	assert.Equal(suite.T(), "jane@example.com", suite.mailer.to[0])
	code := suite.mailer.codes[0]
	assert.Len(suite.T(), code, 6)

	require.NoError(suite.T(), suite.service.ResetPassword(&ResetPasswordRequest{
		Email:       "jane@example.com",
		Code:        code,
		NewPassword: "battery-staple",
	}))

	// New password works, old one does not
	_, err := suite.service.Login(&LoginRequest{Email: "jane@example.com", Password: "battery-staple"})
	assert.NoError(suite.T(), err)
	_, err = suite.service.Login(&LoginRequest{Email: "jane@example.com", Password: "correct-horse"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)

	// Codes are single use
	err = suite.service.ResetPassword(&ResetPasswordRequest{
		Email:       "jane@example.com",
		Code:        code,
		NewPassword: "third-password",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidResetCode)
}

// TestForgotPasswordUnknownEmail tests that unknown emails neither error nor
// send mail
func (suite *AuthServiceTestSuite) TestForgotPasswordUnknownEmail() {
	require.NoError(suite.T(), suite.service.ForgotPassword(&ForgotPasswordRequest{Email: "nobody@example.com"}))
	assert.Empty(suite.T(), suite.mailer.codes)
}

// TestResetPasswordExpiredCode tests that expired codes are rejected
func (suite *AuthServiceTestSuite) TestResetPasswordExpiredCode() {
	suite.register("jane@example.com", "correct-horse")

	reset := &models.PasswordReset{
		Email:     "jane@example.com",
		Code:      "123456",
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(suite.T(), suite.db.Create(reset).Error)

	err := suite.service.ResetPassword(&ResetPasswordRequest{
		Email:       "jane@example.com",
		Code:        "123456",
		NewPassword: "battery-staple",
	})
	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidResetCode)
}

// TestValidateJWTRejectsTampering tests signature validation
func (suite *AuthServiceTestSuite) TestValidateJWTRejectsTampering() {
	resp := suite.register("jane@example.com", "correct-horse")

	_, err := suite.service.ValidateJWT(resp.AccessToken + "x")
	assert.Error(suite.T(), err)

	_, err = suite.service.ValidateJWT("not-a-token")
	assert.Error(suite.T(), err)
}

// TestAuthServiceTestSuite runs the test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
