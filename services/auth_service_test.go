package services

import (
	"testing"

	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/config"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/models"
	"github.com/EmmanuelOnyekachi21/ItoroBlessingCateringSiteAPI/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndVerifyFlow(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")

	user, err := RegisterUser(RegisterParams{
		Email:       "new@example.com",
		Password:    "supersecret1",
		FirstName:   "Ada",
		LastName:    "Obi",
		PhoneNumber: "08000000000",
	})
	require.NoError(t, err)
	assert.False(t, user.Verified)
	assert.NotEmpty(t, user.VerifyCode)
	assert.NotEqual(t, "supersecret1", user.Password)

	// unverified accounts can't log in
	_, _, _, err = AuthenticateUser("new@example.com", "supersecret1")
	assert.ErrorIs(t, err, ErrNotVerified)

	require.NoError(t, VerifyEmail("new@example.com", user.VerifyCode))

	got, access, refresh, err := AuthenticateUser("new@example.com", "supersecret1")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.NotEmpty(t, access)
	assert.NotEmpty(t, refresh)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	setupTestDB(t)
	createTestUser(t, "dup@example.com", models.RoleCustomer)

	_, err := RegisterUser(RegisterParams{Email: "dup@example.com", Password: "supersecret1"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestVerifyEmailRejectsWrongCode(t *testing.T) {
	setupTestDB(t)

	user, err := RegisterUser(RegisterParams{Email: "v@example.com", Password: "supersecret1"})
	require.NoError(t, err)

	assert.Error(t, VerifyEmail("v@example.com", "wrong!"))
	require.NoError(t, VerifyEmail("v@example.com", user.VerifyCode))
	assert.ErrorIs(t, VerifyEmail("v@example.com", user.VerifyCode), ErrAlreadyVerified)
}

func TestRefreshAndRevoke(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	user := createTestUser(t, "r@example.com", models.RoleCustomer)

	refresh, err := utils.GenerateRefreshToken(user.Email, user.ID)
	require.NoError(t, err)

	access, err := RefreshAccessToken(refresh)
	require.NoError(t, err)
	assert.NotEmpty(t, access)

	require.NoError(t, RevokeRefreshToken(refresh))

	_, err = RefreshAccessToken(refresh)
	assert.Error(t, err)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	setupTestDB(t)
	t.Setenv("JWT_SECRET", "test-secret")
	user := createTestUser(t, "x@example.com", models.RoleCustomer)

	access, err := utils.GenerateJWT(user.Email, user.ID, user.Role)
	require.NoError(t, err)

	_, err = RefreshAccessToken(access)
	assert.Error(t, err)
}

func TestPasswordReset(t *testing.T) {
	setupTestDB(t)
	user := createTestUser(t, "p@example.com", models.RoleCustomer)

	// StartPasswordReset errs on the SES send in tests, the code is
	// still persisted.
	_ = StartPasswordReset(user.Email)

	var withCode models.User
	require.NoError(t, config.DB.First(&withCode, user.ID).Error)
	require.NotEmpty(t, withCode.ResetToken)

	require.NoError(t, ResetPassword(withCode.ResetToken, "brand-new-pass"))

	var after models.User
	require.NoError(t, config.DB.First(&after, user.ID).Error)
	assert.Empty(t, after.ResetToken)
	assert.True(t, utils.CheckPasswordHash("brand-new-pass", after.Password))

	// token is single-use
	assert.Error(t, ResetPassword(withCode.ResetToken, "another-pass"))
}
