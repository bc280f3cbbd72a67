package service

import (
	"testing"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func registerAsha(t *testing.T, db *gorm.DB) *domain.User {
	t.Helper()
	user, err := Register(db, RegisterRequest{
		Name:         "Asha",
		MobileNumber: "9876543210",
		Email:        "asha@example.com",
		Password:     "s3cret-pass",
	})
	require.NoError(t, err)
	return user
}

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	user := registerAsha(t, db)

	assert.NotZero(t, user.ID)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret-pass")))
}

func TestRegister_SanitizesName(t *testing.T) {
	db := newTestDB(t)
	user, err := Register(db, RegisterRequest{
		Name:         `As<h>a"&'%;`,
		MobileNumber: "9876543211",
		Email:        "asha2@example.com",
		Password:     "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asha", user.Name)
}

func TestRegister_RejectsBadMobile(t *testing.T) {
	db := newTestDB(t)
	for _, mobile := range []string{"", "12345", "98765432100", "98765abc10", "+919876543210"} {
		_, err := Register(db, RegisterRequest{
			Name: "A", MobileNumber: mobile, Email: "a@example.com", Password: "pw",
		})
		require.Error(t, err, "mobile %q", mobile)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
	// Nothing reached the store.
	assert.EqualValues(t, 0, countRows(t, db, &domain.User{}))
}

func TestRegister_RejectsBadEmail(t *testing.T) {
	db := newTestDB(t)
	for _, email := range []string{"", "plainaddress", "missing-domain@"} {
		_, err := Register(db, RegisterRequest{
			Name: "A", MobileNumber: "9876543210", Email: email, Password: "pw",
		})
		require.Error(t, err, "email %q", email)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	}
}

func TestRegister_DuplicateMobileAndEmail(t *testing.T) {
	db := newTestDB(t)
	registerAsha(t, db)

	_, err := Register(db, RegisterRequest{
		Name: "B", MobileNumber: "9876543210", Email: "other@example.com", Password: "pw",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	_, err = Register(db, RegisterRequest{
		Name: "B", MobileNumber: "9000000000", Email: "asha@example.com", Password: "pw",
	})
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	assert.EqualValues(t, 1, countRows(t, db, &domain.User{}))
}

func TestLogin(t *testing.T) {
	db := newTestDB(t)
	registered := registerAsha(t, db)

	user, err := Login(db, "9876543210", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	db := newTestDB(t)
	registerAsha(t, db)

	// Wrong password and unknown number fail identically.
	_, wrongPass := Login(db, "9876543210", "bad-pass")
	_, unknown := Login(db, "9111111111", "s3cret-pass")
	for _, err := range []error{wrongPass, unknown} {
		require.Error(t, err)
		assert.Equal(t, apperr.KindAuth, apperr.KindOf(err))
		assert.Equal(t, "invalid credentials", err.Error())
	}
}

func TestEmailByMobile(t *testing.T) {
	db := newTestDB(t)
	registerAsha(t, db)

	email, err := EmailByMobile(db, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", email)

	_, err = EmailByMobile(db, "9111111111")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestResetPassword(t *testing.T) {
	db := newTestDB(t)
	registerAsha(t, db)

	require.NoError(t, ResetPassword(db, "asha@example.com", "new-pass"))

	_, err := Login(db, "9876543210", "s3cret-pass")
	require.Error(t, err, "old password must no longer work")

	_, err = Login(db, "9876543210", "new-pass")
	assert.NoError(t, err)
}

func TestResetPassword_UnknownEmail(t *testing.T) {
	db := newTestDB(t)
	err := ResetPassword(db, "nobody@example.com", "new-pass")
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestEnsureAdmin_Idempotent(t *testing.T) {
	db := newTestDB(t)
	seed := AdminSeed{MobileNumber: "9999999999", Email: "admin@recharge.local", Password: "admin123"}

	require.NoError(t, EnsureAdmin(db, seed))
	require.NoError(t, EnsureAdmin(db, seed))

	assert.EqualValues(t, 1, countRows(t, db, &domain.User{}))

	admin, err := Login(db, "9999999999", "admin123")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, admin.Role)
}
