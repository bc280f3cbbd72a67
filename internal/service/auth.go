package service

import (
	"errors"
	"regexp"
	"strings"

	"recharge_system/internal/apperr"
	"recharge_system/internal/domain"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	mobileRegexp = regexp.MustCompile(`^\d{10}$`)
	emailRegexp  = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@(.+)$`)
	// Characters stripped from display names to reduce injection risk.
	nameSanitizer = strings.NewReplacer("<", "", ">", "", `"`, "", "&", "", "'", "", "%", "", ";", "")
)

// IsValidMobileNumber reports whether the number is exactly 10 digits.
func IsValidMobileNumber(mobile string) bool {
	return mobileRegexp.MatchString(mobile)
}

// IsValidEmail reports whether the address has a local part and a domain.
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(email)
}

// SanitizeName strips markup and quoting characters from a display name.
func SanitizeName(name string) string {
	return nameSanitizer.Replace(name)
}

// RegisterRequest carries a registration submission.
type RegisterRequest struct {
	Name         string
	MobileNumber string
	Email        string
	Password     string
}

// Register validates the submission, hashes the password and stores a new
// user with role "user". Duplicate checks run before the insert so the caller
// gets a conflict with a usable message rather than a raw constraint error.
func Register(db *gorm.DB, req RegisterRequest) (*domain.User, error) {
	if !IsValidMobileNumber(req.MobileNumber) {
		return nil, apperr.Validationf("mobile number must be exactly 10 digits")
	}
	if !IsValidEmail(req.Email) {
		return nil, apperr.Validationf("invalid email format")
	}
	if err := db.Where("mobile_number = ?", req.MobileNumber).First(&domain.User{}).Error; err == nil {
		return nil, apperr.Conflictf("mobile number already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if err := db.Where("email = ?", req.Email).First(&domain.User{}).Error; err == nil {
		return nil, apperr.Conflictf("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := domain.User{
		Name:         SanitizeName(req.Name),
		MobileNumber: req.MobileNumber,
		Email:        req.Email,
		Password:     string(hash),
		Role:         domain.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		// Lost a race against a concurrent registration for the same
		// mobile/email; the unique constraints hold the invariant.
		return nil, apperr.Conflictf("mobile number or email already registered")
	}
	logrus.WithFields(logrus.Fields{
		"user_id": user.ID,
		"mobile":  user.MobileNumber,
	}).Info("User registered")
	return &user, nil
}

// Login authenticates by mobile number and password. Any mismatch — unknown
// number or wrong password — yields the same error, on purpose.
func Login(db *gorm.DB, mobileNumber, password string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("mobile_number = ?", mobileNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Authf("invalid credentials")
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, apperr.Authf("invalid credentials")
	}
	return &user, nil
}

// EmailByMobile returns the registered email for a mobile number, for the
// forgot-password flow.
func EmailByMobile(db *gorm.DB, mobileNumber string) (string, error) {
	var user domain.User
	if err := db.Where("mobile_number = ?", mobileNumber).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apperr.NotFoundf("User not found")
		}
		return "", err
	}
	if user.Email == "" {
		return "", apperr.NotFoundf("Email not registered for this user")
	}
	return user.Email, nil
}

// ResetPassword overwrites the password hash for the account registered under
// the email. No possession proof (OTP or token) is required; that gap is
// inherited from the product's current flow.
func ResetPassword(db *gorm.DB, email, newPassword string) error {
	var user domain.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFoundf("User not found with this email")
		}
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	if err := db.Model(&user).Update("password", string(hash)).Error; err != nil {
		return err
	}
	logrus.WithField("user_id", user.ID).Info("Password reset")
	return nil
}

// AdminSeed configures the default admin account EnsureAdmin maintains.
type AdminSeed struct {
	MobileNumber string
	Email        string
	Password     string
}

// EnsureAdmin creates the default admin account if no user exists at the
// seed's mobile number. Idempotent; called once during process startup.
func EnsureAdmin(db *gorm.DB, seed AdminSeed) error {
	err := db.Where("mobile_number = ?", seed.MobileNumber).First(&domain.User{}).Error
	if err == nil {
		return nil // Already seeded
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	admin := domain.User{
		Name:         "Admin",
		MobileNumber: seed.MobileNumber,
		Email:        seed.Email,
		Password:     string(hash),
		Role:         domain.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return err
	}
	logrus.WithField("mobile", seed.MobileNumber).Info("Admin account created")
	return nil
}
