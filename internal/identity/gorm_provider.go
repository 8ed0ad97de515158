package identity

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/bookeasy-app/booking-api/internal/domain/booking"
	"github.com/bookeasy-app/booking-api/internal/httperr"
	"github.com/bookeasy-app/booking-api/internal/models"
)

// GormProvider is the production identity provider backed by the users table.
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (p *GormProvider) Login(
	ctx context.Context,
	email string,
	password string,
) (*booking.Identity, error) {

	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := p.db.WithContext(ctx).
		Where("email = ?", email).
		First(&user).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, httperr.ErrBusiness(httperr.CodeNetworkError)
	}

	if err := bcrypt.CompareHashAndPassword(
		[]byte(user.PasswordHash),
		[]byte(password),
	); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return toIdentity(&user), nil
}

func (p *GormProvider) Register(
	ctx context.Context,
	in Profile,
) (*booking.Identity, error) {

	email := strings.ToLower(strings.TrimSpace(in.Email))

	var count int64
	if err := p.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNetworkError)
	}
	if count > 0 {
		return nil, httperr.ErrBusiness(httperr.CodeAccountExists)
	}

	hashed, err := bcrypt.GenerateFromPassword(
		[]byte(in.Password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return nil, err
	}

	user := models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        in.Phone,
	}

	if err := p.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeNetworkError)
	}

	return toIdentity(&user), nil
}

// ResetPassword only verifies the account exists. Mail delivery is owned by
// the front door (the app shows a generic message either way).
func (p *GormProvider) ResetPassword(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	if err := p.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return httperr.ErrBusiness(httperr.CodeNetworkError)
	}

	if count == 0 {
		return httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	return nil
}

func (p *GormProvider) Lookup(
	ctx context.Context,
	id string,
) (*booking.Identity, error) {

	userID, err := strconv.ParseUint(id, 10, 64)
	if err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
	}

	var user models.User
	if err := p.db.WithContext(ctx).First(&user, uint(userID)).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, httperr.ErrBusiness(httperr.CodeInvalidCredentials)
		}
		return nil, httperr.ErrBusiness(httperr.CodeNetworkError)
	}

	return toIdentity(&user), nil
}

func toIdentity(u *models.User) *booking.Identity {
	return &booking.Identity{
		ID:        fmt.Sprintf("%d", u.ID),
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Phone:     u.Phone,
	}
}

// Compile-time check
var _ Provider = (*GormProvider)(nil)
