package impl

import (
	"context"
	"crypto/rand"
	"strings"

	"servicehub/internal/domain/entity"
	domainerrors "servicehub/internal/domain/errors"
	"servicehub/internal/domain/repository"
	"servicehub/internal/domain/service"
	"servicehub/internal/errors"
)

// identityResolver finds or creates the shared User a Partner is linked through.
type identityResolver struct {
	userRepo    repository.UserRepository
	hasher      service.PasswordHasher
	emailDomain string
}

func newIdentityResolver(userRepo repository.UserRepository, hasher service.PasswordHasher, emailDomain string) *identityResolver {
	return &identityResolver{
		userRepo:    userRepo,
		hasher:      hasher,
		emailDomain: emailDomain,
	}
}

// Resolve returns the oldest User matching the partner's email or phone, creating one when
// nothing matches. A partner without email is matched on its synthetic address, so a User
// created by an earlier run is found again. created reports whether a User was inserted.
func (r *identityResolver) Resolve(ctx context.Context, partner *entity.Partner) (user *entity.User, created bool, err error) {
	phone := strings.TrimSpace(partner.PhoneNumber)
	if phone == "" {
		return nil, false, newStepError(domainerrors.ErrIdentityResolutionFailed, errors.New("phone number is required"))
	}

	email := entity.ResolveEmail(partner, r.emailDomain)

	user, err = r.userRepo.FindByEmailOrPhone(ctx, email, phone)
	if err == nil {
		return user, false, nil
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, false, newStepError(domainerrors.ErrIdentityResolutionFailed, errors.Wrap(err, "failed to find user"))
	}

	user, err = r.newUser(partner, email, phone)
	if err != nil {
		return nil, false, newStepError(domainerrors.ErrIdentityResolutionFailed, err)
	}

	// A concurrent writer may win the unique email between lookup and create. That loser is
	// reported and converges on the next run.
	if err := r.userRepo.Create(ctx, user); err != nil {
		return nil, false, newStepError(domainerrors.ErrIdentityResolutionFailed, errors.Wrap(err, "failed to create user"))
	}

	return user, true, nil
}

// newUser builds the linkage-anchor account. Its secret is random and never handed out.
func (r *identityResolver) newUser(partner *entity.Partner, email, phone string) (*entity.User, error) {
	passwordHash, err := r.hasher.Hash(rand.Text())
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash generated secret")
	}

	return &entity.User{
		Name:         entity.ResolveDisplayName(partner),
		Email:        email,
		Phone:        phone,
		PasswordHash: passwordHash,
		Role:         entity.RoleUser,
		IsActive:     true,
	}, nil
}
