package usecase

import (
	"context"

	"jobscout/internal/domain/profile"
	"jobscout/internal/repository"
)

type ProfileUsecase interface {
	Get(ctx context.Context) (profile.InterestProfile, error)
	Save(ctx context.Context, p profile.InterestProfile) error
	ListReputable(ctx context.Context) ([]string, error)
	SaveReputable(ctx context.Context, names []string) error
}

type Profile struct {
	profile   repository.ProfileRepository
	reputable repository.ReputableRepository
}

func NewProfileUsecase(profileRepo repository.ProfileRepository, reputable repository.ReputableRepository) *Profile {
	return &Profile{profile: profileRepo, reputable: reputable}
}

func (u *Profile) Get(ctx context.Context) (profile.InterestProfile, error) {
	p, err := u.profile.Get(ctx)
	if err != nil {
		return profile.InterestProfile{}, ErrInternal
	}
	return p, nil
}

// Save overwrites the whole profile document; there is no merge.
func (u *Profile) Save(ctx context.Context, p profile.InterestProfile) error {
	rp := p.Normalize().RemotePreference
	switch rp {
	case "any", "remote", "hybrid", "onsite":
	default:
		return ErrInvalidInput
	}

	if err := u.profile.Save(ctx, p); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Profile) ListReputable(ctx context.Context) ([]string, error) {
	out, err := u.reputable.List(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Profile) SaveReputable(ctx context.Context, names []string) error {
	if err := u.reputable.Replace(ctx, names); err != nil {
		return ErrInternal
	}
	return nil
}
