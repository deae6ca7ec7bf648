package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/devlinkhq/devlink-api/internal/model"
	"github.com/devlinkhq/devlink-api/internal/repository"
)

// ProfileUsecase defines the interface for profile-related use cases.
type ProfileUsecase interface {
	Upsert(ctx context.Context, ownerID string, params UpsertProfileParams) (*model.Profile, error)
	GetOwn(ctx context.Context, ownerID string) (*model.Profile, error)
	GetAll(ctx context.Context) ([]*model.Profile, error)
	GetByOwner(ctx context.Context, ownerID string) (*model.Profile, error)
	DeleteAccount(ctx context.Context, ownerID string) error
	AddExperience(ctx context.Context, ownerID string, params ExperienceParams) (*model.Profile, error)
	RemoveExperience(ctx context.Context, ownerID, entryID string) (*model.Profile, error)
	AddEducation(ctx context.Context, ownerID string, params EducationParams) (*model.Profile, error)
	RemoveEducation(ctx context.Context, ownerID, entryID string) (*model.Profile, error)
}

// UpsertProfileParams defines the fields for a create-or-update of the owner's
// profile. Skills is the raw comma-separated string as submitted; nil pointer
// fields are left untouched on an existing profile.
type UpsertProfileParams struct {
	Status         string
	Skills         string
	Company        *string
	Location       *string
	Website        *string
	Bio            *string
	GithubUsername *string
	Youtube        *string
	Twitter        *string
	Facebook       *string
	Instagram      *string
	Linkedin       *string
}

// ExperienceParams defines a new work history entry.
type ExperienceParams struct {
	Title       string
	Company     string
	Location    string
	From        time.Time
	To          *time.Time
	Current     bool
	Description string
}

// EducationParams defines a new education history entry.
type EducationParams struct {
	School       string
	Degree       string
	FieldOfStudy string
	From         time.Time
	To           *time.Time
	Current      bool
	Description  string
}

// ErrProfileNotFound is returned when the owner has no profile document.
var ErrProfileNotFound = errors.New("profile not found")

type profileUsecase struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

// NewProfileUsecase creates the profile use case.
func NewProfileUsecase(
	profileRepo repository.ProfileRepository,
	userRepo repository.UserRepository,
) ProfileUsecase {
	return &profileUsecase{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// ParseSkills splits a comma-separated skills string into an ordered list,
// trimming whitespace around each element. Empty elements are kept.
func ParseSkills(skills string) []string {
	parts := strings.Split(skills, ",")
	for i, part := range parts {
		parts[i] = strings.TrimSpace(part)
	}

	return parts
}

func (u *profileUsecase) Upsert(
	ctx context.Context,
	ownerID string,
	params UpsertProfileParams,
) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	return u.profileRepo.Upsert(ctx, userID, repository.UpsertProfileParams{
		Status:         &params.Status,
		Skills:         ParseSkills(params.Skills),
		Company:        params.Company,
		Location:       params.Location,
		Website:        params.Website,
		Bio:            params.Bio,
		GithubUsername: params.GithubUsername,
		Youtube:        params.Youtube,
		Twitter:        params.Twitter,
		Facebook:       params.Facebook,
		Instagram:      params.Instagram,
		Linkedin:       params.Linkedin,
	})
}

func (u *profileUsecase) GetOwn(ctx context.Context, ownerID string) (*model.Profile, error) {
	return u.GetByOwner(ctx, ownerID)
}

func (u *profileUsecase) GetAll(ctx context.Context) ([]*model.Profile, error) {
	return u.profileRepo.ListWithOwner(ctx)
}

func (u *profileUsecase) GetByOwner(ctx context.Context, ownerID string) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.GetByUserIDWithOwner(ctx, userID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

// DeleteAccount removes the owner's profile and then the account itself. The
// two deletes are sequential, not transactional: a failure after the first
// leaves a profile-less account behind.
func (u *profileUsecase) DeleteAccount(ctx context.Context, ownerID string) error {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return err
	}

	if err := u.profileRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}

	if err := u.userRepo.DeleteUser(ctx, ownerID); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrProfileNotFound
		}

		return err
	}

	return nil
}

func (u *profileUsecase) AddExperience(
	ctx context.Context,
	ownerID string,
	params ExperienceParams,
) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	entry := model.Experience{
		ID:          uuid.NewString(),
		Title:       params.Title,
		Company:     params.Company,
		Location:    params.Location,
		From:        params.From,
		To:          params.To,
		Current:     params.Current,
		Description: params.Description,
	}

	profile, err := u.profileRepo.PushExperience(ctx, userID, entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

func (u *profileUsecase) RemoveExperience(
	ctx context.Context,
	ownerID, entryID string,
) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.PullExperience(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

func (u *profileUsecase) AddEducation(
	ctx context.Context,
	ownerID string,
	params EducationParams,
) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	entry := model.Education{
		ID:           uuid.NewString(),
		School:       params.School,
		Degree:       params.Degree,
		FieldOfStudy: params.FieldOfStudy,
		From:         params.From,
		To:           params.To,
		Current:      params.Current,
		Description:  params.Description,
	}

	profile, err := u.profileRepo.PushEducation(ctx, userID, entry)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

func (u *profileUsecase) RemoveEducation(
	ctx context.Context,
	ownerID, entryID string,
) (*model.Profile, error) {
	userID, err := ownerObjectID(ownerID)
	if err != nil {
		return nil, err
	}

	profile, err := u.profileRepo.PullEducation(ctx, userID, entryID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrProfileNotFound
		}

		return nil, err
	}

	return profile, nil
}

// ownerObjectID parses the owner id, mapping malformed ids to the same
// not-found error a missing profile produces.
func ownerObjectID(ownerID string) (bson.ObjectID, error) {
	userID, err := bson.ObjectIDFromHex(ownerID)
	if err != nil {
		return bson.ObjectID{}, ErrProfileNotFound
	}

	return userID, nil
}
