package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/devlinkhq/devlink-api/internal/model"
)

// ProfileRepository defines the interface for profile-related database
// operations. Every mutation is a single atomic document update so concurrent
// requests for the same owner cannot lose writes; there is no in-process
// read-modify-write cycle.
type ProfileRepository interface {
	GetByUserIDWithOwner(ctx context.Context, userID bson.ObjectID) (*model.Profile, error)
	ListWithOwner(ctx context.Context) ([]*model.Profile, error)
	Upsert(ctx context.Context, userID bson.ObjectID, params UpsertProfileParams) (*model.Profile, error)
	PushExperience(ctx context.Context, userID bson.ObjectID, entry model.Experience) (*model.Profile, error)
	PullExperience(ctx context.Context, userID bson.ObjectID, entryID string) (*model.Profile, error)
	PushEducation(ctx context.Context, userID bson.ObjectID, entry model.Education) (*model.Profile, error)
	PullEducation(ctx context.Context, userID bson.ObjectID, entryID string) (*model.Profile, error)
	DeleteByUserID(ctx context.Context, userID bson.ObjectID) error
}

// UpsertProfileParams defines the optional fields for a partial profile
// update. Only the fields that are not nil will be set; absent fields keep
// their stored values.
type UpsertProfileParams struct {
	Status         *string
	Skills         []string
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

const profileCollection = "profiles"

// ownerProjection strips everything from the joined owner document except the
// public display subset. The password hash must never leave the database.
var ownerProjection = bson.D{
	{Key: "owner._id", Value: 0},
	{Key: "owner.email", Value: 0},
	{Key: "owner.password_hash", Value: 0},
	{Key: "owner.created_at", Value: 0},
	{Key: "owner.updated_at", Value: 0},
}

type profileMongoRepository struct {
	db *mongo.Database
}

// NewProfileMongoRepository creates the Mongo-backed profile repository.
func NewProfileMongoRepository(db *mongo.Database) ProfileRepository {
	return &profileMongoRepository{db: db}
}

func (r *profileMongoRepository) GetByUserIDWithOwner(
	ctx context.Context,
	userID bson.ObjectID,
) (*model.Profile, error) {
	pipeline := append(mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
	}, ownerLookupStages()...)

	cursor, err := r.db.Collection(profileCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return nil, err
		}

		return nil, mongo.ErrNoDocuments
	}

	var profile model.Profile
	if err := cursor.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) ListWithOwner(ctx context.Context) ([]*model.Profile, error) {
	cursor, err := r.db.Collection(profileCollection).Aggregate(ctx, mongo.Pipeline(ownerLookupStages()))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var profiles []*model.Profile
	for cursor.Next(ctx) {
		var profile model.Profile
		if err := cursor.Decode(&profile); err != nil {
			return nil, err
		}
		profiles = append(profiles, &profile)
	}

	if err := cursor.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

func (r *profileMongoRepository) Upsert(
	ctx context.Context,
	userID bson.ObjectID,
	params UpsertProfileParams,
) (*model.Profile, error) {
	now := time.Now()

	set := buildUpsertSet(params)
	set["updated_at"] = now

	update := bson.M{
		"$set": set,
		"$setOnInsert": bson.M{
			"user_id":    userID,
			"experience": bson.A{},
			"education":  bson.A{},
			"created_at": now,
		},
	}

	result := r.db.Collection(profileCollection).FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		update,
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileMongoRepository) PushExperience(
	ctx context.Context,
	userID bson.ObjectID,
	entry model.Experience,
) (*model.Profile, error) {
	return r.updateOne(ctx, userID, pushFrontUpdate("experience", entry))
}

func (r *profileMongoRepository) PullExperience(
	ctx context.Context,
	userID bson.ObjectID,
	entryID string,
) (*model.Profile, error) {
	return r.updateOne(ctx, userID, pullByIDUpdate("experience", entryID))
}

func (r *profileMongoRepository) PushEducation(
	ctx context.Context,
	userID bson.ObjectID,
	entry model.Education,
) (*model.Profile, error) {
	return r.updateOne(ctx, userID, pushFrontUpdate("education", entry))
}

func (r *profileMongoRepository) PullEducation(
	ctx context.Context,
	userID bson.ObjectID,
	entryID string,
) (*model.Profile, error) {
	return r.updateOne(ctx, userID, pullByIDUpdate("education", entryID))
}

func (r *profileMongoRepository) DeleteByUserID(ctx context.Context, userID bson.ObjectID) error {
	_, err := r.db.Collection(profileCollection).DeleteOne(ctx, bson.M{"user_id": userID})
	return err
}

// updateOne applies a prebuilt update document to the owner's profile and
// returns the updated document. Missing profile surfaces as ErrNoDocuments.
func (r *profileMongoRepository) updateOne(
	ctx context.Context,
	userID bson.ObjectID,
	update bson.M,
) (*model.Profile, error) {
	result := r.db.Collection(profileCollection).FindOneAndUpdate(
		ctx,
		bson.M{"user_id": userID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if result.Err() != nil {
		return nil, result.Err()
	}

	var profile model.Profile
	if err := result.Decode(&profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

// buildUpsertSet translates partial-update params into a $set document. Social
// links are set under dotted paths so links omitted from the request keep
// their stored values.
func buildUpsertSet(params UpsertProfileParams) bson.M {
	set := bson.M{}

	if params.Status != nil {
		set["status"] = *params.Status
	}
	if params.Skills != nil {
		set["skills"] = params.Skills
	}
	if params.Company != nil {
		set["company"] = *params.Company
	}
	if params.Location != nil {
		set["location"] = *params.Location
	}
	if params.Website != nil {
		set["website"] = *params.Website
	}
	if params.Bio != nil {
		set["bio"] = *params.Bio
	}
	if params.GithubUsername != nil {
		set["githubusername"] = *params.GithubUsername
	}
	if params.Youtube != nil {
		set["social.youtube"] = *params.Youtube
	}
	if params.Twitter != nil {
		set["social.twitter"] = *params.Twitter
	}
	if params.Facebook != nil {
		set["social.facebook"] = *params.Facebook
	}
	if params.Instagram != nil {
		set["social.instagram"] = *params.Instagram
	}
	if params.Linkedin != nil {
		set["social.linkedin"] = *params.Linkedin
	}

	return set
}

// pushFrontUpdate builds a $push update inserting the entry at position 0,
// keeping the list in most-recent-first order.
func pushFrontUpdate(field string, entry any) bson.M {
	return bson.M{
		"$push": bson.M{
			field: bson.M{
				"$each":     bson.A{entry},
				"$position": 0,
			},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}
}

// pullByIDUpdate builds a $pull update removing the entry with the given id.
// A non-matching id leaves the list untouched and is not an error.
func pullByIDUpdate(field, entryID string) bson.M {
	return bson.M{
		"$pull": bson.M{
			field: bson.M{"id": entryID},
		},
		"$set": bson.M{"updated_at": time.Now()},
	}
}

// ownerLookupStages joins the owning user's public display subset onto each
// profile document under the "owner" field.
func ownerLookupStages() []bson.D {
	return []bson.D{
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: userCollection},
			{Key: "localField", Value: "user_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "owner"},
		}}},
		{{Key: "$unwind", Value: "$owner"}},
		{{Key: "$project", Value: ownerProjection}},
	}
}
