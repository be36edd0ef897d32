// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/danielhkuo/bayroumeter/models"
)

// Collection names, matching the containers of the document database
const (
	UsersCollection = "users"
	VotesCollection = "votes"
)

// MongoRepository stores users and votes as documents.
// Users are keyed by id and votes by userId, with unique indexes on
// users.email and votes.userId.
type MongoRepository struct {
	client *mongo.Client
	users  *mongo.Collection
	votes  *mongo.Collection
}

// NewMongoRepository connects to uri and ensures the collections' indexes exist
func NewMongoRepository(ctx context.Context, uri, database string) (*MongoRepository, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connection failed: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		client.Disconnect(ctx)
		return nil, fmt.Errorf("mongo ping failed: %w", err)
	}

	r := &MongoRepository{
		client: client,
		users:  client.Database(database).Collection(UsersCollection),
		votes:  client.Database(database).Collection(VotesCollection),
	}

	if err := r.EnsureIndexes(ctx); err != nil {
		client.Disconnect(ctx)
		return nil, err
	}

	return r, nil
}

// EnsureIndexes creates the unique indexes if absent.
// Safe to call multiple times.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.users.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("failed to create user indexes: %w", err)
	}

	_, err = r.votes.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "choice", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("failed to create vote indexes: %w", err)
	}

	return nil
}

func (r *MongoRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, bson.D{{Key: "email", Value: email}})
}

func (r *MongoRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, bson.D{{Key: "id", Value: id}})
}

func (r *MongoRepository) findUser(ctx context.Context, filter bson.D) (models.User, error) {
	var u models.User
	err := r.users.FindOne(ctx, filter).Decode(&u)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	u.CreatedAt = u.CreatedAt.UTC()
	return u, nil
}

func (r *MongoRepository) ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := r.users.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	for i := range users {
		users[i].CreatedAt = users[i].CreatedAt.UTC()
	}

	return users, nil
}

func (r *MongoRepository) InsertUser(ctx context.Context, user models.User) error {
	_, err := r.users.InsertOne(ctx, user)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (r *MongoRepository) FindVoteByUserID(ctx context.Context, userID string) (models.Vote, error) {
	var v models.Vote
	err := r.votes.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Vote{}, ErrNotFound
	}
	if err != nil {
		return models.Vote{}, fmt.Errorf("failed to query vote: %w", err)
	}
	v.CreatedAt = v.CreatedAt.UTC()
	return v, nil
}

func (r *MongoRepository) ListVotes(ctx context.Context) ([]models.Vote, error) {
	cursor, err := r.votes.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("failed to query votes: %w", err)
	}

	votes := []models.Vote{}
	if err := cursor.All(ctx, &votes); err != nil {
		return nil, fmt.Errorf("failed to decode votes: %w", err)
	}
	for i := range votes {
		votes[i].CreatedAt = votes[i].CreatedAt.UTC()
	}

	return votes, nil
}

// CountVotesByChoice groups votes by choice server-side.
// Each row decodes as {_id: choice, count: n}.
func (r *MongoRepository) CountVotesByChoice(ctx context.Context) ([]models.ChoiceCount, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$choice"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := r.votes.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to count votes: %w", err)
	}

	var counts []models.ChoiceCount
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("failed to decode vote counts: %w", err)
	}

	return counts, nil
}

func (r *MongoRepository) InsertVote(ctx context.Context, vote models.Vote) error {
	_, err := r.votes.InsertOne(ctx, vote)
	if mongo.IsDuplicateKeyError(err) {
		return ErrDuplicate
	}
	if err != nil {
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

func (r *MongoRepository) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return r.client.Disconnect(ctx)
}
