package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/tamilred/playerbot/internal/locale"
	"github.com/tamilred/playerbot/internal/models"
	"github.com/tamilred/playerbot/internal/utils"
)

type userRepository struct {
	logger *logrus.Entry
	users  *mongo.Collection
}

func NewUserRepository(logger *logrus.Entry, users *mongo.Collection) utils.UserRepository {
	return &userRepository{
		logger: logger,
		users:  users,
	}
}

func (r *userRepository) EnsureUser(ctx context.Context, userID int64) error {
	// $setOnInsert keeps this insert-only: an existing language preference
	// is never overwritten by a repeated /start.
	_, err := r.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$setOnInsert": bson.M{
			"user_id":    userID,
			"lang":       locale.Default,
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.logger.WithError(err).Error("Failed to ensure user record")
		return fmt.Errorf("failed to ensure user: %w", err)
	}
	return nil
}

func (r *userRepository) SetLanguage(ctx context.Context, userID int64, lang string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"lang":       lang,
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.logger.WithError(err).Error("Failed to save user language")
		return fmt.Errorf("failed to set language: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"userId": userID,
		"lang":   lang,
	}).Info("Saved user language")

	return nil
}

func (r *userRepository) SetExpiry(ctx context.Context, userID int64, expiry time.Time) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"user_id": userID},
		bson.M{"$set": bson.M{
			"expiry":     expiry.UTC(),
			"updated_at": time.Now().UTC(),
		}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		r.logger.WithError(err).Error("Failed to save user expiry")
		return fmt.Errorf("failed to set expiry: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"userId": userID,
		"expiry": expiry.UTC().Format(time.RFC3339),
	}).Info("Saved user expiry")

	return nil
}

func (r *userRepository) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	var user models.User
	err := r.users.FindOne(ctx, bson.M{"user_id": userID}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		// User not found
		return nil, nil
	}
	if err != nil {
		r.logger.WithError(err).Error("Failed to get user record")
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}
