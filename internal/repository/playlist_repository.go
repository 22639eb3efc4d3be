package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/tamilred/playerbot/internal/models"
	"github.com/tamilred/playerbot/internal/utils"
)

type playlistRepository struct {
	logger   *logrus.Entry
	playlist *mongo.Collection
}

func NewPlaylistRepository(logger *logrus.Entry, playlist *mongo.Collection) utils.PlaylistRepository {
	return &playlistRepository{
		logger:   logger,
		playlist: playlist,
	}
}

func (r *playlistRepository) AddTrack(ctx context.Context, fileID, title string) error {
	_, err := r.playlist.InsertOne(ctx, models.Track{
		FileID:  fileID,
		Title:   title,
		AddedAt: time.Now().UTC(),
	})
	if err != nil {
		r.logger.WithError(err).Error("Failed to add track to playlist")
		return fmt.Errorf("failed to add track: %w", err)
	}

	r.logger.WithFields(logrus.Fields{
		"fileId": fileID,
		"title":  title,
	}).Info("Added track to playlist")

	return nil
}

func (r *playlistRepository) ListTracks(ctx context.Context) ([]models.Track, error) {
	// Natural order is insertion order; playback relies on it.
	cursor, err := r.playlist.Find(ctx, bson.M{})
	if err != nil {
		r.logger.WithError(err).Error("Failed to list playlist tracks")
		return nil, fmt.Errorf("failed to list tracks: %w", err)
	}
	defer cursor.Close(ctx)

	var tracks []models.Track
	if err := cursor.All(ctx, &tracks); err != nil {
		r.logger.WithError(err).Error("Failed to decode playlist tracks")
		return nil, fmt.Errorf("failed to decode tracks: %w", err)
	}
	return tracks, nil
}
