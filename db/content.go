package db

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"go-soultalk/types"
)

// GetExercises lists the exercise library.
func GetExercises(client *firestore.Client) ([]types.Exercise, error) {
	ctx := context.Background()
	var exercises []types.Exercise

	iter := client.Collection("exercises").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var ex types.Exercise
		if err := doc.DataTo(&ex); err != nil {
			return nil, err
		}
		exercises = append(exercises, ex)
	}

	return exercises, nil
}

// CreateExercise adds an exercise to the library.
func CreateExercise(client *firestore.Client, ex types.Exercise) (types.Exercise, error) {
	ctx := context.Background()

	ex.ID = uuid.NewString()
	if ex.VisualizationType == "" {
		ex.VisualizationType = "LIST"
	}
	if ex.Steps == nil {
		ex.Steps = []string{}
	}

	_, err := client.Collection("exercises").Doc(ex.ID).Set(ctx, ex)
	return ex, err
}

// DeleteExercise removes an exercise by ID.
func DeleteExercise(client *firestore.Client, exerciseID string) error {
	ctx := context.Background()
	_, err := client.Collection("exercises").Doc(exerciseID).Delete(ctx)
	return err
}

// GetSoundscapes lists the soundscape library.
func GetSoundscapes(client *firestore.Client) ([]types.Soundscape, error) {
	ctx := context.Background()
	var sounds []types.Soundscape

	iter := client.Collection("soundscapes").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var s types.Soundscape
		if err := doc.DataTo(&s); err != nil {
			return nil, err
		}
		sounds = append(sounds, s)
	}

	return sounds, nil
}

// CreateSoundscape adds a soundscape to the library.
func CreateSoundscape(client *firestore.Client, s types.Soundscape) (types.Soundscape, error) {
	ctx := context.Background()
	s.ID = uuid.NewString()
	_, err := client.Collection("soundscapes").Doc(s.ID).Set(ctx, s)
	return s, err
}

// DeleteSoundscape removes a soundscape by ID.
func DeleteSoundscape(client *firestore.Client, soundID string) error {
	ctx := context.Background()
	_, err := client.Collection("soundscapes").Doc(soundID).Delete(ctx)
	return err
}
