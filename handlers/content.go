package handlers

import (
	"net/http"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"go-soultalk/db"
	"go-soultalk/types"
)

// GetExercises lists the exercise library.
func GetExercises(c *gin.Context, firestoreClient *firestore.Client) {
	exercises, err := db.GetExercises(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if exercises == nil {
		exercises = []types.Exercise{}
	}
	c.JSON(http.StatusOK, exercises)
}

// CreateExercise adds an exercise to the library.
func CreateExercise(c *gin.Context, firestoreClient *firestore.Client) {
	var exercise types.Exercise
	if err := c.ShouldBindJSON(&exercise); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := db.CreateExercise(firestoreClient, exercise)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteExercise removes an exercise by ID.
func DeleteExercise(c *gin.Context, firestoreClient *firestore.Client) {
	if err := db.DeleteExercise(firestoreClient, c.Param("exerciseID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetSoundscapes lists the soundscape library.
func GetSoundscapes(c *gin.Context, firestoreClient *firestore.Client) {
	sounds, err := db.GetSoundscapes(firestoreClient)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if sounds == nil {
		sounds = []types.Soundscape{}
	}
	c.JSON(http.StatusOK, sounds)
}

// CreateSoundscape adds a soundscape to the library.
func CreateSoundscape(c *gin.Context, firestoreClient *firestore.Client) {
	var sound types.Soundscape
	if err := c.ShouldBindJSON(&sound); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := db.CreateSoundscape(firestoreClient, sound)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, created)
}

// DeleteSoundscape removes a soundscape by ID.
func DeleteSoundscape(c *gin.Context, firestoreClient *firestore.Client) {
	if err := db.DeleteSoundscape(firestoreClient, c.Param("soundID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
