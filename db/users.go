package db

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"go-soultalk/types"
)

// GetUser fetches a user by document ID. Returns nil without error when the
// user does not exist.
func GetUser(client *firestore.Client, userID string) (*types.User, error) {
	ctx := context.Background()

	doc, err := client.Collection("users").Doc(userID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, nil
		}
		return nil, err
	}

	var user types.User
	if err := doc.DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail looks a user up by email. Returns nil without error when no
// account exists for that address.
func GetUserByEmail(client *firestore.Client, email string) (*types.User, error) {
	ctx := context.Background()

	docs, err := client.Collection("users").
		Where("email", "==", email).
		Limit(1).
		Documents(ctx).
		GetAll()
	if err != nil {
		return nil, err
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user types.User
	if err := docs[0].DataTo(&user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateUser registers a new account. The email must not already be taken;
// the raw password is stored as a sha256 digest, never as-is.
func CreateUser(client *firestore.Client, req types.SignupRequest) (*types.User, error) {
	ctx := context.Background()

	existing, err := GetUserByEmail(client, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered: %s", req.Email)
	}

	user := types.User{
		ID:                     uuid.NewString(),
		Email:                  req.Email,
		PasswordHash:           HashString(req.Password),
		Name:                   req.Name,
		ProfilePic:             req.ProfilePic,
		Country:                req.Country,
		EmergencyContactName:   req.EmergencyContactName,
		EmergencyContactNumber: req.EmergencyContactNumber,
		IsAdmin:                req.IsAdmin,
		CreatedAt:              time.Now().UTC().Format(time.RFC3339),
	}

	if _, err := client.Collection("users").Doc(user.ID).Set(ctx, user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUsers lists every account.
func GetUsers(client *firestore.Client) ([]types.User, error) {
	ctx := context.Background()
	var users []types.User

	iter := client.Collection("users").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var user types.User
		if err := doc.DataTo(&user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

// UpdateUser applies a partial update to a user document.
func UpdateUser(client *firestore.Client, userID string, updates map[string]interface{}) error {
	ctx := context.Background()

	// Never let a raw password through an update payload.
	if pw, ok := updates["password"]; ok {
		delete(updates, "password")
		if s, ok := pw.(string); ok && s != "" {
			updates["passwordHash"] = HashString(s)
		}
	}

	_, err := client.Collection("users").Doc(userID).Set(ctx, updates, firestore.MergeAll)
	return err
}
