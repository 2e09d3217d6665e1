package store

import (
	"context"
	"fmt"

	"campusconnect/internal/auth/models"
	"campusconnect/internal/auth/secrets"
)

// seedPassword is the shared password of the sample accounts.
const seedPassword = "password123"

var seedUsers = []models.User{
	{
		ID:         "1",
		Name:       "Rahul Sharma",
		Email:      "rahul@example.com",
		Avatar:     "https://images.pexels.com/photos/614810/pexels-photo-614810.jpeg?auto=compress&cs=tinysrgb&w=150",
		Role:       models.RoleStudent,
		College:    "IIT Delhi",
		Department: "Computer Science",
		Year:       3,
	},
	{
		ID:      "2",
		Name:    "Coding Club",
		Email:   "coding@iitd.ac.in",
		Avatar:  "https://images.pexels.com/photos/3861958/pexels-photo-3861958.jpeg?auto=compress&cs=tinysrgb&w=150",
		Role:    models.RoleClub,
		College: "IIT Delhi",
	},
}

// Seed loads the fixed sample accounts. Hashing happens here rather than in
// the literals so the seed file never carries usable credentials.
func Seed(ctx context.Context, s UserStore) error {
	hash, err := secrets.Hash(seedPassword)
	if err != nil {
		return fmt.Errorf("hash seed password: %w", err)
	}
	for _, user := range seedUsers {
		if err := s.Save(ctx, &models.Credential{User: user, SecretHash: hash}); err != nil {
			return fmt.Errorf("seed user %s: %w", user.Email, err)
		}
	}
	return nil
}
