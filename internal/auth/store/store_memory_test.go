package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"campusconnect/internal/auth/models"
	"campusconnect/pkg/platform/sentinel"
)

type InMemoryUserStoreSuite struct {
	suite.Suite
	store *InMemoryUserStore
}

func TestInMemoryUserStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryUserStoreSuite))
}

func (s *InMemoryUserStoreSuite) SetupTest() {
	s.store = NewInMemoryUserStore()
}

func makeCredential(email string) *models.Credential {
	return &models.Credential{
		User: models.User{
			ID:      uuid.NewString(),
			Name:    "Asha Verma",
			Email:   email,
			Role:    models.RoleStudent,
			College: "IIT Delhi",
		},
		SecretHash: "$2a$10$fakefakefakefakefakefakefakefakefakefakefakefakefake",
	}
}

func (s *InMemoryUserStoreSuite) TestLookupBehavior() {
	s.Run("returns credential by ID when exists", func() {
		cred := makeCredential("asha@x.edu")
		s.Require().NoError(s.store.Save(context.Background(), cred))

		found, err := s.store.FindByID(context.Background(), cred.User.ID)
		s.Require().NoError(err)
		s.Equal(cred, found)
	})

	s.Run("returns credential by exact email match", func() {
		cred := makeCredential("lookup@x.edu")
		s.Require().NoError(s.store.Save(context.Background(), cred))

		found, err := s.store.FindByEmail(context.Background(), "lookup@x.edu")
		s.Require().NoError(err)
		s.Equal(cred, found)
	})

	s.Run("email matching is case-sensitive", func() {
		cred := makeCredential("casesensitive@x.edu")
		s.Require().NoError(s.store.Save(context.Background(), cred))

		_, err := s.store.FindByEmail(context.Background(), "CaseSensitive@x.edu")
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})

	s.Run("returns ErrNotFound when ID does not exist", func() {
		_, err := s.store.FindByID(context.Background(), uuid.NewString())
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryUserStoreSuite) TestEmailUniqueness() {
	s.Run("rejects duplicate email with ErrConflict", func() {
		first := makeCredential("taken@x.edu")
		s.Require().NoError(s.store.Save(context.Background(), first))

		second := makeCredential("taken@x.edu")
		err := s.store.Save(context.Background(), second)
		s.Require().ErrorIs(err, sentinel.ErrConflict)

		// The original record survives the rejected save.
		found, err := s.store.FindByEmail(context.Background(), "taken@x.edu")
		s.Require().NoError(err)
		s.Equal(first.User.ID, found.User.ID)
	})
}

func (s *InMemoryUserStoreSuite) TestUpdateUser() {
	s.Run("updates display fields and keeps email, role, and hash", func() {
		cred := makeCredential("update@x.edu")
		s.Require().NoError(s.store.Save(context.Background(), cred))

		updated := cred.User
		updated.Name = "Asha V."
		updated.Department = "Mathematics"
		updated.Email = "sneaky@x.edu"
		updated.Role = models.RoleCollege
		s.Require().NoError(s.store.UpdateUser(context.Background(), updated))

		found, err := s.store.FindByID(context.Background(), cred.User.ID)
		s.Require().NoError(err)
		s.Equal("Asha V.", found.User.Name)
		s.Equal("Mathematics", found.User.Department)
		s.Equal("update@x.edu", found.User.Email)
		s.Equal(models.RoleStudent, found.User.Role)
		s.Equal(cred.SecretHash, found.SecretHash)
	})

	s.Run("returns ErrNotFound for unknown user", func() {
		err := s.store.UpdateUser(context.Background(), models.User{ID: uuid.NewString(), Name: "Ghost"})
		s.Require().ErrorIs(err, sentinel.ErrNotFound)
	})
}

func (s *InMemoryUserStoreSuite) TestMutationsDoNotAliasCallerMemory() {
	cred := makeCredential("alias@x.edu")
	s.Require().NoError(s.store.Save(context.Background(), cred))

	cred.User.Name = "Mutated After Save"
	found, err := s.store.FindByID(context.Background(), cred.User.ID)
	s.Require().NoError(err)
	s.Equal("Asha Verma", found.User.Name)
}

func (s *InMemoryUserStoreSuite) TestSeed() {
	s.Require().NoError(Seed(context.Background(), s.store))

	rahul, err := s.store.FindByEmail(context.Background(), "rahul@example.com")
	s.Require().NoError(err)
	s.Equal("Rahul Sharma", rahul.User.Name)
	s.Equal(models.RoleStudent, rahul.User.Role)
	s.NotEmpty(rahul.SecretHash)
	s.NotEqual(seedPassword, rahul.SecretHash)

	club, err := s.store.FindByEmail(context.Background(), "coding@iitd.ac.in")
	s.Require().NoError(err)
	s.Equal(models.RoleClub, club.User.Role)
}
