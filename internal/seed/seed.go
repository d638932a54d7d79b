// Package seed initializes the store on startup: demo accounts, empty
// collections and the hotel catalog. Seeding is idempotent; keys that
// already exist are left untouched.
package seed

import (
	"context"
	"fmt"
	"travelease/infras/kvstore"
	bookingModel "travelease/internal/domains/booking/model"
	historyModel "travelease/internal/domains/history/model"
	hotelModel "travelease/internal/domains/hotel/model"
	hotelRepo "travelease/internal/domains/hotel/repository"
	userModel "travelease/internal/domains/user/model"
	userRepo "travelease/internal/domains/user/repository"
	wishlistModel "travelease/internal/domains/wishlist/model"
	"travelease/shared/password"
	"travelease/shared/repository"
	"travelease/shared/timezone"

	"github.com/rs/zerolog/log"
)

const demoPassword = "password123"

type Seeder struct {
	store        kvstore.Store
	users        userRepo.User
	hotels       hotelRepo.Hotel
	destinations hotelRepo.Destination
}

func New(store kvstore.Store, users userRepo.User, hotels hotelRepo.Hotel, destinations hotelRepo.Destination) *Seeder {
	return &Seeder{
		store:        store,
		users:        users,
		hotels:       hotels,
		destinations: destinations,
	}
}

// Run must be called before the server starts handling requests.
func (s *Seeder) Run(ctx context.Context) error {
	if err := s.seedUsers(ctx); err != nil {
		return err
	}

	if err := s.seedEmptyCollections(ctx); err != nil {
		return err
	}

	if err := s.seedCatalog(ctx); err != nil {
		return err
	}

	log.Info().Msg("Store seeding complete")

	return nil
}

func (s *Seeder) exists(ctx context.Context, entity string) (bool, error) {
	_, ok, err := s.store.Get(ctx, repository.CollectionKey(entity))
	if err != nil {
		return false, fmt.Errorf("failed to check collection %s: %w", entity, err)
	}

	return ok, nil
}

func (s *Seeder) seedUsers(ctx context.Context) error {
	ok, err := s.exists(ctx, userModel.EntityName)
	if err != nil || ok {
		return err
	}

	demo := []struct {
		name  string
		email string
		phone string
	}{
		{name: "John Doe", email: "john@example.com", phone: "+1234567890"},
		{name: "Jane Smith", email: "jane@example.com", phone: "+0987654321"},
	}

	for _, account := range demo {
		id, err := s.users.NextID(ctx)
		if err != nil {
			return fmt.Errorf("failed to allocate demo user id: %w", err)
		}

		hash, err := password.Hash(demoPassword)
		if err != nil {
			return fmt.Errorf("failed to hash demo password: %w", err)
		}

		user := userModel.User{
			ID:          id,
			Name:        account.name,
			Email:       account.email,
			Password:    hash,
			Phone:       account.phone,
			Preferences: userModel.DefaultPreferences(),
			CreatedAt:   timezone.Now(),
		}

		if err = s.users.Append(ctx, user); err != nil {
			return fmt.Errorf("failed to seed demo user: %w", err)
		}
	}

	log.Info().Int("count", len(demo)).Msg("Seeded demo users")

	return nil
}

func (s *Seeder) seedEmptyCollections(ctx context.Context) error {
	for _, entity := range []string{bookingModel.EntityName, wishlistModel.EntityName, historyModel.EntityName} {
		ok, err := s.exists(ctx, entity)
		if err != nil {
			return err
		}

		if ok {
			continue
		}

		if err = s.store.Set(ctx, repository.CollectionKey(entity), []byte("[]")); err != nil {
			return fmt.Errorf("failed to seed collection %s: %w", entity, err)
		}
	}

	return nil
}

func (s *Seeder) seedCatalog(ctx context.Context) error {
	ok, err := s.exists(ctx, hotelModel.EntityName)
	if err != nil {
		return err
	}

	if !ok {
		if err = s.hotels.ReplaceAll(ctx, Hotels()); err != nil {
			return fmt.Errorf("failed to seed hotels: %w", err)
		}

		log.Info().Int("count", len(Hotels())).Msg("Seeded hotel catalog")
	}

	ok, err = s.exists(ctx, hotelModel.DestinationEntityName)
	if err != nil {
		return err
	}

	if !ok {
		if err = s.destinations.ReplaceAll(ctx, Destinations()); err != nil {
			return fmt.Errorf("failed to seed destinations: %w", err)
		}

		log.Info().Int("count", len(Destinations())).Msg("Seeded destinations")
	}

	return nil
}
