package di

import (
	"travelease/internal/seed"
	"travelease/transport/http"
)

// Service bundles everything main needs: the HTTP server and the seeder
// that primes the store before it starts listening. Both sides share the
// same store instance, which matters for the in-memory driver.
type Service struct {
	HTTP   *http.HTTP
	Seeder *seed.Seeder
}
