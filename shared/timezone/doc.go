// Package timezone centralizes clock access so every timestamp the store
// writes (registration, booking, cancellation, wishlist, history) is taken
// in the configured application timezone.
package timezone
