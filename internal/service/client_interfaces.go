package service

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/models"
)

// ClientDescriptorService defines the client-side contract for editing a
// soft descriptor: local checks while typing, server-side validation on
// submit and a test purchase through the server's bogus gateway.
type ClientDescriptorService interface {
	// Check runs the full rule set locally and returns the recorded
	// messages. It never touches the network.
	Check(d models.SoftDescriptor) models.FieldErrors

	// Submit validates d on the server. A descriptor that fails the local
	// check is returned as an invalid result without a round trip.
	// Returns an error only if the server could not be asked.
	Submit(ctx context.Context, d models.SoftDescriptor) (models.ValidationResult, error)

	// TestPurchase charges amount (minor units) to the bogus gateway's
	// fixed token with d attached, so the server validates the descriptor
	// as part of a purchase.
	TestPurchase(ctx context.Context, d models.SoftDescriptor, amount int64) (models.GatewayResponse, error)

	// ServerVersion returns the version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
