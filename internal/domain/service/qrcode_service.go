package service

import "ubishop/internal/domain/entity"

// QRCodeService defines the interface for store share QR codes
type QRCodeService interface {
	// GenerateStoreQR renders a PNG QR code pointing shoppers at the store
	GenerateStoreQR(store *entity.Store) ([]byte, error)

	// ParseStoreQR reads the payload of a store QR code and returns the store ID
	ParseStoreQR(qrData string) (int64, error)
}
