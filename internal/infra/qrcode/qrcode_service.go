package qrcode

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"ubishop/config"
	"ubishop/internal/domain/entity"
	"ubishop/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const storePayloadType = "store"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// StoreQRData represents the QR code payload of a store share code
type StoreQRData struct {
	StoreID int64  `json:"tienda_id"`
	Name    string `json:"nombre"`
	Type    string `json:"type"`
	URL     string `json:"url,omitempty"`
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	qrCfg := cfg.QRCode
	if qrCfg == nil {
		qrCfg = &config.QRCodeConfig{}
	}

	size := qrCfg.Size
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              strings.TrimRight(qrCfg.BaseURL, "/"),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToUpper(level) {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateStoreQR generates a PNG QR code for sharing a store
func (s *qrcodeService) GenerateStoreQR(store *entity.Store) ([]byte, error) {
	data := StoreQRData{
		StoreID: store.ID,
		Name:    store.Name,
		Type:    storePayloadType,
	}
	if s.baseURL != "" {
		data.URL = s.baseURL + "/tienda/" + strconv.FormatInt(store.ID, 10)
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal QR code data: %w", err)
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseStoreQR parses QR code data and returns the store ID
func (s *qrcodeService) ParseStoreQR(qrData string) (int64, error) {
	var data StoreQRData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return 0, fmt.Errorf("failed to unmarshal QR code data: %w", err)
	}

	if data.Type != storePayloadType {
		return 0, fmt.Errorf("invalid QR code type: %s", data.Type)
	}

	if data.StoreID <= 0 {
		return 0, fmt.Errorf("invalid store ID: %d", data.StoreID)
	}

	return data.StoreID, nil
}
