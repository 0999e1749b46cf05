package qrcode

import (
	"bytes"
	"encoding/json"
	"image/png"
	"testing"

	"github.com/skip2/go-qrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ubishop/config"
	"ubishop/internal/domain/entity"
)

func newService(size int, level, baseURL string) *qrcodeService {
	cfg := &config.Config{QRCode: &config.QRCodeConfig{Size: size, ErrorCorrectionLevel: level, BaseURL: baseURL}}

	return NewQRCodeService(cfg).(*qrcodeService)
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name  string
		level string
		want  qrcode.RecoveryLevel
	}{
		{"Low error correction", "L", qrcode.Low},
		{"Medium error correction", "M", qrcode.Medium},
		{"High error correction", "q", qrcode.High},
		{"Highest error correction", "H", qrcode.Highest},
		{"Default error correction", "invalid", qrcode.Medium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(256, tt.level, "")
			assert.Equal(t, tt.want, service.errorCorrectionLevel)
		})
	}
}

func TestNewQRCodeService_MissingSection(t *testing.T) {
	service := NewQRCodeService(&config.Config{}).(*qrcodeService)
	assert.Equal(t, 256, service.size)
	assert.Equal(t, qrcode.Medium, service.errorCorrectionLevel)
}

func TestQRCodeService_GenerateStoreQR_DifferentSizes(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Small QR", 128},
		{"Medium QR", 256},
		{"Large QR", 512},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newService(tt.size, "M", "https://ubishop.example")

			qrBytes, err := service.GenerateStoreQR(&entity.Store{ID: 9, Name: "La Esquina"})
			require.NoError(t, err)

			img, err := png.Decode(bytes.NewReader(qrBytes))
			require.NoError(t, err)
			assert.Equal(t, tt.size, img.Bounds().Dx())
		})
	}
}

func TestQRCodeService_ParseStoreQR(t *testing.T) {
	service := newService(256, "M", "")

	valid, err := json.Marshal(StoreQRData{StoreID: 12, Name: "Tienda", Type: "store"})
	require.NoError(t, err)
	wrongType, err := json.Marshal(StoreQRData{StoreID: 12, Type: "subscription"})
	require.NoError(t, err)
	noID, err := json.Marshal(StoreQRData{Type: "store"})
	require.NoError(t, err)

	tests := []struct {
		name    string
		data    string
		want    int64
		wantErr string
	}{
		{"valid payload", string(valid), 12, ""},
		{"invalid json", "invalid json", 0, "failed to unmarshal QR code data"},
		{"invalid type", string(wrongType), 0, "invalid QR code type"},
		{"missing store id", string(noID), 0, "invalid store ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := service.ParseStoreQR(tt.data)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
