package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"discovery": map[string]any{
			"radiusKm": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "DISCOVERY_RADIUSKM", want: "discovery.radiusKm"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q, want %q", cfg.HTTP.MaxRequestBodySize, defaultMaxRequestBodySize)
	}
	if cfg.Discovery == nil || cfg.Discovery.RadiusKm != defaultDiscoveryRadiusKm {
		t.Fatalf("Discovery.RadiusKm = %v, want %v", cfg.Discovery, defaultDiscoveryRadiusKm)
	}
	if cfg.Discovery.MaxRadiusKm != defaultDiscoveryMaxRadiusKm {
		t.Fatalf("Discovery.MaxRadiusKm = %v, want %v", cfg.Discovery.MaxRadiusKm, defaultDiscoveryMaxRadiusKm)
	}
	if cfg.Auth == nil || cfg.Auth.AccessTokenTTL != defaultAccessTokenTTL {
		t.Fatalf("Auth.AccessTokenTTL not defaulted: %+v", cfg.Auth)
	}
	if cfg.ImageSearch == nil || cfg.ImageSearch.BaseURL != defaultImageSearchBaseURL {
		t.Fatalf("ImageSearch.BaseURL not defaulted: %+v", cfg.ImageSearch)
	}
	if cfg.QRCode == nil || cfg.QRCode.Size != defaultQRCodeSize || cfg.QRCode.ErrorCorrectionLevel != defaultQRCodeLevel {
		t.Fatalf("QRCode not defaulted: %+v", cfg.QRCode)
	}
}

func TestApplyDefaults_KeepsMaxRadiusAboveRadius(t *testing.T) {
	cfg := &Config{Discovery: &DiscoveryConfig{RadiusKm: 80, MaxRadiusKm: 10}}

	applyDefaults(cfg)

	if cfg.Discovery.RadiusKm != 80 {
		t.Fatalf("RadiusKm = %v, want 80", cfg.Discovery.RadiusKm)
	}
	if cfg.Discovery.MaxRadiusKm != 80 {
		t.Fatalf("MaxRadiusKm = %v, want 80", cfg.Discovery.MaxRadiusKm)
	}
}
