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
		"webhook": map[string]any{
			"verifyToken": "",
			"relaySecret": "",
		},
		"messaging": map[string]any{
			"meta": map[string]any{
				"phoneNumberId": "",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "WEBHOOK_VERIFYTOKEN", want: "webhook.verifyToken"},
		{envKey: "WEBHOOK_RELAYSECRET", want: "webhook.relaySecret"},
		{envKey: "MESSAGING_META_PHONENUMBERID", want: "messaging.meta.phoneNumberId"},
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
