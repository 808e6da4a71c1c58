package llmprovider_test

import (
	"context"
	"errors"
	"testing"

	"mcal/config"
	"mcal/pkg/llmprovider"
	"mcal/pkg/log"
)

func TestInitializeProviders(t *testing.T) {
	tests := []struct {
		name      string
		cfg       *config.LLMConfig
		wantNames []string
		wantErr   error
	}{
		{
			name: "sorted by priority",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "gemini", Enabled: true, Priority: 10, APIKey: "g", Model: "gemini-2.5-flash"},
				{Name: "groq", Enabled: true, Priority: 1, APIKey: "q"},
			}},
			wantNames: []string{"groq", "gemini"},
		},
		{
			name: "disabled and broken providers are skipped",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: false, Priority: 1, APIKey: "q"},
				{Name: "mystery", Enabled: true, Priority: 2, APIKey: "x"},
				{Name: "gemini", Enabled: true, Priority: 3, APIKey: "g"},
			}},
			wantNames: []string{"gemini"},
		},
		{
			name:    "no providers",
			cfg:     &config.LLMConfig{},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
		{
			name: "missing API key",
			cfg: &config.LLMConfig{Providers: []config.ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1},
			}},
			wantErr: llmprovider.ErrNoProvidersConfigured,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers, err := llmprovider.InitializeProviders(context.Background(), tt.cfg, log.NewNop())
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("InitializeProviders() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("InitializeProviders() unexpected error: %v", err)
			}
			if len(providers) != len(tt.wantNames) {
				t.Fatalf("got %d providers, want %d", len(providers), len(tt.wantNames))
			}
			for i, name := range tt.wantNames {
				if providers[i].Name() != name {
					t.Errorf("provider[%d] = %s, want %s", i, providers[i].Name(), name)
				}
			}
		})
	}
}
