package entity_test

import (
	"testing"

	"nbu-dashboard/internal/domain/entity"
)

func TestEndpointIsCustom(t *testing.T) {
	if (entity.Endpoint{Category: "macro", Dataset: "exchange"}).IsCustom() {
		t.Error("catalog endpoint reported as custom")
	}
	if !(entity.Endpoint{URL: "https://example.com/feed"}).IsCustom() {
		t.Error("URL endpoint not reported as custom")
	}
}

func TestEndpointValidate(t *testing.T) {
	tests := []struct {
		name    string
		ep      entity.Endpoint
		wantErr bool
	}{
		{"catalog selection", entity.Endpoint{Category: "macro", Dataset: "exchange"}, false},
		{"custom url", entity.Endpoint{URL: "https://example.com/feed"}, false},
		{"custom url with name", entity.Endpoint{URL: "https://example.com/feed", Name: "My feed"}, false},
		{"url combined with category", entity.Endpoint{URL: "https://example.com/feed", Category: "macro"}, true},
		{"url combined with dataset", entity.Endpoint{URL: "https://example.com/feed", Dataset: "exchange"}, true},
		{"missing category", entity.Endpoint{Dataset: "exchange"}, true},
		{"missing dataset", entity.Endpoint{Category: "macro"}, true},
		{"empty", entity.Endpoint{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ep.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestEndpointDisplayName(t *testing.T) {
	tests := []struct {
		name string
		ep   entity.Endpoint
		want string
	}{
		{"named custom", entity.Endpoint{URL: "https://example.com", Name: "My feed"}, "My feed"},
		{"unnamed custom", entity.Endpoint{URL: "https://example.com"}, "Custom dataset"},
		{"catalog selection", entity.Endpoint{Category: "macro", Dataset: "exchange"}, "exchange"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ep.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}
