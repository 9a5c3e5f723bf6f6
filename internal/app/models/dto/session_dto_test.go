package dto

import (
	"encoding/json"
	"testing"
)

func TestTimestamp_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Timestamp
		wantErr bool
	}{
		{"datetime-local string", `{"start":"2025-03-14T10:00"}`, "2025-03-14T10:00", false},
		{"epoch millis", `{"start":1741946400000}`, "1741946400000", false},
		{"null", `{"start":null}`, "", false},
		{"missing", `{}`, "", false},
		{"fractional number", `{"start":1741946400000.5}`, "", true},
		{"negative number", `{"start":-5}`, "", true},
		{"boolean", `{"start":true}`, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateSessionRequest
			err := json.Unmarshal([]byte(tt.body), &req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Unmarshal(%s) error = %v, wantErr %v", tt.body, err, tt.wantErr)
			}
			if !tt.wantErr && req.Start != tt.want {
				t.Errorf("Start = %q, want %q", req.Start, tt.want)
			}
		})
	}
}

func TestUpdateSessionRequest_EpochStart(t *testing.T) {
	var req UpdateSessionRequest
	if err := json.Unmarshal([]byte(`{"start":1741946400000}`), &req); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if req.Start == nil || *req.Start != "1741946400000" {
		t.Errorf("Start = %v, want 1741946400000", req.Start)
	}
	if req.Company != nil {
		t.Errorf("Company = %v, want nil", req.Company)
	}
}
