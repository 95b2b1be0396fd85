package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContractListRequestValidation(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name    string
		req     ContractListRequest
		wantErr bool
	}{
		{name: "empty request", req: ContractListRequest{}},
		{name: "known status", req: ContractListRequest{Status: "active"}},
		{name: "unknown status", req: ContractListRequest{Status: "archived"}, wantErr: true},
		{name: "negative skip", req: ContractListRequest{Skip: -1}, wantErr: true},
		{name: "limit over cap", req: ContractListRequest{Limit: 1000}, wantErr: true},
		{name: "full valid request", req: ContractListRequest{Status: "pending", Skip: 20, Limit: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestForecastRequestValidation(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&ForecastRequest{}), "zero months falls back to the default")
	assert.NoError(t, v.Validate(&ForecastRequest{Months: 12}))
	assert.Error(t, v.Validate(&ForecastRequest{Months: 25}), "horizon is capped at two years")
	assert.Error(t, v.Validate(&ForecastRequest{Months: -1}))
}
