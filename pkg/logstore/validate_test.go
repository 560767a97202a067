package logstore

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateTimestamp(t *testing.T) {
	tests := []struct {
		name    string
		raw     interface{}
		want    int64
		wantErr bool
	}{
		{name: "int64", raw: int64(1700000000000), want: 1700000000000},
		{name: "int", raw: 1700000000000, want: 1700000000000},
		{name: "whole float", raw: float64(1700000000000), want: 1700000000000},
		{name: "json number", raw: json.Number("1700000000000"), want: 1700000000000},
		{name: "fractional float", raw: 1700000000000.5, wantErr: true},
		{name: "datetime literal", raw: "datetime('now')", wantErr: true},
		{name: "formatted datetime", raw: "2024-01-02 10:00:00", wantErr: true},
		{name: "nil", raw: nil, wantErr: true},
		{name: "bool", raw: true, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateTimestamp(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidEvent)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
