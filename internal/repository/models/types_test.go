package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOracleBool_Value(t *testing.T) {
	v, err := OracleBool(true).Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = OracleBool(false).Value()
	assert.NoError(t, err)
	assert.Equal(t, int64(0), v)
}

func TestOracleBool_Scan(t *testing.T) {
	tests := []struct {
		name    string
		input   interface{}
		want    OracleBool
		wantErr bool
	}{
		{"nil", nil, false, false},
		{"int64 one", int64(1), true, false},
		{"int64 zero", int64(0), false, false},
		{"float64 one", float64(1), true, false},
		{"string one", "1", true, false},
		{"bytes zero", []byte("0"), false, false},
		{"bool", true, true, false},
		{"garbage string", "yes", false, true},
		{"unsupported", struct{}{}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b OracleBool
			err := b.Scan(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, b)
		})
	}
}
