package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sijms/go-ora/v2/network"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"go-ora unique", &network.OracleError{ErrCode: 1, ErrMsg: "ORA-00001"}, true},
		{"wrapped go-ora unique", fmt.Errorf("insert: %w", &network.OracleError{ErrCode: 1}), true},
		{"go-ora other code", &network.OracleError{ErrCode: 1400, ErrMsg: "ORA-01400: cannot insert NULL"}, false},
		{"plain message", errors.New("ORA-00001: unique constraint (X) violated"), true},
		{"unrelated", errors.New("connection reset"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsUniqueViolation(tt.err))
		})
	}
}
