package repository

import (
	"errors"
	"strings"

	"github.com/godror/godror"
	"github.com/sijms/go-ora/v2/network"
)

// oraUniqueViolation is ORA-00001: unique constraint violated.
const oraUniqueViolation = 1

// oraErrorCode extracts the ORA- number from errors of either supported driver.
func oraErrorCode(err error) (int, bool) {
	var goOraErr *network.OracleError
	if errors.As(err, &goOraErr) {
		return goOraErr.ErrCode, true
	}
	if oraErr, ok := godror.AsOraErr(err); ok {
		return oraErr.Code(), true
	}
	return 0, false
}

// IsUniqueViolation reports whether err was raised by a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := oraErrorCode(err); ok {
		return code == oraUniqueViolation
	}
	// Errors that crossed a driver boundary without their type keep the message.
	return strings.Contains(err.Error(), "ORA-00001")
}
