package models

import (
	"database/sql/driver"
	"fmt"
	"strconv"
)

// OracleBool maps Go bools onto NUMBER(1) columns holding 0 or 1.
type OracleBool bool

// Value implements the driver.Valuer interface
func (b OracleBool) Value() (driver.Value, error) {
	if b {
		return int64(1), nil
	}
	return int64(0), nil
}

// Scan implements the sql.Scanner interface.
// Drivers hand NUMBER back as int64, float64, string or []byte depending on the driver.
func (b *OracleBool) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = false
	case bool:
		*b = OracleBool(v)
	case int64:
		*b = v != 0
	case int:
		*b = v != 0
	case float64:
		*b = v != 0
	case string:
		return b.scanString(v)
	case []byte:
		return b.scanString(string(v))
	default:
		return fmt.Errorf("OracleBool Scan: unsupported type %T", value)
	}
	return nil
}

func (b *OracleBool) scanString(s string) error {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("OracleBool Scan: %q is not numeric: %w", s, err)
	}
	*b = n != 0
	return nil
}
