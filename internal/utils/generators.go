package utils

import (
	"fmt"
)

// BookingDisplayID wraps the numeric store-assigned booking id in the
// template shown on tickets, e.g. 7 -> "BKZWX7DF".
func BookingDisplayID(id int64) string {
	return fmt.Sprintf("BKZWX%dDF", id)
}
