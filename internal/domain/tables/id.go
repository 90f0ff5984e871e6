package tables

import (
	"strconv"
	"strings"

	"table-reservations-go/internal/domain/errs"
)

// ParseID reads a record id from path text. Anything other than a base-10
// integer, including "3.14" and the empty string, is an InvalidParameter.
func ParseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, errs.InvalidParameter("id")
	}
	return id, nil
}
