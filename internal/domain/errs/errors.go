// Package errs holds the error kinds shared by the tables and reservations
// domains. Callers match on Kind (errors.Is against the sentinels below, or
// KindOf), never on message text.
package errs

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindMissingField
	KindInvalidParameter
	KindInvalidType
	KindInvalidField
	KindInvalidBody
	KindInvalidDateFormat
	KindInvalidTimeFormat
	KindTableNotFound
	KindTableInactive
	KindTableInUse
	KindSlotConflict
	KindStorage
)

var kindNames = map[Kind]string{
	KindUnknown:           "unknown",
	KindMissingField:      "missing_field",
	KindInvalidParameter:  "invalid_parameter",
	KindInvalidType:       "invalid_type",
	KindInvalidField:      "invalid_field",
	KindInvalidBody:       "invalid_json",
	KindInvalidDateFormat: "invalid_date_format",
	KindInvalidTimeFormat: "invalid_time_format",
	KindTableNotFound:     "table_not_found",
	KindTableInactive:     "table_inactive",
	KindTableInUse:        "table_in_use",
	KindSlotConflict:      "slot_conflict",
	KindStorage:           "internal_error",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a classified domain failure. Field names the offending input for
// the field/parameter kinds; Err carries the underlying cause for storage
// failures.
type Error struct {
	Kind  Kind
	Field string
	Err   error
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindMissingField:
		return fmt.Sprintf("The %q field is required.", e.Field)
	case KindInvalidParameter:
		return fmt.Sprintf("The parameter %q must be integer", e.Field)
	case KindInvalidType:
		return fmt.Sprintf("invalid data: %q has the wrong type", e.Field)
	case KindInvalidField:
		return fmt.Sprintf("invalid data: %q is out of range", e.Field)
	case KindInvalidBody:
		return "invalid json body"
	case KindInvalidDateFormat:
		return "Invalid date format, expected YYYY-MM-DD"
	case KindInvalidTimeFormat:
		return "Invalid date_time format, expected YYYY-MM-DDTHH:MM:SS[.mmm]Z"
	case KindTableNotFound:
		return "Table does not exists"
	case KindTableInactive:
		return "Table is inactive"
	case KindTableInUse:
		return "Table has reservations"
	case KindSlotConflict:
		return "There is already a reservation for that time slot"
	case KindStorage:
		if e.Err != nil {
			return "storage error: " + e.Err.Error()
		}
		return "storage error"
	default:
		if e.Err != nil {
			return e.Err.Error()
		}
		return "unknown error"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind. A target carrying a Field only matches the same field.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	if t.Kind != e.Kind {
		return false
	}
	return t.Field == "" || t.Field == e.Field
}

var (
	ErrMissingField      = &Error{Kind: KindMissingField}
	ErrInvalidParameter  = &Error{Kind: KindInvalidParameter}
	ErrInvalidType       = &Error{Kind: KindInvalidType}
	ErrInvalidBody       = &Error{Kind: KindInvalidBody}
	ErrInvalidDateFormat = &Error{Kind: KindInvalidDateFormat}
	ErrInvalidTimeFormat = &Error{Kind: KindInvalidTimeFormat}
	ErrTableNotFound     = &Error{Kind: KindTableNotFound}
	ErrTableInactive     = &Error{Kind: KindTableInactive}
	ErrTableInUse        = &Error{Kind: KindTableInUse}
	ErrSlotConflict      = &Error{Kind: KindSlotConflict}
	ErrStorage           = &Error{Kind: KindStorage}
)

func MissingField(name string) error {
	return &Error{Kind: KindMissingField, Field: name}
}

func InvalidParameter(name string) error {
	return &Error{Kind: KindInvalidParameter, Field: name}
}

func InvalidType(name string) error {
	return &Error{Kind: KindInvalidType, Field: name}
}

func InvalidField(name string, cause error) error {
	return &Error{Kind: KindInvalidField, Field: name, Err: cause}
}

func InvalidBody(cause error) error {
	return &Error{Kind: KindInvalidBody, Err: cause}
}

// Storage wraps a store failure. Already classified errors pass through so a
// repository can return domain kinds without them being masked.
func Storage(err error) error {
	if err == nil {
		return nil
	}
	var classified *Error
	if errors.As(err, &classified) {
		return err
	}
	return &Error{Kind: KindStorage, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var classified *Error
	if errors.As(err, &classified) {
		return classified.Kind
	}
	return KindUnknown
}
