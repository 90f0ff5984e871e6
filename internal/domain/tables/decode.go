package tables

import (
	"math"

	"github.com/tidwall/gjson"

	"table-reservations-go/internal/domain/errs"
)

// DecodeCreateTableInput reads a raw JSON body into a CreateTableInput.
// Presence is checked before type, seats before active, so a body missing
// "active" reports that even when "seats" has the wrong type.
func DecodeCreateTableInput(body []byte) (CreateTableInput, error) {
	if !gjson.ValidBytes(body) {
		return CreateTableInput{}, errs.InvalidBody(nil)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return CreateTableInput{}, errs.InvalidBody(nil)
	}

	seats := root.Get("seats")
	active := root.Get("active")

	if !seats.Exists() {
		return CreateTableInput{}, errs.MissingField("seats")
	}
	if !active.Exists() {
		return CreateTableInput{}, errs.MissingField("active")
	}

	if !isInteger(seats) {
		return CreateTableInput{}, errs.InvalidType("seats")
	}
	if seats.Num < math.MinInt32 || seats.Num > math.MaxInt32 {
		return CreateTableInput{}, errs.InvalidField("seats", nil)
	}
	if !active.IsBool() {
		return CreateTableInput{}, errs.InvalidType("active")
	}

	seatsValue := int(seats.Int())
	activeValue := active.Bool()
	return CreateTableInput{Seats: &seatsValue, Active: &activeValue}, nil
}

func isInteger(value gjson.Result) bool {
	if value.Type != gjson.Number {
		return false
	}
	return value.Num == math.Trunc(value.Num)
}
