package reservations

import (
	"math"

	"github.com/tidwall/gjson"

	"table-reservations-go/internal/domain/errs"
)

// DecodeCreateReservationInput reads a raw JSON body. Absent or null fields
// stay zero so Create can report them in its own order; a present field of
// the wrong JSON type is an InvalidType.
func DecodeCreateReservationInput(body []byte) (CreateReservationInput, error) {
	root, err := parseObject(body)
	if err != nil {
		return CreateReservationInput{}, err
	}

	var input CreateReservationInput
	if tableID, ok, err := int64Field(root, "table_id"); err != nil {
		return CreateReservationInput{}, err
	} else if ok {
		input.TableID = tableID
	}
	if name, ok, err := stringField(root, "costumer_name"); err != nil {
		return CreateReservationInput{}, err
	} else if ok {
		input.CostumerName = name
	}
	if at, ok, err := stringField(root, "date_time"); err != nil {
		return CreateReservationInput{}, err
	} else if ok {
		input.DateTime = at
	}
	return input, nil
}

// DecodeUpdateReservationInput reads a partial patch. Only fields present
// and non-null in the body are set.
func DecodeUpdateReservationInput(body []byte) (UpdateReservationInput, error) {
	root, err := parseObject(body)
	if err != nil {
		return UpdateReservationInput{}, err
	}

	var input UpdateReservationInput
	if tableID, ok, err := int64Field(root, "table_id"); err != nil {
		return UpdateReservationInput{}, err
	} else if ok {
		input.TableID = &tableID
	}
	if name, ok, err := stringField(root, "costumer_name"); err != nil {
		return UpdateReservationInput{}, err
	} else if ok {
		input.CostumerName = &name
	}
	if at, ok, err := stringField(root, "date_time"); err != nil {
		return UpdateReservationInput{}, err
	} else if ok {
		input.DateTime = &at
	}
	return input, nil
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, errs.InvalidBody(nil)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, errs.InvalidBody(nil)
	}
	return root, nil
}

func int64Field(root gjson.Result, name string) (int64, bool, error) {
	value := root.Get(name)
	if !value.Exists() || value.Type == gjson.Null {
		return 0, false, nil
	}
	if value.Type != gjson.Number || value.Num != math.Trunc(value.Num) {
		return 0, false, errs.InvalidType(name)
	}
	return value.Int(), true, nil
}

func stringField(root gjson.Result, name string) (string, bool, error) {
	value := root.Get(name)
	if !value.Exists() || value.Type == gjson.Null {
		return "", false, nil
	}
	if value.Type != gjson.String {
		return "", false, errs.InvalidType(name)
	}
	return value.String(), true, nil
}
