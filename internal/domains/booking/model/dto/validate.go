package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"alora/shared/constant"
	"alora/shared/failure"
	"alora/shared/timezone"
	"alora/shared/validator"
)

const (
	FieldName    = "name"
	FieldMobile  = "mobile"
	FieldBranch  = "branch"
	FieldService = "service"
	FieldDate    = "date"
	FieldTime    = "time"

	mobileRule = "number,min=10,max=15"
)

const (
	MessageInvalidJSON       = "Invalid JSON data"
	MessageMissingFields     = "Missing or empty required fields"
	MessagePastDate          = "Appointment date cannot be in the past"
	MessageInvalidDateFormat = "Invalid date format. Use YYYY-MM-DD"
	MessageInvalidMobile     = "Mobile number must be 10-15 digits"
)

// RequiredFields lists the booking payload keys in the order problems are reported.
var RequiredFields = []string{FieldName, FieldMobile, FieldBranch, FieldService, FieldDate, FieldTime}

// ValidatedBooking holds trimmed booking fields ready to be stored.
type ValidatedBooking struct {
	Name    string
	Mobile  string
	Branch  string
	Service string
	Date    time.Time
	Time    string
}

// ParseBookingPayload decodes a JSON object body. Numbers keep their literal text.
func ParseBookingPayload(body io.Reader) (map[string]any, error) {
	decoder := json.NewDecoder(body)
	decoder.UseNumber()

	var payload map[string]any

	if err := decoder.Decode(&payload); err != nil {
		return nil, malformed(err)
	}

	if payload == nil {
		return nil, malformed(errors.New("expected a JSON object"))
	}

	if decoder.More() {
		return nil, malformed(errors.New("unexpected data after JSON object"))
	}

	return payload, nil
}

func malformed(cause error) error {
	return &failure.Failure{
		Code:    http.StatusBadRequest,
		Message: MessageInvalidJSON,
		Kind:    failure.KindMalformedPayload,
		Detail:  cause.Error(),
	}
}

// ValidateBooking checks presence of every required field, then the date, then the
// mobile number. today is compared by calendar date only.
func ValidateBooking(payload map[string]any, today time.Time) (ValidatedBooking, error) {
	var res ValidatedBooking

	problems := []string{}

	for _, field := range RequiredFields {
		value, ok := payload[field]

		switch {
		case !ok:
			problems = append(problems, field+" (missing)")
		case isEmpty(value):
			problems = append(problems, field+" (empty)")
		}
	}

	if len(problems) > 0 {
		return res, failure.Validation(failure.KindMissingOrEmptyField, MessageMissingFields, problems) //nolint:wrapcheck
	}

	date, err := parseDate(payload[FieldDate])
	if err != nil {
		return res, err
	}

	year, month, day := today.Date()
	if date.Before(time.Date(year, month, day, 0, 0, 0, 0, date.Location())) {
		return res, failure.Validation(failure.KindPastDate, MessagePastDate, nil) //nolint:wrapcheck
	}

	mobile := stringify(payload[FieldMobile])
	if err = validator.ValidateVar(mobile, mobileRule); err != nil {
		return res, failure.Validation(failure.KindInvalidMobile, MessageInvalidMobile, nil) //nolint:wrapcheck
	}

	res = ValidatedBooking{
		Name:    stringify(payload[FieldName]),
		Mobile:  mobile,
		Branch:  stringify(payload[FieldBranch]),
		Service: stringify(payload[FieldService]),
		Date:    date,
		Time:    stringify(payload[FieldTime]),
	}

	return res, nil
}

func parseDate(value any) (time.Time, error) {
	raw, ok := value.(string)
	if !ok {
		return time.Time{}, failure.Validation(failure.KindInvalidDateFormat, MessageInvalidDateFormat, //nolint:wrapcheck
			map[string]string{FieldDate: fmt.Sprintf("expected a string, got %T", value)})
	}

	date, err := timezone.Parse(constant.DateOnlyFormat, raw)
	if err != nil {
		return time.Time{}, failure.Validation(failure.KindInvalidDateFormat, MessageInvalidDateFormat, //nolint:wrapcheck
			map[string]string{FieldDate: raw})
	}

	return date, nil
}

// isEmpty treats null, false, numeric zero, empty collections and blank text as empty.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case bool:
		return !v
	case json.Number:
		f, err := v.Float64()

		return err == nil && f == 0
	case string:
		return strings.TrimSpace(v) == ""
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Map, reflect.Slice, reflect.Array:
		return rv.Len() == 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return rv.IsZero()
	}

	return strings.TrimSpace(stringify(value)) == ""
}

func stringify(value any) string {
	if s, ok := value.(string); ok {
		return strings.TrimSpace(s)
	}

	return strings.TrimSpace(fmt.Sprint(value))
}
