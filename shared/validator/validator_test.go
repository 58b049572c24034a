package validator_test

import (
	"strings"
	"testing"

	"alora/shared/validator"

	"github.com/stretchr/testify/assert"
)

type contactForm struct {
	Name    string `json:"name"    validate:"notblank"`
	Email   string `json:"email"   validate:"notblank,email"`
	Subject string `json:"subject" validate:"notblank"`
	Message string `json:"message" validate:"notblank"`
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        contactForm
		expectError bool
		wantMessage string
	}{
		{
			name:        "valid struct",
			data:        contactForm{Name: "Ana", Email: "ana@example.com", Subject: "Hours", Message: "Open on Sunday?"},
			expectError: false,
		},
		{
			name:        "whitespace only is blank",
			data:        contactForm{Name: "   ", Email: "ana@example.com", Subject: "Hours", Message: "Hi"},
			expectError: true,
			wantMessage: "name is required",
		},
		{
			name:        "invalid email",
			data:        contactForm{Name: "Ana", Email: "not-an-email", Subject: "Hours", Message: "Hi"},
			expectError: true,
			wantMessage: "email must be a valid email address",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if !tt.expectError {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMessage)
		})
	}
}

func TestInvalidFields(t *testing.T) {
	assert.Nil(t, validator.InvalidFields(&contactForm{Name: "Ana", Email: "ana@example.com", Subject: "s", Message: "m"}))

	fields := validator.InvalidFields(&contactForm{Name: "Ana", Email: " ", Subject: "", Message: "\t"})
	assert.Equal(t, []string{"email", "subject", "message"}, fields)
}

func TestValidateVar(t *testing.T) {
	tests := []struct {
		name        string
		field       any
		tag         string
		expectError bool
	}{
		{name: "digits in range", field: "0812345678", tag: "number,min=10,max=15", expectError: false},
		{name: "too short", field: "123", tag: "number,min=10,max=15", expectError: true},
		{name: "too long", field: "1234567890123456", tag: "number,min=10,max=15", expectError: true},
		{name: "non digit", field: "08123-45678", tag: "number,min=10,max=15", expectError: true},
		{name: "signed number", field: "+6281234567", tag: "number,min=10,max=15", expectError: true},
		{name: "valid date", field: "2099-01-01", tag: "datetime=2006-01-02", expectError: false},
		{name: "invalid date", field: "01/01/2099", tag: "datetime=2006-01-02", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateVar(tt.field, tt.tag)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:        "valid JSON",
			jsonBody:    `{"name":"Ana","email":"ana@example.com","subject":"Hours","message":"Hi"}`,
			expectError: false,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"name":"Ana","email":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data contactForm

			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
