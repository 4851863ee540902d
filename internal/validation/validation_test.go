package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/coursedesk/internal/validation"
)

type registrationBody struct {
	FirstName    string `json:"firstName" validate:"notblank"`
	LastName     string `json:"lastName" validate:"notblank"`
	EmailAddress string `json:"emailAddress" validate:"notblank,email"`
	Password     string `json:"password" validate:"notblank"`
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name string
		body registrationBody
		want []string
	}{
		{
			name: "valid body",
			body: registrationBody{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			want: nil,
		},
		{
			name: "all fields missing, one message per field in declaration order",
			body: registrationBody{},
			want: []string{
				`Please provide a value for "firstName"`,
				`Please provide a value for "lastName"`,
				`Please provide a value for "emailAddress"`,
				`Please provide a value for "password"`,
			},
		},
		{
			name: "whitespace counts as missing",
			body: registrationBody{
				FirstName:    "   ",
				LastName:     "Smith",
				EmailAddress: "joe@smith.com",
				Password:     "joepassword",
			},
			want: []string{`Please provide a value for "firstName"`},
		},
		{
			name: "malformed email",
			body: registrationBody{
				FirstName:    "Joe",
				LastName:     "Smith",
				EmailAddress: "not-an-email",
				Password:     "joepassword",
			},
			want: []string{`Please provide a valid "emailAddress"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := validation.Messages(&tt.body)
			assert.Equal(t, tt.want, got)
		})
	}
}
