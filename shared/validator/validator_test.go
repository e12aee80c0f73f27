package validator_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"gipnoze/shared/failure"
	"gipnoze/shared/validator"
)

type sample struct {
	Name   string `validate:"required"`
	Guests int    `validate:"gt=0"`
}

func TestStruct(t *testing.T) {
	tests := []struct {
		name    string
		input   sample
		wantErr bool
	}{
		{name: "valid", input: sample{Name: "Олена", Guests: 4}, wantErr: false},
		{name: "missing name", input: sample{Guests: 2}, wantErr: true},
		{name: "non-positive guests", input: sample{Name: "Олена", Guests: -3}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Struct(tt.input)

			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
