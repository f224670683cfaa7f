package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bookingForm struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Date     string `json:"date" validate:"required,isodate"`
	Time     string `json:"time" validate:"required,slot"`
	Duration int    `json:"duration" validate:"halfhour,max=480"`
}

func validForm() bookingForm {
	return bookingForm{Name: "Ada", Email: "ada@example.com", Date: "2026-10-20", Time: "14:30", Duration: 90}
}

func TestStruct_Valid(t *testing.T) {
	assert.NoError(t, Struct(validForm()))
}

func TestStruct_CustomTags(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(f *bookingForm)
		want   string
	}{
		{"bad date", func(f *bookingForm) { f.Date = "20/10/2026" }, "date must be a date in YYYY-MM-DD format"},
		{"impossible date", func(f *bookingForm) { f.Date = "2026-02-30" }, "date must be a date"},
		{"off grid time", func(f *bookingForm) { f.Time = "14:15" }, "time must be a half-hour start"},
		{"before opening", func(f *bookingForm) { f.Time = "10:30" }, "time must be a half-hour start"},
		{"after last slot", func(f *bookingForm) { f.Time = "19:30" }, "time must be a half-hour start"},
		{"duration not multiple", func(f *bookingForm) { f.Duration = 45 }, "duration must be a positive multiple of 30"},
		{"duration zero", func(f *bookingForm) { f.Duration = 0 }, "duration must be a positive multiple of 30"},
		{"duration too long", func(f *bookingForm) { f.Duration = 510 }, "duration must be at most 480"},
		{"bad email", func(f *bookingForm) { f.Email = "nope" }, "email must be a valid email"},
		{"short name", func(f *bookingForm) { f.Name = "A" }, "name must be at least 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForm()
			tt.mutate(&form)

			err := Struct(form)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestStruct_JoinsMultipleErrors(t *testing.T) {
	err := Struct(bookingForm{Duration: 30})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email is required")
	assert.Contains(t, err.Error(), "; ")
}
