package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(offsetDays int) string {
	return time.Now().AddDate(0, 0, offsetDays).Format("2006-01-02")
}

func TestRegisterForm(t *testing.T) {
	tests := []struct {
		name       string
		form       RegisterForm
		wantFields []string
	}{
		{
			name: "valid",
			form: RegisterForm{Username: "kitty", Email: "kitty@x.com", Password: "password1", ConfirmPassword: "password1"},
		},
		{
			name:       "all missing",
			form:       RegisterForm{},
			wantFields: []string{"username", "email", "password", "confirm_password"},
		},
		{
			name:       "bad email",
			form:       RegisterForm{Username: "kitty", Email: "not-an-email", Password: "password1", ConfirmPassword: "password1"},
			wantFields: []string{"email"},
		},
		{
			name:       "password too short",
			form:       RegisterForm{Username: "kitty", Email: "kitty@x.com", Password: "short", ConfirmPassword: "short"},
			wantFields: []string{"password"},
		},
		{
			name:       "password too long",
			form:       RegisterForm{Username: "kitty", Email: "kitty@x.com", Password: longString(65), ConfirmPassword: longString(65)},
			wantFields: []string{"password"},
		},
		{
			name:       "confirmation mismatch",
			form:       RegisterForm{Username: "kitty", Email: "kitty@x.com", Password: "password1", ConfirmPassword: "password2"},
			wantFields: []string{"confirm_password"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			assert.Len(t, errs, len(tt.wantFields))
			for _, f := range tt.wantFields {
				assert.Contains(t, errs, f)
			}
		})
	}
}

func longString(n int) string {
	s := make([]byte, n)
	for i := range s {
		s[i] = 'a'
	}
	return string(s)
}

func TestLoginForm(t *testing.T) {
	assert.Empty(t, (&LoginForm{Email: "kitty@x.com", Password: "password1"}).Validate())

	errs := (&LoginForm{Email: "nope", Password: "x"}).Validate()
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestBookingForm(t *testing.T) {
	tests := []struct {
		name      string
		form      BookingForm
		wantField string
		wantMsg   string
	}{
		{name: "tomorrow ok", form: BookingForm{Name: "Kitty", Date: date(1), Guests: "2"}},
		{name: "today ok", form: BookingForm{Name: "Kitty", Date: date(0), Guests: "1"}},
		{
			name:      "yesterday rejected",
			form:      BookingForm{Name: "Kitty", Date: date(-1), Guests: "2"},
			wantField: "date",
			wantMsg:   "past date not allowed",
		},
		{
			name:      "garbled date",
			form:      BookingForm{Name: "Kitty", Date: "31-12-2026", Guests: "2"},
			wantField: "date",
		},
		{
			name:      "zero guests",
			form:      BookingForm{Name: "Kitty", Date: date(1), Guests: "0"},
			wantField: "guests",
			wantMsg:   "must be at least 1",
		},
		{
			name:      "non-numeric guests",
			form:      BookingForm{Name: "Kitty", Date: date(1), Guests: "many"},
			wantField: "guests",
			wantMsg:   "must be a whole number",
		},
		{
			name:      "missing name",
			form:      BookingForm{Date: date(1), Guests: "2"},
			wantField: "name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.form.Validate()
			if tt.wantField == "" {
				assert.Empty(t, errs)
				return
			}
			assert.Contains(t, errs, tt.wantField)
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, errs[tt.wantField])
			}
		})
	}
}

func TestBookingFormTypedValues(t *testing.T) {
	form := BookingForm{Name: "Kitty", Date: "2030-06-15", Guests: " 4 "}
	assert.Equal(t, 4, form.GuestCount())
	assert.Equal(t, time.Date(2030, 6, 15, 0, 0, 0, 0, time.UTC), form.ParsedDate())
}

func TestFoodForm(t *testing.T) {
	assert.Empty(t, (&FoodForm{Name: "Ramen", Description: "noodles"}).Validate())

	errs := (&FoodForm{}).Validate()
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "description")
}

func TestAllowedImage(t *testing.T) {
	assert.True(t, AllowedImage("photo.jpg"))
	assert.True(t, AllowedImage("photo.JPEG"))
	assert.True(t, AllowedImage("photo.png"))
	assert.False(t, AllowedImage("photo.gif"))
	assert.False(t, AllowedImage("photo"))
	assert.False(t, AllowedImage("photo.png.exe"))
}

func TestProfileForm(t *testing.T) {
	assert.Empty(t, (&ProfileForm{Age: "25", Gender: "female", FavoriteCharacter: "kuromi"}).Validate())

	errs := (&ProfileForm{Age: "old", Gender: "robot", FavoriteCharacter: "pikachu"}).Validate()
	assert.Contains(t, errs, "age")
	assert.Contains(t, errs, "gender")
	assert.Contains(t, errs, "favorite_character")
}

func TestRatingForm(t *testing.T) {
	for _, score := range []string{"1", "2", "3", "4", "5"} {
		form := RatingForm{Score: score}
		assert.Empty(t, form.Validate())
	}
	assert.Contains(t, (&RatingForm{Score: "0"}).Validate(), "score")
	assert.Contains(t, (&RatingForm{Score: "6"}).Validate(), "score")
	assert.Contains(t, (&RatingForm{Score: "great"}).Validate(), "score")
	assert.Contains(t, (&RatingForm{}).Validate(), "score")

	form := RatingForm{Score: "4"}
	assert.Equal(t, 4, form.ScoreValue())
}
