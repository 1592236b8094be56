// Package validation defines one struct per HTML form plus the rules that
// turn raw field input into either a typed value bundle or a map of
// per-field error messages. It performs no I/O and never panics on
// malformed input.
package validation

import (
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to its error message. All failing fields
// are reported together so the caller can redisplay the whole form.
type Errors map[string]string

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report errors under the form field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Check runs the validate tags of a form struct and translates any
// failures into per-field messages.
func Check(form any) Errors {
	errs := Errors{}
	err := validate.Struct(form)
	if err == nil {
		return errs
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "invalid input"
		return errs
	}
	for _, fe := range fieldErrs {
		if _, seen := errs[fe.Field()]; !seen {
			errs[fe.Field()] = message(fe)
		}
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "enter a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return "must be at least " + fe.Param() + " characters"
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "must be at most " + fe.Param() + " characters"
		}
		return "must be at most " + fe.Param()
	case "eqfield":
		return "passwords must be the same"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "datetime":
		return "enter a valid date (YYYY-MM-DD)"
	}
	return "invalid value"
}

// ── Registration ────────────────────────────────────────────────────────────

type RegisterForm struct {
	Username        string `form:"username" json:"username" validate:"required"`
	Email           string `form:"email" json:"email" validate:"required,email"`
	Password        string `form:"password" json:"-" validate:"required,min=8,max=64"`
	ConfirmPassword string `form:"confirm_password" json:"-" validate:"required,eqfield=Password"`
}

func (f *RegisterForm) Validate() Errors { return Check(f) }

// ── Login ───────────────────────────────────────────────────────────────────

type LoginForm struct {
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"-" validate:"required,min=8,max=64"`
}

func (f *LoginForm) Validate() Errors { return Check(f) }

// ── Booking ─────────────────────────────────────────────────────────────────

const bookingDateLayout = "2006-01-02"

type BookingForm struct {
	Name    string `form:"name" json:"name" validate:"required"`
	Date    string `form:"date" json:"date" validate:"required,datetime=2006-01-02"`
	Guests  string `form:"guests" json:"guests" validate:"required"`
	Comment string `form:"comment" json:"comment"`
}

func (f *BookingForm) Validate() Errors {
	errs := Check(f)

	if _, ok := errs["date"]; !ok {
		if f.ParsedDate().Before(today()) {
			errs["date"] = "past date not allowed"
		}
	}

	if _, ok := errs["guests"]; !ok {
		n, err := strconv.Atoi(strings.TrimSpace(f.Guests))
		switch {
		case err != nil:
			errs["guests"] = "must be a whole number"
		case n < 1:
			errs["guests"] = "must be at least 1"
		}
	}

	return errs
}

// ParsedDate returns the reservation date. Only meaningful after Validate
// reported no date error.
func (f *BookingForm) ParsedDate() time.Time {
	d, _ := time.Parse(bookingDateLayout, f.Date)
	return d
}

// GuestCount returns the guest count. Only meaningful after Validate
// reported no guests error.
func (f *BookingForm) GuestCount() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.Guests))
	return n
}

func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ── Food (add / edit) ───────────────────────────────────────────────────────

// FoodForm covers the text fields of the add/edit food form. The image
// file is checked separately: required on create, optional on edit.
type FoodForm struct {
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
}

func (f *FoodForm) Validate() Errors { return Check(f) }

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
}

// AllowedImage reports whether the uploaded filename has a permitted
// image extension.
func AllowedImage(filename string) bool {
	return allowedImageExts[strings.ToLower(filepath.Ext(filename))]
}

// ── Profile ─────────────────────────────────────────────────────────────────

type ProfileForm struct {
	Age               string `form:"age" json:"age" validate:"required"`
	Gender            string `form:"gender" json:"gender" validate:"required,oneof=male female other"`
	FavoriteCharacter string `form:"favorite_character" json:"favorite_character" validate:"required,oneof=hello_kitty kuromi my_melody cinnamoroll pochacco keroppi badtz_maru pompompurin tuxedosam little_twins chococat"`
}

func (f *ProfileForm) Validate() Errors {
	errs := Check(f)
	if _, ok := errs["age"]; !ok {
		if _, err := strconv.Atoi(strings.TrimSpace(f.Age)); err != nil {
			errs["age"] = "must be a whole number"
		}
	}
	return errs
}

// AgeValue returns the age. Only meaningful after Validate reported no
// age error.
func (f *ProfileForm) AgeValue() int {
	n, _ := strconv.Atoi(strings.TrimSpace(f.Age))
	return n
}

// ── Rating ──────────────────────────────────────────────────────────────────

type RatingForm struct {
	Score string `form:"score" json:"score" validate:"required,oneof=1 2 3 4 5"`
}

func (f *RatingForm) Validate() Errors { return Check(f) }

// ScoreValue returns the score. Only meaningful after Validate reported
// no score error.
func (f *RatingForm) ScoreValue() int {
	n, _ := strconv.Atoi(f.Score)
	return n
}
