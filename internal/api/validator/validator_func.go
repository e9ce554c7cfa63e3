package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

const (
	ServiceTag = "service"
	CountryTag = "country"
)

var (
	serviceRegex = regexp.MustCompile(`^[a-z0-9]{2,5}$`)
	countryRegex = regexp.MustCompile(`^\d{1,4}$`)
)

var valid = map[string]func(fl validator.FieldLevel) bool{
	ServiceTag: ValidateService,
	CountryTag: ValidateCountry,
}

// ValidateService accepts provider service codes such as "tg" or "wa".
func ValidateService(fl validator.FieldLevel) bool {
	return serviceRegex.MatchString(fl.Field().String())
}

// ValidateCountry accepts numeric provider country ids.
func ValidateCountry(fl validator.FieldLevel) bool {
	return countryRegex.MatchString(fl.Field().String())
}
