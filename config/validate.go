// SPDX-License-Identifier: MIT

package config

import (
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate holds the struct-tag rules for Config. "finite" rejects NaN and ±Inf.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		x := fl.Field().Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	}); err != nil {
		panic(err)
	}

	return v
}
