// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"smartval/internal/estimator"
	"smartval/internal/valuation"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("asset_category", validateAssetCategory)
		_ = v.RegisterValidation("asset_condition", validateAssetCondition)
		_ = v.RegisterValidation("brand_tier", validateBrandTier)
		_ = v.RegisterValidation("condition_code", validateConditionCode)
		_ = v.RegisterValidation("brand_tier_code", validateBrandTierCode)
	}
}

// Enum tags are matched after trimming and lowercasing, the same way the
// valuation service parses them. Blank values pass: a missing field is an
// incomplete form, not an invalid one.

func validateAssetCategory(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	_, err := valuation.ParseCategory(s)
	return blank(s) || err == nil
}

func validateAssetCondition(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	_, err := valuation.ParseCondition(s)
	return blank(s) || err == nil
}

func validateBrandTier(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	_, err := valuation.ParseBrandTier(s)
	return blank(s) || err == nil
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

func validateConditionCode(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= estimator.MinCondition && n <= estimator.MaxCondition
}

func validateBrandTierCode(fl validator.FieldLevel) bool {
	n := fl.Field().Int()
	return n >= estimator.MinBrandTier && n <= estimator.MaxBrandTier
}
