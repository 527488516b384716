// Pygoscelis - Interactive Exploration of the Palmer Penguins Dataset
// Copyright 2026 L. McGrath (ljmcgrath)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/ljmcgrath/pygoscelis

package api

import (
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/ljmcgrath/pygoscelis/internal/dataset"
)

// validate is the shared validator instance. validator.Validate caches struct
// metadata, so a single instance is the intended usage.
var validate = validator.New(validator.WithRequiredStructEnabled())

// HistogramRequest represents the validated query parameters for the
// histogram figure and export endpoints. Species and sex are optional
// filters; the variable selects which measurement to bin.
type HistogramRequest struct {
	Species  string `validate:"omitempty,oneof=adelie chinstrap gentoo"`
	Sex      string `validate:"omitempty,oneof=male female"`
	Variable string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
}

// RegressionRequest represents the validated query parameters for the linear
// regression figure and export endpoints. Regressions are fitted per species,
// so unlike the histogram filter the species is mandatory.
type RegressionRequest struct {
	Species     string `validate:"required,oneof=adelie chinstrap gentoo"`
	Explanatory string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
	Response    string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
}

// SurfaceRequest represents the validated query parameters for the multiple
// regression 3D figure endpoint. X and Y are the two explanatory variables;
// the fit is per species, so the species is mandatory.
type SurfaceRequest struct {
	Species  string `validate:"required,oneof=adelie chinstrap gentoo"`
	X        string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
	Y        string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
	Response string `validate:"required,oneof=culmen_length_mm culmen_depth_mm flipper_length_mm body_mass_g delta_15_N_ppt delta_13_C_ppt"`
}

// fieldError describes one failed validation constraint.
type fieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Value string `json:"value,omitempty"`
}

// validateRequest validates a request struct. Returns nil if validation
// passes, or an APIError carrying per-field details.
func validateRequest(v interface{}) *APIError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return &APIError{Code: ErrCodeValidationFailed, Message: err.Error()}
	}

	details := make([]fieldError, 0, len(validationErrors))
	for _, fe := range validationErrors {
		details = append(details, fieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Value: fmt.Sprintf("%v", fe.Value()),
		})
	}
	return &APIError{
		Code:    ErrCodeValidationFailed,
		Message: "Invalid request parameters",
		Details: details,
	}
}

// histogramRequest reads and validates the histogram query parameters,
// resolving them to catalog values.
func histogramRequest(r *http.Request) (dataset.Species, dataset.Sex, dataset.Variable, *APIError) {
	q := r.URL.Query()
	req := HistogramRequest{
		Species:  q.Get("species"),
		Sex:      q.Get("sex"),
		Variable: q.Get("variable"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		return "", "", "", apiErr
	}

	species, _ := dataset.ParseSpecies(req.Species)
	sex, _ := dataset.ParseSex(req.Sex)
	variable, _ := dataset.ParseVariable(req.Variable)
	return species, sex, variable, nil
}

// regressionRequest reads and validates the regression query parameters.
func regressionRequest(r *http.Request) (dataset.Species, dataset.Variable, dataset.Variable, *APIError) {
	q := r.URL.Query()
	req := RegressionRequest{
		Species:     q.Get("species"),
		Explanatory: q.Get("explanatory"),
		Response:    q.Get("response"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		return "", "", "", apiErr
	}

	species, _ := dataset.ParseSpecies(req.Species)
	explanatory, _ := dataset.ParseVariable(req.Explanatory)
	response, _ := dataset.ParseVariable(req.Response)
	return species, explanatory, response, nil
}

// surfaceRequest reads and validates the 3D regression query parameters.
func surfaceRequest(r *http.Request) (dataset.Species, dataset.Variable, dataset.Variable, dataset.Variable, *APIError) {
	q := r.URL.Query()
	req := SurfaceRequest{
		Species:  q.Get("species"),
		X:        q.Get("x"),
		Y:        q.Get("y"),
		Response: q.Get("response"),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		return "", "", "", "", apiErr
	}

	species, _ := dataset.ParseSpecies(req.Species)
	x, _ := dataset.ParseVariable(req.X)
	y, _ := dataset.ParseVariable(req.Y)
	response, _ := dataset.ParseVariable(req.Response)
	return species, x, y, response, nil
}
