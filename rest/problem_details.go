// Copyright (c) 2025 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/z5labs/loam/bind"
)

// ProblemDetail represents an RFC 7807 Problem Details error response.
//
// Embed this struct in your custom error types to add extension fields.
//
// Reference: https://www.rfc-editor.org/rfc/rfc7807
type ProblemDetail struct {
	// Type is a URI reference that identifies the problem type.
	// Defaults to "about:blank" when the problem has no specific type.
	Type string `json:"type"`

	// Title is a short, human-readable summary of the problem type.
	Title string `json:"title"`

	// Status is the HTTP status code for this occurrence of the problem.
	Status int `json:"status"`

	// Detail is a human-readable explanation specific to this occurrence
	// of the problem.
	Detail string `json:"detail,omitempty"`

	// Instance is a URI reference that identifies the specific occurrence
	// of the problem.
	Instance string `json:"instance,omitempty"`
}

// Error implements the error interface.
// Returns the Detail field if present, otherwise returns the Title.
func (p ProblemDetail) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

type problemDetailMarker interface {
	statusCode() int
}

func (p ProblemDetail) statusCode() int {
	return p.Status
}

// InvalidParamCandidate reports why one declared alternative rejected a
// parameter's raw value.
type InvalidParamCandidate struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// InvalidParam reports every rejection recorded for a single request
// parameter. For union-typed parameters Candidates holds one entry per
// declared member, in declaration order.
type InvalidParam struct {
	Name       string                  `json:"name"`
	Type       string                  `json:"type"`
	Candidates []InvalidParamCandidate `json:"candidates"`
}

// ValidationProblem is the RFC 7807 response produced for binding
// failures. InvalidParams lists every failed parameter so clients see the
// complete picture in one response.
type ValidationProblem struct {
	ProblemDetail

	InvalidParams []InvalidParam `json:"invalid_params"`
}

func validationProblemOf(bindErr *bind.BindError) ValidationProblem {
	params := make([]InvalidParam, 0, len(bindErr.Fields))
	for _, f := range bindErr.Fields {
		param := InvalidParam{
			Name: f.Name,
			Type: f.Type.String(),
		}

		var unionErr bind.UnionError
		if errors.As(f.Err, &unionErr) {
			for _, c := range unionErr.Candidates {
				param.Candidates = append(param.Candidates, InvalidParamCandidate{
					Type:    c.Type.String(),
					Message: c.Err.Error(),
				})
			}
		} else {
			param.Candidates = append(param.Candidates, InvalidParamCandidate{
				Type:    f.Type.String(),
				Message: f.Err.Error(),
			})
		}

		params = append(params, param)
	}

	return ValidationProblem{
		ProblemDetail: ProblemDetail{
			Type:   "about:blank",
			Title:  "Invalid Request Parameters",
			Status: http.StatusUnprocessableEntity,
			Detail: "One or more request parameters failed validation.",
		},
		InvalidParams: params,
	}
}

// writeProblem marshals any value embedding [ProblemDetail] as an RFC 7807
// response.
func writeProblem(ctx context.Context, log *slog.Logger, w http.ResponseWriter, problem error) {
	pd, ok := problem.(problemDetailMarker)
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(pd.statusCode())

	err := json.NewEncoder(w).Encode(problem)
	if err != nil {
		log.ErrorContext(ctx, "failed to encode problem details", slog.Any("error", err))
	}
}
