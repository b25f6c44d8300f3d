// Scoutdeck - Adaptive Product Discovery Catalog
// Copyright 2026 Scoutdeck Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/scoutdeck/scoutdeck

package api

import (
	"github.com/scoutdeck/scoutdeck/internal/favorites"
	"github.com/scoutdeck/scoutdeck/internal/validation"
)

// SwipeRequest commits a programmatic swipe (keyboard arrows, buttons).
type SwipeRequest struct {
	Direction string `json:"direction" validate:"required,oneof=left right"`
}

// ReleaseRequest reports a pointer-up on the active card. The server
// classifies commit vs spring-back from the travel and pointer kind.
type ReleaseRequest struct {
	OriginX  float64 `json:"origin_x"`
	CurrentX float64 `json:"current_x"`
	Pointer  string  `json:"pointer" validate:"omitempty,oneof=touch mouse"`
}

// ToggleFavoriteRequest flips one entity in or out of the favorites
// store. Exactly one of Product or Blog must be set, matching Kind.
type ToggleFavoriteRequest struct {
	Kind    string                 `json:"kind" validate:"required,oneof=product blog"`
	Product *ToggleFavoriteProduct `json:"product,omitempty" validate:"required_if=Kind product,excluded_if=Kind blog"`
	Blog    *favorites.Blog        `json:"blog,omitempty" validate:"required_if=Kind blog,excluded_if=Kind product"`
}

// ToggleFavoriteProduct is the product payload for a favorites toggle.
// It mirrors the catalog record fields the snapshot keeps.
type ToggleFavoriteProduct struct {
	Name           string   `json:"name" validate:"required"`
	Website        string   `json:"website,omitempty"`
	Category       string   `json:"category,omitempty"`
	Categories     []string `json:"categories,omitempty"`
	DarkHorseIndex int      `json:"darkHorseIndex,omitempty"`
	FundingTotal   string   `json:"fundingTotal,omitempty"`
}

// validateRequest validates a request struct and converts failures into
// an APIError suitable for a 400 response.
func validateRequest(v interface{}) *APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	return &APIError{
		Code:    ErrCodeValidation,
		Message: "request validation failed",
		Details: verr.Error(),
	}
}
