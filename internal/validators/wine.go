// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Stefan Popov

// Package validators checks user input before it reaches the store or the
// network. A validation failure is surfaced synchronously to the caller and
// mutates no state.
package validators

import (
	"errors"
	"strings"
	"time"

	"github.com/stefpopov/go-wine-cellar/models"
)

var (
	// ErrEmptyName indicates a wine without a name.
	ErrEmptyName = errors.New("wine name must not be empty")
	// ErrNegativePrice indicates a price below zero.
	ErrNegativePrice = errors.New("wine price must not be negative")
	// ErrInvalidAlcoholDegree indicates a degree outside 0..100.
	ErrInvalidAlcoholDegree = errors.New("alcohol degree must be between 0 and 100")
	// ErrInvalidProductionDate indicates a date not in YYYY-MM-DD form.
	ErrInvalidProductionDate = errors.New("production date must be in YYYY-MM-DD format")
)

// WineValidator validates wine records supplied by the user.
type WineValidator interface {
	Validate(wine models.Wine) error
}

type wineValidator struct{}

// NewWineValidator constructs the default [WineValidator].
func NewWineValidator() WineValidator {
	return wineValidator{}
}

func (wineValidator) Validate(wine models.Wine) error {
	if strings.TrimSpace(wine.Name) == "" {
		return ErrEmptyName
	}
	if wine.Price < 0 {
		return ErrNegativePrice
	}
	if wine.AlcoholDegree < 0 || wine.AlcoholDegree > 100 {
		return ErrInvalidAlcoholDegree
	}
	if wine.ProductionDate != "" {
		if _, err := time.Parse("2006-01-02", wine.ProductionDate); err != nil {
			return ErrInvalidProductionDate
		}
	}
	return nil
}
