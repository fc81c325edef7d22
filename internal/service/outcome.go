package service

import (
	"github.com/blog-platform-api/internal/models"
)

func applied(redirectTo, entityID string) *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeApplied, RedirectTo: redirectTo, EntityID: entityID}
}

func denied(redirectTo string) *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeDenied, RedirectTo: redirectTo}
}

func notFound() *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeNotFound}
}

func invalid(errs []models.FieldError) *models.MutationResult {
	return &models.MutationResult{Outcome: models.OutcomeInvalid, FieldErrors: errs}
}
