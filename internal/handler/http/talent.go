package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hrflo/hrflo-backend/internal/domain/onboarding"
	"github.com/hrflo/hrflo-backend/internal/domain/promotion"
	"github.com/hrflo/hrflo-backend/internal/domain/succession"
	"github.com/hrflo/hrflo-backend/internal/handler/http/response"
)

// TalentHandler serves onboarding, promotions and succession planning.
type TalentHandler interface {
	Onboard(w http.ResponseWriter, r *http.Request)
	ListOnboarding(w http.ResponseWriter, r *http.Request)
	UpdateOnboarding(w http.ResponseWriter, r *http.Request)
	Promote(w http.ResponseWriter, r *http.Request)
	ListPromotions(w http.ResponseWriter, r *http.Request)
	CreateSuccessionPlan(w http.ResponseWriter, r *http.Request)
	ListSuccessionPlans(w http.ResponseWriter, r *http.Request)
}

type talentHandlerImpl struct {
	onboardingService onboarding.OnboardingService
	promotionService  promotion.PromotionService
	successionService succession.SuccessionService
}

func NewTalentHandler(
	onboardingService onboarding.OnboardingService,
	promotionService promotion.PromotionService,
	successionService succession.SuccessionService,
) TalentHandler {
	return &talentHandlerImpl{
		onboardingService: onboardingService,
		promotionService:  promotionService,
		successionService: successionService,
	}
}

// Onboard implements TalentHandler
func (h *talentHandlerImpl) Onboard(w http.ResponseWriter, r *http.Request) {
	var req onboarding.OnboardRequest
	if !decodeJSON(w, r, "Onboard", &req) {
		return
	}

	result, err := h.onboardingService.Onboard(r.Context(), req)
	if err != nil {
		slog.Error("Onboard service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee onboarded successfully", result)
}

// ListOnboarding implements TalentHandler
func (h *talentHandlerImpl) ListOnboarding(w http.ResponseWriter, r *http.Request) {
	result, err := h.onboardingService.ListOnboarding(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateOnboarding implements TalentHandler
func (h *talentHandlerImpl) UpdateOnboarding(w http.ResponseWriter, r *http.Request) {
	var req onboarding.UpdateOnboardingRequest
	if !decodeJSON(w, r, "UpdateOnboarding", &req) {
		return
	}

	result, err := h.onboardingService.UpdateOnboarding(r.Context(), chi.URLParam(r, "userId"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Onboarding updated successfully", result)
}

// Promote implements TalentHandler
func (h *talentHandlerImpl) Promote(w http.ResponseWriter, r *http.Request) {
	var req promotion.PromoteRequest
	if !decodeJSON(w, r, "Promote", &req) {
		return
	}

	result, err := h.promotionService.Promote(r.Context(), req)
	if err != nil {
		slog.Error("Promote service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee promoted successfully", result)
}

// ListPromotions implements TalentHandler
func (h *talentHandlerImpl) ListPromotions(w http.ResponseWriter, r *http.Request) {
	result, err := h.promotionService.ListPromotions(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateSuccessionPlan implements TalentHandler
func (h *talentHandlerImpl) CreateSuccessionPlan(w http.ResponseWriter, r *http.Request) {
	var req succession.CreateSuccessionPlanRequest
	if !decodeJSON(w, r, "CreateSuccessionPlan", &req) {
		return
	}

	result, err := h.successionService.CreatePlan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Succession plan created successfully", result)
}

// ListSuccessionPlans implements TalentHandler
func (h *talentHandlerImpl) ListSuccessionPlans(w http.ResponseWriter, r *http.Request) {
	result, err := h.successionService.ListPlans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
