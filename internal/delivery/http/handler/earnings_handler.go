package handler

import (
	"net/http"
	"strconv"

	"physiodesk/internal/delivery/http/middleware"
	"physiodesk/internal/usecase"
	"physiodesk/pkg/response"

	"github.com/gorilla/mux"
)

type EarningsHandler struct {
	earningsUsecase usecase.EarningsUsecase
}

func NewEarningsHandler(earningsUsecase usecase.EarningsUsecase) *EarningsHandler {
	return &EarningsHandler{
		earningsUsecase: earningsUsecase,
	}
}

func (h *EarningsHandler) GetMonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	params := r.URL.Query()
	summary, err := h.earningsUsecase.GetMonthlySummary(r.Context(), userID, params.Get("startDate"), params.Get("endDate"))
	if err != nil {
		if err == usecase.ErrInvalidDateFormat {
			response.Error(w, http.StatusBadRequest, "Invalid date format, use YYYY-MM-DD", nil)
			return
		}
		response.InternalServerError(w, "Failed to get monthly earnings")
		return
	}

	response.Success(w, http.StatusOK, "Monthly earnings retrieved successfully", summary)
}

func (h *EarningsHandler) GetMonthlyDetail(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "")
		return
	}

	vars := mux.Vars(r)
	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid year", nil)
		return
	}
	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid month", nil)
		return
	}

	detail, err := h.earningsUsecase.GetMonthlyDetail(r.Context(), userID, year, month)
	if err != nil {
		if err == usecase.ErrInvalidMonth {
			response.Error(w, http.StatusBadRequest, "Month must be between 1 and 12", nil)
			return
		}
		response.InternalServerError(w, "Failed to get monthly earnings")
		return
	}

	response.Success(w, http.StatusOK, "Monthly earnings retrieved successfully", detail)
}
