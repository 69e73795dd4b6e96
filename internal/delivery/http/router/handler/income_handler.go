package handler

import (
	"log/slog"
	"net/http"

	"ledger/internal/delivery/http/response"
	"ledger/internal/domain/entity"
	"ledger/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// incomePayload is the mutable part of an income record on the wire.
type incomePayload struct {
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	IsRecurring bool         `json:"isRecurring"`
	StartDate   entity.Date  `json:"startDate" validate:"required"`
	EndDate     *entity.Date `json:"endDate,omitempty"`
}

func (p *incomePayload) toDraft() *entity.IncomeDraft {
	return &entity.IncomeDraft{
		Amount:      p.Amount,
		Description: p.Description,
		IsRecurring: p.IsRecurring,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

// incomeResponse is the wire shape of a stored income record.
type incomeResponse struct {
	ID          uuid.UUID    `json:"id"`
	Amount      float64      `json:"amount"`
	Description string       `json:"description"`
	IsRecurring bool         `json:"isRecurring"`
	StartDate   entity.Date  `json:"startDate"`
	EndDate     *entity.Date `json:"endDate,omitempty"`
	UserID      uuid.UUID    `json:"userId"`
	Username    string       `json:"username"`
}

func toIncomeResponse(inc *entity.Income) incomeResponse {
	return incomeResponse{
		ID:          inc.ID,
		Amount:      inc.Amount,
		Description: inc.Description,
		IsRecurring: inc.IsRecurring,
		StartDate:   inc.StartDate,
		EndDate:     inc.EndDate,
		UserID:      inc.UserID,
		Username:    inc.Username,
	}
}

// IncomeHandler holds dependencies for income-related handlers.
type IncomeHandler struct {
	uc     usecase.IncomeUsecase
	logger *slog.Logger
}

// NewIncomeHandler is the constructor for IncomeHandler, injected by Fx.
func NewIncomeHandler(uc usecase.IncomeUsecase, logger *slog.Logger) *IncomeHandler {
	return &IncomeHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /incomes.
func (h *IncomeHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var payload incomePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid income payload")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.Create(c.Request().Context(), userID, payload.toDraft())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toIncomeResponse(created), "Income created")
}

// List handles GET /incomes with optional startDate/endDate filters.
func (h *IncomeHandler) List(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	rng, err := dateRangeQuery(c)
	if err != nil {
		return err
	}

	listed, err := h.uc.List(c.Request().Context(), userID, &usecase.ListRecordsInput{Range: rng})
	if err != nil {
		return errors.WithStack(err)
	}

	out := make([]incomeResponse, 0, len(listed))
	for _, inc := range listed {
		out = append(out, toIncomeResponse(inc))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Update handles PUT /incomes/:id.
func (h *IncomeHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var payload incomePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid income payload")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), id, userID, payload.toDraft()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Income updated")
}

// Delete handles DELETE /incomes/:id.
func (h *IncomeHandler) Delete(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Income deleted")
}
