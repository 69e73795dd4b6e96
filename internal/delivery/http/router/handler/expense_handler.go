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

// expensePayload is the mutable part of an expense on the wire: the create
// and update bodies share it. Category accepts either the symbolic name or
// the display label and always serializes back as the label.
type expensePayload struct {
	Amount      float64         `json:"amount"`
	Category    entity.Category `json:"category" validate:"required"`
	Description string          `json:"description"`
	IsRecurring bool            `json:"isRecurring"`
	StartDate   entity.Date     `json:"startDate" validate:"required"`
	EndDate     *entity.Date    `json:"endDate,omitempty"`
}

func (p *expensePayload) toDraft() *entity.ExpenseDraft {
	return &entity.ExpenseDraft{
		Amount:      p.Amount,
		Category:    p.Category,
		Description: p.Description,
		IsRecurring: p.IsRecurring,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

// expenseResponse is the wire shape of a stored expense.
type expenseResponse struct {
	ID          uuid.UUID       `json:"id"`
	Amount      float64         `json:"amount"`
	Category    entity.Category `json:"category"`
	Description string          `json:"description"`
	IsRecurring bool            `json:"isRecurring"`
	StartDate   entity.Date     `json:"startDate"`
	EndDate     *entity.Date    `json:"endDate,omitempty"`
	UserID      uuid.UUID       `json:"userId"`
	Username    string          `json:"username"`
}

func toExpenseResponse(exp *entity.Expense) expenseResponse {
	return expenseResponse{
		ID:          exp.ID,
		Amount:      exp.Amount,
		Category:    exp.Category,
		Description: exp.Description,
		IsRecurring: exp.IsRecurring,
		StartDate:   exp.StartDate,
		EndDate:     exp.EndDate,
		UserID:      exp.UserID,
		Username:    exp.Username,
	}
}

// ExpenseHandler holds dependencies for expense-related handlers.
type ExpenseHandler struct {
	uc     usecase.ExpenseUsecase
	logger *slog.Logger
}

// NewExpenseHandler is the constructor for ExpenseHandler, injected by Fx.
func NewExpenseHandler(uc usecase.ExpenseUsecase, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		uc:     uc,
		logger: logger,
	}
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var payload expensePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid expense payload")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	created, err := h.uc.Create(c.Request().Context(), userID, payload.toDraft())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toExpenseResponse(created), "Expense created")
}

// List handles GET /expenses with optional startDate/endDate filters.
func (h *ExpenseHandler) List(c echo.Context) error {
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

	out := make([]expenseResponse, 0, len(listed))
	for _, exp := range listed {
		out = append(out, toExpenseResponse(exp))
	}

	return response.Success(c, http.StatusOK, out, "")
}

// Update handles PUT /expenses/:id.
func (h *ExpenseHandler) Update(c echo.Context) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	id, err := recordID(c)
	if err != nil {
		return err
	}

	var payload expensePayload
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid expense payload")
	}
	if err := c.Validate(&payload); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Update(c.Request().Context(), id, userID, payload.toDraft()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Expense updated")
}

// Delete handles DELETE /expenses/:id.
func (h *ExpenseHandler) Delete(c echo.Context) error {
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

	return response.Success(c, http.StatusOK, nil, "Expense deleted")
}

// Categories handles GET /expenses/categories, returning the closed set of
// category display labels.
func (h *ExpenseHandler) Categories(c echo.Context) error {
	return response.Success(c, http.StatusOK, entity.CategoryLabels(), "")
}
