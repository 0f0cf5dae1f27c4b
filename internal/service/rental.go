package service

import (
	"context"
	"fmt"

	"toolrental-checkout/internal/domain"
	"toolrental-checkout/internal/logger"
	"toolrental-checkout/internal/repository"
	"toolrental-checkout/internal/utils"

	"github.com/google/uuid"
)

const (
	MinRentalDays      = 1
	MinDiscountPercent = 0
	MaxDiscountPercent = 100
)

// agreementNamespace scopes the name-based agreement IDs.
var agreementNamespace = uuid.MustParse("6f1c2a9e-3d4b-5e8f-9a7c-0b1d2e3f4a5b")

type rentalService struct {
	toolCatalog repository.ToolCatalog
	holidays    *utils.HolidayCalendar
}

func NewRentalService(toolCatalog repository.ToolCatalog, holidays *utils.HolidayCalendar) RentalService {
	return &rentalService{
		toolCatalog: toolCatalog,
		holidays:    holidays,
	}
}

func (s *rentalService) Checkout(ctx context.Context, req domain.RentalRequest) (*domain.RentalAgreement, error) {
	const method = "RentalService.Checkout"
	logger.EnterMethod(method, "tool_code", req.ToolCode, "rental_days", req.RentalDays,
		"discount_percent", req.DiscountPercent, "checkout_date", req.CheckoutDate.String())

	if err := ValidateRentalRequest(req); err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, err
	}

	tool, err := s.toolCatalog.GetByCode(ctx, req.ToolCode)
	if err != nil {
		logger.ExitMethodWithError(method, err)
		return nil, err
	}

	dueDate := req.CheckoutDate.AddDays(req.RentalDays)
	logger.Calculation("due_date", "due_date", dueDate.String())

	holidays := 0
	if !tool.HolidayCharge {
		holidays = s.holidays.CountHolidays(req.CheckoutDate, dueDate, req.RentalDays)
		logger.Calculation("holidays", "count", holidays)
	}

	weekendDays := 0
	if !tool.WeekendCharge {
		weekendDays = utils.CountWeekendDays(req.CheckoutDate, req.RentalDays)
		logger.Calculation("weekend_days", "count", weekendDays)
	}

	daysCharged, err := utils.ChargeDays(req.RentalDays, holidays, weekendDays, tool)
	if err != nil {
		err = fmt.Errorf("tool %s checked out %s: %w", tool.Code, req.CheckoutDate, err)
		logger.ExitMethodWithError(method, err)
		return nil, err
	}

	charges := utils.CalculateCharges(daysCharged, tool.DailyCharge, req.DiscountPercent)
	logger.Calculation("charges", "days_charged", charges.DaysCharged,
		"pre_discount", charges.PreDiscountCharge.StringFixed(2),
		"discount", charges.DiscountAmount.StringFixed(2),
		"final", charges.FinalCharge.StringFixed(2))

	agreement := domain.NewRentalAgreement(AgreementID(req), req, tool, dueDate, holidays, weekendDays, charges)
	logger.ExitMethod(method, "agreement_id", agreement.AgreementID)
	return agreement, nil
}

func (s *rentalService) ListTools(ctx context.Context) ([]domain.ToolSpec, error) {
	return s.toolCatalog.List(ctx)
}

// ValidateRentalRequest checks the request bounds before any pricing happens.
func ValidateRentalRequest(req domain.RentalRequest) error {
	if req.RentalDays < MinRentalDays {
		return &domain.ValidationError{
			Field:   "rental days",
			Message: fmt.Sprintf("tool must be rented for at least %d day, got %d", MinRentalDays, req.RentalDays),
		}
	}
	if req.DiscountPercent < MinDiscountPercent || req.DiscountPercent > MaxDiscountPercent {
		return &domain.ValidationError{
			Field:   "discount percent",
			Message: fmt.Sprintf("must be within the range %d-%d%%, got %d", MinDiscountPercent, MaxDiscountPercent, req.DiscountPercent),
		}
	}
	if !req.CheckoutDate.IsValid() {
		return &domain.ValidationError{
			Field:   "checkout date",
			Message: fmt.Sprintf("%q is not a calendar date", req.CheckoutDate.String()),
		}
	}
	return nil
}

// AgreementID derives a stable identifier from the request, so a repeated
// checkout yields the same ID.
func AgreementID(req domain.RentalRequest) string {
	name := fmt.Sprintf("%s|%d|%d|%s", req.ToolCode, req.RentalDays, req.DiscountPercent, req.CheckoutDate)
	return uuid.NewSHA1(agreementNamespace, []byte(name)).String()
}
