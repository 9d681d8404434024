package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/NotOriginal333/hotel-lab4/internal/resortapi"
	"github.com/NotOriginal333/hotel-lab4/internal/session"
	"github.com/NotOriginal333/hotel-lab4/internal/validator"
	"github.com/NotOriginal333/hotel-lab4/internal/web/models"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	ErrNotAuthenticated     = errors.New("not authenticated")
	ErrAvailabilityRequired = errors.New("no positive availability check")
)

// CottageService drives the cottage list and the availability/booking flow.
// Every method records the resulting screen state in the session.
type CottageService interface {
	FirstPage(ctx context.Context, sess *session.Session) (*models.CottageList, error)
	LoadMore(ctx context.Context, sess *session.Session) (*models.CottageList, error)
	Open(ctx context.Context, sess *session.Session, id int64) (*models.BookingState, error)
	CheckAvailability(ctx context.Context, sess *session.Session, id int64, form models.DatesForm, csrfToken string) (*models.BookingState, error)
	Book(ctx context.Context, sess *session.Session, id int64, csrfToken string) (*models.BookingState, error)
}

type cottageService struct {
	api                resortapi.API
	pageSize           int
	availabilityChecks metric.Int64Counter
	bookings           metric.Int64Counter
}

func NewCottageService(api resortapi.API, pageSize int) (CottageService, error) {
	meter := otel.Meter("web.service")

	availabilityChecks, err := meter.Int64Counter("availability_checks",
		metric.WithDescription("Availability checks by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create availability counter: %w", err)
	}
	bookings, err := meter.Int64Counter("bookings",
		metric.WithDescription("Booking attempts by outcome"))
	if err != nil {
		return nil, fmt.Errorf("failed to create booking counter: %w", err)
	}

	return &cottageService{
		api:                api,
		pageSize:           pageSize,
		availabilityChecks: availabilityChecks,
		bookings:           bookings,
	}, nil
}

// FirstPage starts a new list with page 1. The list in the session is only
// replaced once page 1 has loaded; on failure the previous list is returned.
func (s *cottageService) FirstPage(ctx context.Context, sess *session.Session) (*models.CottageList, error) {
	ctx, span := tracer.Start(ctx, "CottageService.FirstPage")
	defer span.End()

	list := models.NewCottageList(s.pageSize)
	if err := s.loadPage(ctx, span, sess, list); err != nil {
		if prev := sess.Cottages(); prev != nil {
			return prev, err
		}
		return list, err
	}
	return list, nil
}

// LoadMore appends the next page. On failure the list is left as it was.
func (s *cottageService) LoadMore(ctx context.Context, sess *session.Session) (*models.CottageList, error) {
	list := sess.Cottages()
	if list == nil {
		return s.FirstPage(ctx, sess)
	}

	ctx, span := tracer.Start(ctx, "CottageService.LoadMore")
	defer span.End()

	return list, s.loadPage(ctx, span, sess, list)
}

func (s *cottageService) loadPage(ctx context.Context, span trace.Span, sess *session.Session, list *models.CottageList) error {
	page := list.NextPage()
	span.SetAttributes(attribute.Int("page", page), attribute.Int("page_size", list.PageSize))

	cottages, err := s.api.ListCottages(ctx, page, list.PageSize)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list cottages failed")
		slog.ErrorContext(ctx, "Error fetching cottages", "page", page, "error", err)
		return fmt.Errorf("list cottages page %d: %w", page, err)
	}

	list.Append(page, cottages)
	sess.SetCottages(list)
	return nil
}

// Open fetches the cottage and starts a fresh booking state for it.
func (s *cottageService) Open(ctx context.Context, sess *session.Session, id int64) (*models.BookingState, error) {
	ctx, span := tracer.Start(ctx, "CottageService.Open", trace.WithAttributes(attribute.Int64("cottage.id", id)))
	defer span.End()

	cottage, err := s.api.GetCottage(ctx, id)
	if resortapi.IsStatus(err, http.StatusNotFound) {
		slog.InfoContext(ctx, "Cottage not found", "cottage.id", id)
		return nil, fmt.Errorf("get cottage %d: %w", id, err)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "get cottage failed")
		slog.ErrorContext(ctx, "Failed to fetch cottage details", "cottage.id", id, "error", err)
		return nil, fmt.Errorf("get cottage %d: %w", id, err)
	}

	state := models.NewBookingState(*cottage)
	sess.SetBooking(state)
	return state, nil
}

func (s *cottageService) stateFor(ctx context.Context, sess *session.Session, id int64) (*models.BookingState, error) {
	if state := sess.Booking(id); state != nil {
		return state, nil
	}
	return s.Open(ctx, sess, id)
}

// CheckAvailability runs one availability request for the date range and
// records the answer. API failures are recorded as "not available".
func (s *cottageService) CheckAvailability(ctx context.Context, sess *session.Session, id int64, form models.DatesForm, csrfToken string) (*models.BookingState, error) {
	state, err := s.stateFor(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "CottageService.CheckAvailability", trace.WithAttributes(
		attribute.Int64("cottage.id", id),
		attribute.String("check_in", form.CheckIn),
		attribute.String("check_out", form.CheckOut),
	))
	defer span.End()
	defer sess.SetBooking(state)

	if err := validator.Struct(form); err != nil {
		slog.InfoContext(ctx, "Rejected availability dates", "cottage.id", id, "fields", validator.Fields(err))
		state.RecordCheckFailure(form.CheckIn, form.CheckOut, models.MsgInvalidDates)
		s.availabilityChecks.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "invalid")))
		return state, nil
	}

	result, err := s.api.CheckAvailability(ctx, resortapi.AvailabilityRequest{
		Cottage:  id,
		CheckIn:  form.CheckIn,
		CheckOut: form.CheckOut,
	}, csrfToken)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "check availability failed")
		slog.ErrorContext(ctx, "Error checking availability", "cottage.id", id, "error", err)
		state.RecordCheckFailure(form.CheckIn, form.CheckOut, models.MsgAvailabilityFailed)
		s.availabilityChecks.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "error")))
		return state, nil
	}

	state.RecordAvailability(form.CheckIn, form.CheckOut, *result)
	outcome := "unavailable"
	if result.Available {
		outcome = "available"
	}
	span.SetAttributes(attribute.Bool("available", result.Available))
	s.availabilityChecks.Add(ctx, 1, metric.WithAttributes(attribute.String("result", outcome)))
	return state, nil
}

// Book submits the booking for the last positively checked date range. The
// outcome is reported in the state's Notice.
func (s *cottageService) Book(ctx context.Context, sess *session.Session, id int64, csrfToken string) (*models.BookingState, error) {
	state, err := s.stateFor(ctx, sess, id)
	if err != nil {
		return nil, err
	}

	ctx, span := tracer.Start(ctx, "CottageService.Book", trace.WithAttributes(attribute.Int64("cottage.id", id)))
	defer span.End()
	defer sess.SetBooking(state)

	err = s.submitBooking(ctx, state, sess.Token(), csrfToken)
	switch {
	case errors.Is(err, ErrAvailabilityRequired):
		state.Notice = models.MsgCheckFirst
		s.bookings.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "refused")))
	case errors.Is(err, ErrNotAuthenticated):
		state.Notice = models.MsgLoginToBook
		s.bookings.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "refused")))
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "booking failed")
		slog.ErrorContext(ctx, "Error making booking", "cottage.id", id, "error", err)
		state.RecordBookingAttempt(models.MsgBookingFailed)
		s.bookings.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "failed")))
	default:
		slog.InfoContext(ctx, "Booking confirmed", "cottage.id", id, "check_in", state.CheckIn, "check_out", state.CheckOut)
		state.RecordBookingAttempt(models.MsgBookingConfirmed)
		s.bookings.Add(ctx, 1, metric.WithAttributes(attribute.String("result", "confirmed")))
	}
	return state, nil
}

// submitBooking refuses locally unless the last check was positive and a
// token is stored. The availability result is not re-validated.
func (s *cottageService) submitBooking(ctx context.Context, state *models.BookingState, token, csrfToken string) error {
	if !state.CanBook() {
		return ErrAvailabilityRequired
	}
	if token == "" {
		return ErrNotAuthenticated
	}
	return s.api.CreateBooking(ctx, state.Request(), token, csrfToken)
}
