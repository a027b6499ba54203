package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"restopanel/internal/apierror"
	"restopanel/internal/dto"
	"restopanel/internal/model"
	"restopanel/internal/repository"
	"restopanel/internal/worker"
)

type ReservationService interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) (*model.Reservation, error)
	GetByID(ctx context.Context, id string) (*model.Reservation, error)
	GetByConfirmation(ctx context.Context, number string) (*model.Reservation, error)
	ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Reservation, error)
	Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (*model.Reservation, error)
	// AssignTable links the reservation to a table after checking the table
	// exists and belongs to the same restaurant.
	AssignTable(ctx context.Context, id, tableID string) (*model.Reservation, error)

	// Status helpers all route through the reservation transition table and
	// fail with TransitionError when the current status does not permit the
	// change.
	Confirm(ctx context.Context, id string) (*model.Reservation, error)
	Seat(ctx context.Context, id string) (*model.Reservation, error)
	Complete(ctx context.Context, id string) (*model.Reservation, error)
	Cancel(ctx context.Context, id, reason string) (*model.Reservation, error)
	MarkNoShow(ctx context.Context, id string) (*model.Reservation, error)
}

type reservationService struct {
	repos      *repository.Store
	dispatcher *worker.Dispatcher // nil disables confirmation emails
}

func NewReservationService(repos *repository.Store, dispatcher *worker.Dispatcher) ReservationService {
	return &reservationService{repos: repos, dispatcher: dispatcher}
}

// confirmationSeq disambiguates reservations created within the same
// millisecond; the confirmation number must be unique across consecutive
// creations.
var confirmationSeq uint32

func newConfirmationNumber(t time.Time) string {
	seq := atomic.AddUint32(&confirmationSeq, 1)
	return fmt.Sprintf("R%s-%03d", strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36)), seq%1000)
}

func (s *reservationService) Create(ctx context.Context, req dto.CreateReservationRequest) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	res := &model.Reservation{
		ID:                 uuid.NewString(),
		RestaurantID:       req.RestaurantID,
		ConfirmationNumber: newConfirmationNumber(now),
		CustomerName:       req.CustomerName,
		CustomerEmail:      strings.ToLower(req.CustomerEmail),
		CustomerPhone:      req.CustomerPhone,
		PartySize:          req.PartySize,
		DateTime:           req.DateTime,
		Status:             model.ReservationPending,
		TableID:            req.TableID,
		SpecialRequests:    req.SpecialRequests,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := repos.Reservations.Create(ctx, res); err != nil {
		return nil, err
	}

	s.enqueueEmail(ctx, res, "Reservation received",
		fmt.Sprintf("Hi %s, we received your reservation for %d on %s. Your confirmation number is %s.",
			res.CustomerName, res.PartySize, res.DateTime.Format("Jan 2 at 15:04"), res.ConfirmationNumber))
	return res, nil
}

func (s *reservationService) GetByID(ctx context.Context, id string) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Reservations.GetByID(ctx, id)
}

func (s *reservationService) GetByConfirmation(ctx context.Context, number string) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Reservations.GetByConfirmation(ctx, number)
}

func (s *reservationService) ListByRestaurant(ctx context.Context, restaurantID string) ([]model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	return repos.Reservations.ListByRestaurant(ctx, restaurantID)
}

func (s *reservationService) Update(ctx context.Context, id string, req dto.UpdateReservationRequest) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	res, err := repos.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	expected := res.UpdatedAt

	if req.CustomerName != nil {
		res.CustomerName = *req.CustomerName
	}
	if req.CustomerEmail != nil {
		res.CustomerEmail = strings.ToLower(*req.CustomerEmail)
	}
	if req.CustomerPhone != nil {
		res.CustomerPhone = *req.CustomerPhone
	}
	if req.PartySize != nil {
		res.PartySize = *req.PartySize
	}
	if req.DateTime != nil {
		res.DateTime = *req.DateTime
	}
	if req.TableID != nil {
		res.TableID = *req.TableID
	}
	if req.SpecialRequests != nil {
		res.SpecialRequests = *req.SpecialRequests
	}

	res.UpdatedAt = time.Now().UTC()
	if err := repos.Reservations.Update(ctx, res, expected); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *reservationService) AssignTable(ctx context.Context, id, tableID string) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	res, err := repos.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	table, err := repos.Tables.GetByID(ctx, tableID)
	if err != nil {
		return nil, err
	}
	if table.RestaurantID != res.RestaurantID {
		return nil, apierror.NewValidation("table belongs to a different restaurant")
	}

	expected := res.UpdatedAt
	res.TableID = tableID
	res.UpdatedAt = time.Now().UTC()
	if err := repos.Reservations.Update(ctx, res, expected); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *reservationService) Confirm(ctx context.Context, id string) (*model.Reservation, error) {
	res, err := s.transition(ctx, id, model.ReservationConfirmed, nil)
	if err != nil {
		return nil, err
	}
	s.enqueueEmail(ctx, res, "Reservation confirmed",
		fmt.Sprintf("Hi %s, your reservation %s is confirmed for %s.",
			res.CustomerName, res.ConfirmationNumber, res.DateTime.Format("Jan 2 at 15:04")))
	return res, nil
}

func (s *reservationService) Seat(ctx context.Context, id string) (*model.Reservation, error) {
	return s.transition(ctx, id, model.ReservationSeated, nil)
}

func (s *reservationService) Complete(ctx context.Context, id string) (*model.Reservation, error) {
	return s.transition(ctx, id, model.ReservationCompleted, nil)
}

func (s *reservationService) Cancel(ctx context.Context, id, reason string) (*model.Reservation, error) {
	return s.transition(ctx, id, model.ReservationCancelled, func(res *model.Reservation, now time.Time) {
		res.CancelReason = reason
		res.CancelledAt = &now
	})
}

func (s *reservationService) MarkNoShow(ctx context.Context, id string) (*model.Reservation, error) {
	return s.transition(ctx, id, model.ReservationNoShow, nil)
}

// transition loads the reservation, validates the status change against the
// transition table, applies extra mutations, and writes back with a
// compare-and-swap on the timestamp it read.
func (s *reservationService) transition(ctx context.Context, id string, to model.ReservationStatus, mutate func(*model.Reservation, time.Time)) (*model.Reservation, error) {
	repos, err := s.repos.Active()
	if err != nil {
		return nil, err
	}
	res, err := repos.Reservations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !model.CanTransitionReservation(res.Status, to) {
		return nil, apierror.NewTransition("reservation", string(res.Status), string(to))
	}

	expected := res.UpdatedAt
	now := time.Now().UTC()
	res.Status = to
	res.UpdatedAt = now
	if mutate != nil {
		mutate(res, now)
	}
	if err := repos.Reservations.Update(ctx, res, expected); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *reservationService) enqueueEmail(ctx context.Context, res *model.Reservation, subject, body string) {
	if s.dispatcher == nil || res.CustomerEmail == "" {
		return
	}
	job := worker.EmailJob{To: res.CustomerEmail, Subject: subject, Body: body}
	if err := s.dispatcher.EnqueueEmail(ctx, job); err != nil {
		log.Warn().Err(err).Str("reservation_id", res.ID).Msg("could not enqueue confirmation email")
	}
}
