package usecase

import (
	"context"
	"errors"
	"fmt"

	"popcorn-palace/internal/data/entity"
	"popcorn-palace/internal/data/repository"
	"popcorn-palace/internal/dto/request"
	"popcorn-palace/internal/dto/response"
	"popcorn-palace/pkg/apperror"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingService interface {
	BookTicket(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) BookTicket(ctx context.Context, req *request.BookingRequest) (*response.BookingResponse, error) {
	if err := validateBooking(req); err != nil {
		s.log.Warn("Book ticket validation failed", zap.Error(err))
		return nil, err
	}

	exists, err := s.repo.Showtime.ExistsByID(ctx, req.ShowtimeID)
	if err != nil {
		return nil, fmt.Errorf("check showtime: %w", err)
	}
	if !exists {
		return nil, apperror.NotFoundID("Showtime", req.ShowtimeID)
	}

	// Friendly pre-check; the unique constraint in the store is what actually
	// guarantees the seat cannot be booked twice.
	taken, err := s.repo.Booking.ExistsByShowtimeAndSeat(ctx, req.ShowtimeID, req.SeatNumber)
	if err != nil {
		return nil, fmt.Errorf("check seat availability: %w", err)
	}
	if taken {
		return nil, seatTakenError(req.SeatNumber, req.ShowtimeID)
	}

	booking := &entity.Booking{
		BookingID:  uuid.New(),
		ShowtimeID: req.ShowtimeID,
		SeatNumber: req.SeatNumber,
		UserID:     req.UserID,
	}

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		if errors.Is(err, repository.ErrSeatTaken) {
			// Lost the race to a concurrent booking after the pre-check.
			return nil, seatTakenError(req.SeatNumber, req.ShowtimeID)
		}

		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.Int64("showtime_id", req.ShowtimeID),
			zap.Int("seat_number", req.SeatNumber),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.BookingID.String()),
		zap.Int64("showtime_id", booking.ShowtimeID),
		zap.Int("seat_number", booking.SeatNumber),
		zap.String("user_id", booking.UserID.String()),
	)

	return &response.BookingResponse{BookingID: booking.BookingID}, nil
}

func seatTakenError(seatNumber int, showtimeID int64) error {
	return apperror.AlreadyExistsMsg(fmt.Sprintf(
		"Seat %d for showtime %d is already booked", seatNumber, showtimeID))
}

// validateBooking runs the field checks in order; the first failure wins.
func validateBooking(req *request.BookingRequest) error {
	if req == nil {
		return apperror.InvalidResource("Booking cannot be null")
	}

	if req.ShowtimeID <= 0 {
		return apperror.InvalidField("showtimeId", "must be a positive number")
	}

	if req.SeatNumber <= 0 {
		return apperror.InvalidField("seatNumber", "must be a positive number")
	}

	if req.UserID == uuid.Nil {
		return apperror.InvalidField("userId", "must not be null")
	}

	return nil
}
