package services

import (
	"strings"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
	"srvices-backend/repository"

	"gorm.io/gorm"
)

type BookingService struct {
	DB       *gorm.DB
	Repo     *repository.BookingRepository
	Services *repository.ServiceRepository
	Pricing  *repository.PricingRepository
	Users    *repository.UserRepository
	Txns     *repository.TransactionRepository
	Chat     *repository.ChatRepository
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{
		DB:       db,
		Repo:     repository.NewBookingRepository(db),
		Services: repository.NewServiceRepository(db),
		Pricing:  repository.NewPricingRepository(db),
		Users:    repository.NewUserRepository(db),
		Txns:     repository.NewTransactionRepository(db),
		Chat:     repository.NewChatRepository(db),
	}
}

type CreateBookingInput struct {
	CustomerID  string
	ServiceID   string
	Location    string
	ServiceDate time.Time
	Quantity    int
	Notes       string
}

// Create validates the request and opens a booking in pending_offers.
func (s *BookingService) Create(in CreateBookingInput) (*entity.Booking, error) {
	if strings.TrimSpace(in.ServiceID) == "" {
		return nil, apperr.Validation("service is required")
	}
	if strings.TrimSpace(in.Location) == "" {
		return nil, apperr.Validation("location is required")
	}
	if in.ServiceDate.IsZero() {
		return nil, apperr.Validation("service date is required")
	}
	if in.Quantity < 1 {
		return nil, apperr.Validation("quantity must be at least 1")
	}

	svc, err := s.Services.Get(in.ServiceID)
	if err != nil {
		return nil, err
	}
	if !svc.IsActive {
		return nil, apperr.Validation("service is not available for booking")
	}

	b := &entity.Booking{
		CustomerID:  in.CustomerID,
		ServiceID:   svc.ID,
		Location:    strings.TrimSpace(in.Location),
		ServiceDate: in.ServiceDate,
		Quantity:    in.Quantity,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      entity.BookingPendingOffers,
	}
	if err := s.Repo.Create(s.DB, b); err != nil {
		return nil, err
	}
	return b, nil
}

// Accept assigns the driver and moves pending_offers -> active. It also
// opens the booking's ledger row and its chat room.
func (s *BookingService) Accept(bookingID, driverID string) (*entity.Booking, error) {
	driver, err := s.Users.FindByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.UserType != entity.UserTypeDriver {
		return nil, apperr.Validation("only drivers can accept bookings")
	}
	if driver.Status != entity.UserStatusActive {
		return nil, apperr.Validation("driver account is not active")
	}

	b, err := s.Repo.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(b.Status, entity.BookingActive); err != nil {
		return nil, err
	}

	svc, err := s.Services.Get(b.ServiceID)
	if err != nil {
		return nil, err
	}
	rule, err := s.Pricing.ActiveRuleForService(b.ServiceID)
	if err != nil {
		return nil, err
	}

	gross := GrossAmount(svc, rule, b.Quantity)
	fee, driverAmount := SplitAmount(gross, svc.PlatformFee, rule)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, b.ID,
			entity.BookingPendingOffers, entity.BookingActive,
			map[string]any{"driver_id": driverID})
		if err != nil {
			return err
		}
		if affected == 0 {
			// someone else accepted between our read and this write
			return &apperr.ConflictError{Msg: "booking is no longer open"}
		}

		if err := s.Txns.Create(tx, &entity.Transaction{
			BookingID:    b.ID,
			DriverID:     &driverID,
			GrossAmount:  gross,
			CompanyFee:   fee,
			DriverAmount: driverAmount,
			Status:       entity.TransactionPending,
			Type:         entity.TransactionInbound,
		}); err != nil {
			return err
		}

		return s.Chat.CreateRoom(tx, &entity.ChatRoom{BookingID: b.ID})
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(bookingID)
}

// Complete moves active -> completed, settles the ledger row and credits
// the driver's wallet cache.
func (s *BookingService) Complete(bookingID string) (*entity.Booking, error) {
	b, err := s.Repo.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(b.Status, entity.BookingCompleted); err != nil {
		return nil, err
	}

	// read the pending ledger amount before opening the transaction
	var payout int64
	txns, err := s.Txns.ListByBooking(b.ID)
	if err != nil {
		return nil, err
	}
	for _, t := range txns {
		if t.Status == entity.TransactionPending && t.Type == entity.TransactionInbound {
			payout += t.DriverAmount
		}
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, b.ID,
			entity.BookingActive, entity.BookingCompleted, nil)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &apperr.ConflictError{Msg: "booking already settled"}
		}

		if _, err := s.Txns.UpdateStatusByBooking(tx, b.ID,
			entity.TransactionPending, entity.TransactionCompleted); err != nil {
			return err
		}

		if b.DriverID != nil && payout != 0 {
			if err := s.Users.AdjustWallet(tx, *b.DriverID, payout); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(bookingID)
}

// Cancel moves pending_offers or active -> cancelled and records the reason.
// Any pending ledger row is cancelled with it.
func (s *BookingService) Cancel(bookingID, reason string) (*entity.Booking, error) {
	b, err := s.Repo.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if err := guardTransition(b.Status, entity.BookingCancelled); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, b.ID,
			b.Status, entity.BookingCancelled,
			map[string]any{"cancellation_reason": strings.TrimSpace(reason)})
		if err != nil {
			return err
		}
		if affected == 0 {
			return &apperr.ConflictError{Msg: "booking status changed, try again"}
		}

		_, err = s.Txns.UpdateStatusByBooking(tx, b.ID,
			entity.TransactionPending, entity.TransactionCancelled)
		return err
	})
	if err != nil {
		return nil, err
	}
	return s.Repo.Get(bookingID)
}

// Get returns a booking only to its participants or an admin.
func (s *BookingService) Get(bookingID, userID, role string) (*entity.Booking, error) {
	b, err := s.Repo.Get(bookingID)
	if err != nil {
		return nil, err
	}
	if role != string(entity.UserTypeAdmin) &&
		b.CustomerID != userID &&
		(b.DriverID == nil || *b.DriverID != userID) {
		return nil, apperr.ErrNotFound
	}
	return b, nil
}
