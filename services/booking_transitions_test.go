package services

import (
	"errors"
	"testing"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to entity.BookingStatus
		want     bool
	}{
		{entity.BookingPendingOffers, entity.BookingActive, true},
		{entity.BookingPendingOffers, entity.BookingCancelled, true},
		{entity.BookingPendingOffers, entity.BookingCompleted, false},
		{entity.BookingActive, entity.BookingCompleted, true},
		{entity.BookingActive, entity.BookingCancelled, true},
		{entity.BookingActive, entity.BookingPendingOffers, false},
		{entity.BookingCompleted, entity.BookingActive, false},
		{entity.BookingCompleted, entity.BookingCancelled, false},
		{entity.BookingCancelled, entity.BookingActive, false},
		{entity.BookingCancelled, entity.BookingPendingOffers, false},
	}
	for _, tc := range cases {
		if got := CanTransition(tc.from, tc.to); got != tc.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func newBookingFixture(t *testing.T) (*BookingService, *entity.User, *entity.User, *entity.Service) {
	t.Helper()
	db := newTestDB(t)
	svc := NewBookingService(db)
	customer := seedUser(t, db, entity.UserTypeCustomer, entity.UserStatusActive)
	driver := seedUser(t, db, entity.UserTypeDriver, entity.UserStatusActive)
	service := seedService(t, db, 5000, 20, entity.PriceTypeHourly, true)
	return svc, customer, driver, service
}

func createBooking(t *testing.T, svc *BookingService, customerID, serviceID string) *entity.Booking {
	t.Helper()
	b, err := svc.Create(CreateBookingInput{
		CustomerID:  customerID,
		ServiceID:   serviceID,
		Location:    "Riyadh, Olaya St",
		ServiceDate: time.Now().Add(24 * time.Hour),
		Quantity:    2,
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	return b
}

func TestCreateBookingValidation(t *testing.T) {
	svc, customer, _, service := newBookingFixture(t)

	_, err := svc.Create(CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceID:   service.ID,
		Location:    "somewhere",
		ServiceDate: time.Now(),
		Quantity:    0,
	})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("quantity 0 should fail validation, got %v", err)
	}

	// inactive service is not bookable
	if err := svc.DB.Model(service).Update("is_active", false).Error; err != nil {
		t.Fatal(err)
	}
	_, err = svc.Create(CreateBookingInput{
		CustomerID:  customer.ID,
		ServiceID:   service.ID,
		Location:    "somewhere",
		ServiceDate: time.Now(),
		Quantity:    1,
	})
	if !errors.As(err, &ve) {
		t.Fatalf("inactive service should fail validation, got %v", err)
	}
}

func TestAcceptBooking(t *testing.T) {
	svc, customer, driver, service := newBookingFixture(t)
	b := createBooking(t, svc, customer.ID, service.ID)

	if b.Status != entity.BookingPendingOffers {
		t.Fatalf("new booking status = %s, want pending_offers", b.Status)
	}

	accepted, err := svc.Accept(b.ID, driver.ID)
	if err != nil {
		t.Fatalf("accept: %v", err)
	}
	if accepted.Status != entity.BookingActive {
		t.Fatalf("status after accept = %s, want active", accepted.Status)
	}
	if accepted.DriverID == nil || *accepted.DriverID != driver.ID {
		t.Fatal("driver not assigned")
	}

	// the ledger row opens with accept: hourly 5000 x 2 = 10000, 20% fee
	txns, err := svc.Txns.ListByBooking(b.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(txns) != 1 {
		t.Fatalf("transactions = %d, want 1", len(txns))
	}
	tx := txns[0]
	if tx.GrossAmount != 10000 || tx.CompanyFee != 2000 || tx.DriverAmount != 8000 {
		t.Fatalf("split = %d/%d/%d, want 10000/2000/8000", tx.GrossAmount, tx.CompanyFee, tx.DriverAmount)
	}
	if tx.GrossAmount != tx.CompanyFee+tx.DriverAmount {
		t.Fatal("ledger invariant violated")
	}
	if tx.Status != entity.TransactionPending {
		t.Fatalf("transaction status = %s, want pending", tx.Status)
	}

	// accepting twice must fail the second time
	_, err = svc.Accept(b.ID, driver.ID)
	var te *apperr.InvalidTransitionError
	if !errors.As(err, &te) {
		t.Fatalf("second accept should be InvalidTransitionError, got %v", err)
	}
}

func TestCompleteBooking(t *testing.T) {
	svc, customer, driver, service := newBookingFixture(t)
	b := createBooking(t, svc, customer.ID, service.ID)

	// cannot complete straight from pending_offers
	_, err := svc.Complete(b.ID)
	var te *apperr.InvalidTransitionError
	if !errors.As(err, &te) {
		t.Fatalf("complete from pending_offers should fail, got %v", err)
	}

	if _, err := svc.Accept(b.ID, driver.ID); err != nil {
		t.Fatal(err)
	}
	done, err := svc.Complete(b.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != entity.BookingCompleted {
		t.Fatalf("status = %s, want completed", done.Status)
	}

	// ledger row settled and driver wallet credited
	txns, _ := svc.Txns.ListByBooking(b.ID)
	if txns[0].Status != entity.TransactionCompleted {
		t.Fatalf("transaction status = %s, want completed", txns[0].Status)
	}
	d, err := svc.Users.FindByID(driver.ID)
	if err != nil {
		t.Fatal(err)
	}
	if d.WalletBalance != 8000 {
		t.Fatalf("driver wallet = %d, want 8000", d.WalletBalance)
	}
	balance, err := svc.Txns.WalletBalance(driver.ID)
	if err != nil {
		t.Fatal(err)
	}
	if balance != 8000 {
		t.Fatalf("ledger balance = %d, want 8000", balance)
	}
}

func TestTerminalStatesAbsorb(t *testing.T) {
	svc, customer, driver, service := newBookingFixture(t)

	// completed booking accepts nothing further
	b := createBooking(t, svc, customer.ID, service.ID)
	if _, err := svc.Accept(b.ID, driver.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Complete(b.ID); err != nil {
		t.Fatal(err)
	}

	var te *apperr.InvalidTransitionError
	if _, err := svc.Cancel(b.ID, "changed my mind"); !errors.As(err, &te) {
		t.Fatalf("cancel after complete should fail, got %v", err)
	}
	if _, err := svc.Accept(b.ID, driver.ID); !errors.As(err, &te) {
		t.Fatalf("accept after complete should fail, got %v", err)
	}
	if _, err := svc.Complete(b.ID); !errors.As(err, &te) {
		t.Fatalf("complete twice should fail, got %v", err)
	}

	// cancelled booking likewise
	b2 := createBooking(t, svc, customer.ID, service.ID)
	if _, err := svc.Cancel(b2.ID, "no longer needed"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Accept(b2.ID, driver.ID); !errors.As(err, &te) {
		t.Fatalf("accept after cancel should fail, got %v", err)
	}
	if _, err := svc.Cancel(b2.ID, "again"); !errors.As(err, &te) {
		t.Fatalf("double cancel should fail, got %v", err)
	}

	got, _ := svc.Repo.Get(b2.ID)
	if got.CancellationReason != "no longer needed" {
		t.Fatalf("cancellation reason = %q", got.CancellationReason)
	}
}

func TestCancelActiveBooking(t *testing.T) {
	svc, customer, driver, service := newBookingFixture(t)
	b := createBooking(t, svc, customer.ID, service.ID)
	if _, err := svc.Accept(b.ID, driver.ID); err != nil {
		t.Fatal(err)
	}

	cancelled, err := svc.Cancel(b.ID, "driver requested")
	if err != nil {
		t.Fatalf("cancel active: %v", err)
	}
	if cancelled.Status != entity.BookingCancelled {
		t.Fatalf("status = %s, want cancelled", cancelled.Status)
	}

	// the pending ledger row is cancelled with the booking
	txns, _ := svc.Txns.ListByBooking(b.ID)
	if txns[0].Status != entity.TransactionCancelled {
		t.Fatalf("transaction status = %s, want cancelled", txns[0].Status)
	}
}

func TestAcceptRequiresActiveDriver(t *testing.T) {
	svc, customer, _, service := newBookingFixture(t)
	pendingDriver := seedUser(t, svc.DB, entity.UserTypeDriver, entity.UserStatusPendingApproval)
	b := createBooking(t, svc, customer.ID, service.ID)

	_, err := svc.Accept(b.ID, pendingDriver.ID)
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("unapproved driver should not accept, got %v", err)
	}

	// booking untouched
	got, _ := svc.Repo.Get(b.ID)
	if got.Status != entity.BookingPendingOffers {
		t.Fatalf("status = %s, want pending_offers", got.Status)
	}
}
