package services

import (
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
	"srvices-backend/repository"

	"gorm.io/gorm"
)

type VerificationService struct {
	DB    *gorm.DB
	Docs  *repository.DocumentRepository
	Users *repository.UserRepository
}

func NewVerificationService(db *gorm.DB) *VerificationService {
	return &VerificationService{
		DB:    db,
		Docs:  repository.NewDocumentRepository(db),
		Users: repository.NewUserRepository(db),
	}
}

// EvaluateDocuments applies the verification gate: nil only when every
// document is approved. Rejected beats pending in the reported cause so the
// admin sees the harder blocker first.
func EvaluateDocuments(docs []entity.DriverDocument) error {
	if len(docs) == 0 {
		return &apperr.ApprovalBlockedError{Cause: apperr.CauseNoDocuments}
	}
	pending := false
	for _, d := range docs {
		switch d.Status {
		case entity.DocumentRejected:
			return &apperr.ApprovalBlockedError{Cause: apperr.CauseRejectedDocuments}
		case entity.DocumentPending:
			pending = true
		}
	}
	if pending {
		return &apperr.ApprovalBlockedError{Cause: apperr.CausePendingDocuments}
	}
	return nil
}

// CanApproveDriver is the boolean form of the gate.
func CanApproveDriver(docs []entity.DriverDocument) bool {
	return EvaluateDocuments(docs) == nil
}

// SubmitDocument records a driver's upload; it always starts pending.
func (s *VerificationService) SubmitDocument(driverID, docType, url string) (*entity.DriverDocument, error) {
	if docType == "" {
		return nil, apperr.Validation("documentType is required")
	}
	d := &entity.DriverDocument{
		DriverID:     driverID,
		DocumentType: docType,
		DocumentURL:  url,
		Status:       entity.DocumentPending,
	}
	if err := s.Docs.Create(d); err != nil {
		return nil, err
	}
	return d, nil
}

func (s *VerificationService) DriverDocuments(driverID string) ([]entity.DriverDocument, error) {
	return s.Docs.ListByDriver(driverID)
}

// ReviewDocument records an admin verdict on one document. Rejections
// require a reason.
func (s *VerificationService) ReviewDocument(docID string, approve bool, reason string, adminID string) error {
	if _, err := s.Docs.Get(docID); err != nil {
		return err
	}
	status := entity.DocumentApproved
	var reasonPtr *string
	if !approve {
		if reason == "" {
			return apperr.Validation("a reject reason is required")
		}
		status = entity.DocumentRejected
		reasonPtr = &reason
	}
	return s.Docs.Review(docID, status, reasonPtr, adminID, time.Now())
}

// ApproveDriver moves the driver from pending_approval to active, but only
// when the document gate allows it.
func (s *VerificationService) ApproveDriver(driverID string) (*entity.User, error) {
	driver, err := s.Users.FindByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.UserType != entity.UserTypeDriver {
		return nil, apperr.Validation("user is not a driver")
	}

	docs, err := s.Docs.ListByDriver(driverID)
	if err != nil {
		return nil, err
	}
	if err := EvaluateDocuments(docs); err != nil {
		return nil, err
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Users.UpdateStatusGuard(tx, driverID,
			entity.UserStatusPendingApproval, entity.UserStatusActive)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &apperr.ConflictError{Msg: "driver is not awaiting approval"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Users.FindByID(driverID)
}

// ActivateDriver sets a driver active from whatever status they currently
// hold. The document gate applies here exactly as in ApproveDriver, so the
// generic admin status endpoint cannot sidestep verification.
func (s *VerificationService) ActivateDriver(driverID string) (*entity.User, error) {
	driver, err := s.Users.FindByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.UserType != entity.UserTypeDriver {
		return nil, apperr.Validation("user is not a driver")
	}
	if driver.Status == entity.UserStatusActive {
		return driver, nil
	}

	docs, err := s.Docs.ListByDriver(driverID)
	if err != nil {
		return nil, err
	}
	if err := EvaluateDocuments(docs); err != nil {
		return nil, err
	}

	from := driver.Status
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Users.UpdateStatusGuard(tx, driverID, from, entity.UserStatusActive)
		if err != nil {
			return err
		}
		if affected == 0 {
			return &apperr.ConflictError{Msg: "driver status changed concurrently"}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.Users.FindByID(driverID)
}

// RejectDriver suspends the driver. Allowed from any status, but when
// documents are still awaiting review the caller must confirm with force.
func (s *VerificationService) RejectDriver(driverID string, force bool) (*entity.User, error) {
	driver, err := s.Users.FindByID(driverID)
	if err != nil {
		return nil, err
	}
	if driver.UserType != entity.UserTypeDriver {
		return nil, apperr.Validation("user is not a driver")
	}

	if !force {
		docs, err := s.Docs.ListByDriver(driverID)
		if err != nil {
			return nil, err
		}
		for _, d := range docs {
			if d.Status == entity.DocumentPending {
				return nil, apperr.ErrConfirmationRequired
			}
		}
	}

	if err := s.Users.Update(driverID, map[string]any{"status": entity.UserStatusSuspended}); err != nil {
		return nil, err
	}
	return s.Users.FindByID(driverID)
}
