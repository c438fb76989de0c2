package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/havenlet/leasing/internal/leasing/domain"
	"github.com/havenlet/leasing/internal/leasing/notify"
	"github.com/havenlet/leasing/internal/leasing/store"
	"github.com/havenlet/leasing/pkg/idx"
	"github.com/havenlet/leasing/pkg/slogx"
)

// InvoiceService bills maintenance costs. Every invoice owns exactly one
// companion payment; the pair is created, amount-synced, status-synced and
// deleted together so neither side can drift.
type InvoiceService struct {
	Store    store.Store
	Notifier notify.Notifier
}

type InvoiceInput struct {
	MaintenanceRequestID string
	Description          string
	Amount               int64
	SharedWithTenant     bool
}

// Create raises an invoice against a maintenance request and opens its
// companion payment. The payment is charged to the tenant holding the active
// lease on the affected listing; a vacant listing cannot be invoiced.
func (s *InvoiceService) Create(ctx context.Context, landlordID string, in InvoiceInput) (domain.Invoice, error) {
	log := slogx.FromContext(ctx)

	if in.Amount <= 0 || in.Description == "" {
		return domain.Invoice{}, ErrInvalidRequest
	}

	// 1. The maintenance request must exist on one of the caller's listings.
	mr, err := s.Store.Maintenance().GetMaintenanceRequestByID(ctx, in.MaintenanceRequestID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrNotFound
		}
		log.Error("failed to fetch maintenance request", slog.Any("error", err))
		return domain.Invoice{}, err
	}
	if mr.LandlordID != landlordID {
		return domain.Invoice{}, ErrForbidden
	}

	// 2. Resolve who pays: the tenant on the listing's active lease.
	now := time.Now().UTC()
	lease, err := s.Store.Leases().FindActiveLeaseByListing(ctx, mr.ListingID, now)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("invoice refused, listing has no active lease",
				slog.String("listing_id", mr.ListingID),
			)
			return domain.Invoice{}, ErrInvalidState
		}
		log.Error("failed to resolve active lease", slog.Any("error", err))
		return domain.Invoice{}, err
	}

	payment := domain.Payment{
		ID:         idx.New().String(),
		TenantID:   lease.TenantID,
		LandlordID: landlordID,
		ListingID:  mr.ListingID,
		Type:       domain.PaymentMaintenance,
		Status:     domain.PaymentPending,
		Amount:     in.Amount,
	}
	inv := domain.Invoice{
		ID:                   idx.New().String(),
		MaintenanceRequestID: mr.ID,
		PaymentID:            payment.ID,
		LandlordID:           landlordID,
		Description:          in.Description,
		Amount:               in.Amount,
		Status:               domain.InvoicePending,
		SharedWithTenant:     in.SharedWithTenant,
	}

	// 3. Pair creation is atomic.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Payments().CreatePayment(ctx, payment); err != nil {
			return err
		}
		return tx.Invoices().CreateInvoice(ctx, inv)
	})
	if err != nil {
		log.Error("failed to create invoice", slog.Any("error", err))
		return domain.Invoice{}, err
	}

	if in.SharedWithTenant && s.Notifier != nil {
		go func() {
			nctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			err := s.Notifier.Send(nctx, notify.Notification{
				Event:     notify.EventInvoiceCreated,
				Recipient: lease.TenantID,
				Data:      map[string]string{"invoice_id": inv.ID},
			})
			if err != nil {
				slog.Warn("notification dispatch failed",
					slog.String("event", notify.EventInvoiceCreated),
					slog.Any("error", err),
				)
			}
		}()
	}

	log.Debug("invoice created",
		slog.String("invoice_id", inv.ID),
		slog.String("payment_id", payment.ID),
	)
	return s.Store.Invoices().GetInvoiceByID(ctx, inv.ID)
}

// Update edits the description, amount and visibility of a pending invoice.
// Amount changes propagate to the companion payment in the same transaction.
func (s *InvoiceService) Update(ctx context.Context, invoiceID, landlordID string, in InvoiceInput) (domain.Invoice, error) {
	inv, err := s.ownedInvoice(ctx, invoiceID, landlordID)
	if err != nil {
		return domain.Invoice{}, err
	}
	if inv.Status != domain.InvoicePending {
		return domain.Invoice{}, ErrInvalidState
	}
	if in.Amount <= 0 || in.Description == "" {
		return domain.Invoice{}, ErrInvalidRequest
	}

	inv.Description = in.Description
	inv.Amount = in.Amount
	inv.SharedWithTenant = in.SharedWithTenant

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invoices().UpdateInvoice(ctx, inv); err != nil {
			return err
		}
		return tx.Payments().UpdatePaymentAmount(ctx, inv.PaymentID, in.Amount)
	})
	if err != nil {
		slogx.FromContext(ctx).Error("failed to update invoice", slog.Any("error", err))
		return domain.Invoice{}, err
	}
	return s.Store.Invoices().GetInvoiceByID(ctx, inv.ID)
}

// UpdateStatus moves an invoice between PENDING, PAID and CANCELLED and
// mirrors the transition onto the companion payment. Marking PAID stamps the
// payment's paid date; moving back to PENDING clears it.
func (s *InvoiceService) UpdateStatus(ctx context.Context, invoiceID, landlordID string, status domain.InvoiceStatus) (domain.Invoice, error) {
	log := slogx.FromContext(ctx)

	switch status {
	case domain.InvoicePending, domain.InvoicePaid, domain.InvoiceCancelled:
	default:
		return domain.Invoice{}, ErrInvalidRequest
	}

	inv, err := s.ownedInvoice(ctx, invoiceID, landlordID)
	if err != nil {
		return domain.Invoice{}, err
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invoices().UpdateInvoiceStatus(ctx, inv.ID, status); err != nil {
			return err
		}
		switch status {
		case domain.InvoicePaid:
			now := time.Now().UTC()
			return tx.Payments().UpdatePaymentStatus(ctx, inv.PaymentID, domain.PaymentPaid, &now)
		case domain.InvoiceCancelled:
			return tx.Payments().UpdatePaymentStatus(ctx, inv.PaymentID, domain.PaymentCancelled, nil)
		default:
			return tx.Payments().UpdatePaymentStatus(ctx, inv.PaymentID, domain.PaymentPending, nil)
		}
	})
	if err != nil {
		log.Error("failed to update invoice status", slog.Any("error", err))
		return domain.Invoice{}, err
	}

	log.Debug("invoice status updated",
		slog.String("invoice_id", inv.ID),
		slog.String("status", string(status)),
	)
	return s.Store.Invoices().GetInvoiceByID(ctx, inv.ID)
}

// Delete removes an invoice and its companion payment together.
func (s *InvoiceService) Delete(ctx context.Context, invoiceID, landlordID string) error {
	inv, err := s.ownedInvoice(ctx, invoiceID, landlordID)
	if err != nil {
		return err
	}

	// Invoice first; its payment_id foreign key references the payment.
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Invoices().DeleteInvoice(ctx, inv.ID); err != nil {
			return err
		}
		return tx.Payments().DeletePayment(ctx, inv.PaymentID)
	})
}

func (s *InvoiceService) List(ctx context.Context, landlordID string) ([]domain.Invoice, error) {
	return s.Store.Invoices().ListInvoicesByLandlord(ctx, landlordID)
}

// ListPayments returns the viewer's payment history. Landlords see every
// payment on their properties; tenants see their own payments except those
// backing an invoice the landlord kept private.
func (s *InvoiceService) ListPayments(ctx context.Context, viewerID string, role domain.Role) ([]domain.Payment, error) {
	if role == domain.RoleLandlord {
		return s.Store.Payments().ListPaymentsForLandlord(ctx, viewerID)
	}
	return s.Store.Payments().ListPaymentsForTenant(ctx, viewerID)
}

func (s *InvoiceService) ownedInvoice(ctx context.Context, invoiceID, landlordID string) (domain.Invoice, error) {
	inv, err := s.Store.Invoices().GetInvoiceByID(ctx, invoiceID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Invoice{}, ErrNotFound
		}
		return domain.Invoice{}, err
	}
	if inv.LandlordID != landlordID {
		return domain.Invoice{}, ErrForbidden
	}
	return inv, nil
}
