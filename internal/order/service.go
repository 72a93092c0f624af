package order

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
	"pizzeria/internal/pricing"
)

// Service turns cart snapshots into persisted orders and walks orders
// through their lifecycle.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service { return &Service{repo: repo} }

// ContactInfo is what checkout collects besides the cart itself.
type ContactInfo struct {
	Phone           string
	DeliveryAddress string
	Notes           string
}

// Checkout builds a pending order from the session's cart snapshot and
// persists it atomically. Unit prices are copied from the snapshot, never
// re-read from the catalog, so a concurrent menu change cannot alter an
// order in flight. Validation happens before the repository is touched; on
// any failure the caller's cart must stay as it was, so clearing it is the
// caller's job and only after success.
func (s *Service) Checkout(ctx context.Context, userID string, lines []cart.Line, contact ContactInfo) (*Order, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}
	if len(lines) == 0 {
		return nil, ErrEmptyCart
	}
	if strings.TrimSpace(contact.Phone) == "" {
		return nil, ErrPhoneRequired
	}

	now := time.Now().UTC()
	o := &Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Phone:           contact.Phone,
		DeliveryAddress: contact.DeliveryAddress,
		Notes:           contact.Notes,
		Status:          StatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	pl := make([]pricing.Line, 0, len(lines))
	for _, l := range lines {
		o.Lines = append(o.Lines, Line{
			ID:        uuid.NewString(),
			OrderID:   o.ID,
			ProductID: l.ProductID,
			Size:      l.Size,
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
		})
		pl = append(pl, pricing.Line{UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	o.TotalAmount = pricing.Calculate(pl).Total

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, fmt.Errorf("persist order: %w", err)
	}
	return o, nil
}

// Transition moves an order to the requested status. The write is
// optimistic: it only lands if the status is still the one read here, and a
// miss surfaces as a ConflictError carrying what storage holds now. The
// HTTP layer gates admins, but the flag is re-checked defensively.
func (s *Service) Transition(ctx context.Context, orderID string, to Status, asAdmin bool) (*Order, error) {
	if !asAdmin {
		return nil, auth.ErrAdminRequired
	}
	if !to.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, to)
	}

	o, err := s.repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(o.Status, to) {
		return nil, &IllegalTransitionError{From: o.Status, To: to}
	}

	ok, err := s.repo.UpdateStatus(ctx, orderID, o.Status, to)
	if err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	if !ok {
		cur, err := s.repo.GetByID(ctx, orderID)
		if err != nil {
			return nil, err
		}
		return nil, &ConflictError{OrderID: orderID, Expected: o.Status, Actual: cur.Status}
	}

	o.Status = to
	o.UpdatedAt = time.Now().UTC()
	return o, nil
}

// List returns the caller's orders newest first, or every order for admins.
func (s *Service) List(ctx context.Context, userID string, isAdmin bool, limit, offset int) ([]Order, error) {
	if userID == "" {
		return nil, auth.ErrUnauthenticated
	}
	if isAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByUser(ctx, userID, limit, offset)
}
