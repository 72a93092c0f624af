package order

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pizzeria/internal/auth"
	"pizzeria/internal/cart"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// stubRepo keeps at most one order in memory, like the handler stubs do.
type stubRepo struct {
	order       *Order
	createErr   error
	updateErr   error
	casMiss     bool
	createCalls int
	updateCalls int
}

func (s *stubRepo) Create(_ context.Context, o *Order) error {
	s.createCalls++
	if s.createErr != nil {
		return s.createErr
	}
	cp := *o
	s.order = &cp
	return nil
}

func (s *stubRepo) GetByID(_ context.Context, id string) (*Order, error) {
	if s.order == nil || s.order.ID != id {
		return nil, ErrNotFound
	}
	cp := *s.order
	return &cp, nil
}

func (s *stubRepo) ListByUser(_ context.Context, userID string, _, _ int) ([]Order, error) {
	if s.order != nil && s.order.UserID == userID {
		return []Order{*s.order}, nil
	}
	return nil, nil
}

func (s *stubRepo) ListAll(_ context.Context, _, _ int) ([]Order, error) {
	if s.order != nil {
		return []Order{*s.order}, nil
	}
	return nil, nil
}

func (s *stubRepo) UpdateStatus(_ context.Context, id string, from, to Status) (bool, error) {
	s.updateCalls++
	if s.updateErr != nil {
		return false, s.updateErr
	}
	if s.casMiss || s.order == nil || s.order.ID != id || s.order.Status != from {
		return false, nil
	}
	s.order.Status = to
	return true, nil
}

func snapshot() []cart.Line {
	return []cart.Line{
		{Key: cart.Key{ProductID: "pizza-1", Size: `Medium 12"`}, Name: "Buffalo Chicken Pizza", UnitPrice: d("16.95"), Quantity: 2},
		{Key: cart.Key{ProductID: "pasta-1"}, Name: "Homemade Meat Lasagna", UnitPrice: d("10.95"), Quantity: 1},
	}
}

func TestCheckout_HappyPath(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	o, err := svc.Checkout(context.Background(), "user-1", snapshot(), ContactInfo{Phone: "+1 555 010 0199", Notes: "ring twice"})
	require.NoError(t, err)

	assert.NotEmpty(t, o.ID)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, "user-1", o.UserID)
	assert.False(t, o.CreatedAt.IsZero())
	assert.True(t, o.TotalAmount.Equal(d("48.438")), "total=%s", o.TotalAmount)

	require.Len(t, o.Lines, 2)
	assert.Equal(t, "pizza-1", o.Lines[0].ProductID)
	assert.Equal(t, `Medium 12"`, o.Lines[0].Size)
	assert.Equal(t, 2, o.Lines[0].Quantity)
	assert.True(t, o.Lines[0].UnitPrice.Equal(d("16.95")))

	require.NotNil(t, repo.order)
	assert.Equal(t, o.ID, repo.order.ID)
}

func TestCheckout_LinePricesAreSnapshotCopies(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)

	lines := snapshot()
	o, err := svc.Checkout(context.Background(), "user-1", lines, ContactInfo{Phone: "555"})
	require.NoError(t, err)

	// mutating the snapshot afterwards must not reach the persisted order
	lines[0].UnitPrice = d("99.00")
	assert.True(t, repo.order.Lines[0].UnitPrice.Equal(d("16.95")))
	assert.True(t, o.TotalAmount.Equal(d("48.438")))
}

func TestCheckout_ValidationBeforePersistence(t *testing.T) {
	repo := &stubRepo{}
	svc := NewService(repo)
	ctx := context.Background()

	_, err := svc.Checkout(ctx, "user-1", nil, ContactInfo{Phone: "555"})
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = svc.Checkout(ctx, "user-1", snapshot(), ContactInfo{Phone: "   "})
	assert.ErrorIs(t, err, ErrPhoneRequired)

	_, err = svc.Checkout(ctx, "", snapshot(), ContactInfo{Phone: "555"})
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	assert.Zero(t, repo.createCalls, "repository must not be touched on validation failure")
}

func TestCheckout_RepoFailureSurfaces(t *testing.T) {
	boom := errors.New("connection reset")
	repo := &stubRepo{createErr: boom}
	svc := NewService(repo)

	_, err := svc.Checkout(context.Background(), "user-1", snapshot(), ContactInfo{Phone: "555"})
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, repo.order)
}

func TestTransition_ForwardStep(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", UserID: "u-1", Status: StatusPending}}
	svc := NewService(repo)

	o, err := svc.Transition(context.Background(), "o-1", StatusConfirmed, true)
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, o.Status)
	assert.Equal(t, StatusConfirmed, repo.order.Status)
}

func TestTransition_CancelFromNonTerminal(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", Status: StatusPreparing}}
	svc := NewService(repo)

	o, err := svc.Transition(context.Background(), "o-1", StatusCancelled, true)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
}

func TestTransition_IllegalMoveLeavesOrderAlone(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", Status: StatusPending}}
	svc := NewService(repo)

	_, err := svc.Transition(context.Background(), "o-1", StatusDelivered, true)

	var illegal *IllegalTransitionError
	require.ErrorAs(t, err, &illegal)
	assert.Equal(t, StatusPending, illegal.From)
	assert.Equal(t, StatusDelivered, illegal.To)
	assert.Equal(t, StatusPending, repo.order.Status)
	assert.Zero(t, repo.updateCalls, "no write on an illegal transition")
}

func TestTransition_TerminalIsFinal(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", Status: StatusDelivered}}
	svc := NewService(repo)

	_, err := svc.Transition(context.Background(), "o-1", StatusCancelled, true)

	var illegal *IllegalTransitionError
	assert.ErrorAs(t, err, &illegal)
	assert.Equal(t, StatusDelivered, repo.order.Status)
}

func TestTransition_LostRaceIsAConflict(t *testing.T) {
	repo := &conflictRepo{
		readStatus:   StatusPending,
		storedStatus: StatusConfirmed,
		id:           "o-1",
	}
	svc := NewService(repo)

	_, err := svc.Transition(context.Background(), "o-1", StatusConfirmed, true)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "o-1", conflict.OrderID)
	assert.Equal(t, StatusPending, conflict.Expected)
	assert.Equal(t, StatusConfirmed, conflict.Actual)
}

// conflictRepo serves the stale status on first read, then behaves like
// storage already moved on: the CAS write misses and a re-read shows the
// concurrent winner.
type conflictRepo struct {
	stubRepo
	id           string
	readStatus   Status
	storedStatus Status
	reads        int
}

func (r *conflictRepo) GetByID(_ context.Context, id string) (*Order, error) {
	if id != r.id {
		return nil, ErrNotFound
	}
	r.reads++
	status := r.readStatus
	if r.reads > 1 {
		status = r.storedStatus
	}
	return &Order{ID: r.id, Status: status}, nil
}

func (r *conflictRepo) UpdateStatus(_ context.Context, _ string, _, _ Status) (bool, error) {
	return false, nil
}

func TestTransition_RequiresAdmin(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", Status: StatusPending}}
	svc := NewService(repo)

	_, err := svc.Transition(context.Background(), "o-1", StatusConfirmed, false)
	assert.ErrorIs(t, err, auth.ErrAdminRequired)
	assert.Zero(t, repo.updateCalls)
}

func TestTransition_UnknownStatusRejected(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", Status: StatusPending}}
	svc := NewService(repo)

	_, err := svc.Transition(context.Background(), "o-1", Status("shipped"), true)
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestList_AdminSeesAll(t *testing.T) {
	repo := &stubRepo{order: &Order{ID: "o-1", UserID: "someone-else", Status: StatusPending}}
	svc := NewService(repo)
	ctx := context.Background()

	mine, err := svc.List(ctx, "user-1", false, 20, 0)
	require.NoError(t, err)
	assert.Empty(t, mine)

	all, err := svc.List(ctx, "user-1", true, 20, 0)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.List(ctx, "", false, 20, 0)
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)
}
