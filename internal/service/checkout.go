package service

import (
	"context"
	"log/slog"

	"github.com/candylab/sweetbot/core/logger"
	"github.com/candylab/sweetbot/core/telegram/state"
	"github.com/candylab/sweetbot/internal/models"
)

// Checkout conversation stages, advanced strictly in order. There is no
// backward transition: a user either finishes or abandons the dialog.
const (
	StageAwaitingName    = state.State("awaiting_name")
	StageAwaitingPhone   = state.State("awaiting_phone")
	StageAwaitingAddress = state.State("awaiting_address")
	StageAwaitingPayment = state.State("awaiting_payment")
)

// Draft keys accumulated in the session while the dialog runs.
const (
	draftName    = "name"
	draftPhone   = "phone"
	draftAddress = "address"
)

// Event tells the transport layer which prompt to send next.
type Event string

const (
	// EventIgnored means the input did not advance the dialog and no reply is due.
	EventIgnored Event = "ignored"
	// EventAskPhone asks the user to share their phone via a contact keyboard.
	EventAskPhone Event = "ask_phone"
	// EventAskAddress asks the user to type their delivery address.
	EventAskAddress Event = "ask_address"
	// EventAskPayment offers the payment method buttons.
	EventAskPayment Event = "ask_payment"
)

// OrderStore is the order persistence required by services.
type OrderStore interface {
	Create(ctx context.Context, o *models.Order) (int64, error)
	ByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status models.OrderStatus) (bool, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
}

// Checkout drives a user from "cart has items" to "order created". Session
// state lives in the injected manager; everything else goes through storage.
type Checkout struct {
	sessions    state.Manager
	products    ProductReader
	carts       CartStore
	orders      OrderStore
	defaultLang string
}

// NewCheckout constructs the checkout flow controller.
func NewCheckout(sessions state.Manager, products ProductReader, carts CartStore, orders OrderStore, defaultLang string) *Checkout {
	return &Checkout{
		sessions:    sessions,
		products:    products,
		carts:       carts,
		orders:      orders,
		defaultLang: defaultLang,
	}
}

// InProgress reports whether the user has an active checkout dialog.
func (s *Checkout) InProgress(userID int64) bool {
	return s.sessions.InProgress(userID)
}

// Stage returns the user's current dialog stage.
func (s *Checkout) Stage(userID int64) state.State {
	return s.sessions.GetState(userID)
}

// Start begins the dialog. The cart must exist and be non-empty, otherwise
// the call fails with ErrEmptyCart and the session stays untouched.
func (s *Checkout) Start(ctx context.Context, userID int64) error {
	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return err
	}
	if cart.IsEmpty() {
		return ErrEmptyCart
	}

	s.sessions.SetState(userID, StageAwaitingName)
	logger.Info(ctx, "service.checkout", "checkout.start",
		slog.Int64("user_id", userID),
		slog.String("stage", string(StageAwaitingName)),
	)
	return nil
}

// HandleText feeds a free-text message into the dialog. Name and address
// stages store the text verbatim, without validation. Text during the phone
// stage is ignored: only a contact share advances it.
func (s *Checkout) HandleText(ctx context.Context, userID int64, text string) (Event, error) {
	stage := s.sessions.GetState(userID)
	switch stage {
	case StageAwaitingName:
		s.sessions.SetData(userID, draftName, text)
		s.sessions.SetState(userID, StageAwaitingPhone)
		s.logStage(ctx, userID, StageAwaitingPhone)
		return EventAskPhone, nil

	case StageAwaitingAddress:
		s.sessions.SetData(userID, draftAddress, text)
		s.sessions.SetState(userID, StageAwaitingPayment)
		s.logStage(ctx, userID, StageAwaitingPayment)
		return EventAskPayment, nil
	}
	return EventIgnored, nil
}

// HandleContact feeds a shared contact into the dialog. Only the phone stage
// consumes it.
func (s *Checkout) HandleContact(ctx context.Context, userID int64, phone string) (Event, error) {
	if s.sessions.GetState(userID) != StageAwaitingPhone {
		return EventIgnored, nil
	}
	s.sessions.SetData(userID, draftPhone, phone)
	s.sessions.SetState(userID, StageAwaitingAddress)
	s.logStage(ctx, userID, StageAwaitingAddress)
	return EventAskAddress, nil
}

// Complete finalizes the dialog on a payment selection. The draft must hold
// a name and address and the cart must still be non-empty. On success the
// order is persisted with status new, the cart is deleted, and the session
// is cleared.
func (s *Checkout) Complete(ctx context.Context, userID int64, method models.PaymentMethod) (*models.Order, error) {
	sess := s.sessions.Get(userID)
	name := sess.Data[draftName]
	address := sess.Data[draftAddress]
	if name == "" || address == "" {
		return nil, ErrCheckoutNotStarted
	}

	cart, err := s.carts.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	lang := sess.Lang
	if lang == "" {
		lang = s.defaultLang
	}

	// Snapshot every line against the live catalog. Prices and titles are
	// captured now and never recomputed; vanished products are skipped.
	var items models.OrderItems
	for _, line := range cart.Items {
		p, err := s.products.ByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if p == nil {
			continue
		}
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Title:     p.Title.Resolve(lang, s.defaultLang),
			Price:     p.Price,
			Qty:       line.Qty,
			Options:   line.Options,
		})
	}

	order := &models.Order{
		UserID:        userID,
		Name:          name,
		Phone:         sess.Data[draftPhone],
		Address:       address,
		Items:         items,
		Total:         items.Total(),
		PaymentMethod: method,
		Status:        models.OrderStatusNew,
		Lang:          lang,
	}

	id, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	order.ID = id

	if err := s.carts.Delete(ctx, userID); err != nil {
		return nil, err
	}
	s.sessions.Clear(userID)

	logger.Info(ctx, "service.checkout", "checkout.complete",
		slog.Int64("user_id", userID),
		slog.Int64("order_id", id),
		slog.Int("items", len(items)),
		slog.Int64("total", order.Total),
		slog.String("payment", string(method)),
	)
	return order, nil
}

func (s *Checkout) logStage(ctx context.Context, userID int64, stage state.State) {
	logger.Debug(ctx, "service.checkout", "checkout.stage",
		slog.Int64("user_id", userID),
		slog.String("stage", string(stage)),
	)
}
