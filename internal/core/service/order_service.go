package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lordhost/storefront-client/internal/core/domain"
	"github.com/lordhost/storefront-client/internal/core/ports"
)

// OrderController runs the order dialog state machine:
//
//	Idle -> Validating -> Submitting -> Succeeded | Failed
//
// At most one submission is in flight per controller.
type OrderController struct {
	gateway  ports.ProvisioningGateway
	session  ports.SessionReader
	validate *validator.Validate
	log      zerolog.Logger
	newKey   func() string

	mu      sync.Mutex
	state   domain.SubmissionState
	draft   *domain.OrderDraft
	result  *domain.ProvisioningResult
	message string
	idemKey string
}

// NewOrderController builds a controller. session may be nil, in which case
// every order is submitted anonymously.
func NewOrderController(gateway ports.ProvisioningGateway, session ports.SessionReader, log zerolog.Logger) *OrderController {
	return &OrderController{
		gateway:  gateway,
		session:  session,
		validate: newDraftValidator(),
		log:      log,
		newKey:   uuid.NewString,
		state:    domain.StateIdle,
	}
}

func newDraftValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Submit validates draft and sends it to the provisioning endpoint. A call made
// while another submission is outstanding fails with domain.ErrBusy and leaves
// the outstanding one untouched.
func (c *OrderController) Submit(ctx context.Context, draft domain.OrderDraft) (*domain.ProvisioningResult, error) {
	c.mu.Lock()
	if c.state == domain.StateSubmitting {
		c.mu.Unlock()
		return nil, domain.ErrBusy
	}
	prev := c.state
	c.setState(domain.StateValidating)

	if verr := c.validateDraft(&draft); verr != nil {
		c.draft = &draft
		c.result = nil
		c.message = verr.Error()
		c.setState(domain.StateIdle)
		c.mu.Unlock()
		c.log.Debug().Strs("fields", verr.Fields).Msg("order draft rejected")
		return nil, verr
	}

	draft.Slots = ClampSlots(draft.Plan, draft.Slots)
	draft.Days = ClampDays(draft.Days)
	total := ComputeTotal(draft.Plan, draft.Slots, draft.Days)

	// The key survives only an identical retry of a failed attempt; any other
	// submission is a new order.
	retry := prev == domain.StateFailed && c.draft != nil && *c.draft == draft
	if c.idemKey == "" || !retry {
		c.idemKey = c.newKey()
	}
	key := c.idemKey
	c.draft = &draft
	c.result = nil
	c.message = ""
	c.setState(domain.StateSubmitting)
	c.mu.Unlock()

	req := ports.CreateOrderRequest{
		CustomerName:  draft.CustomerName,
		CustomerEmail: draft.CustomerEmail,
		CustomerPhone: draft.CustomerPhone,
		PlanType:      string(draft.Plan.Name),
		Slots:         draft.Slots,
		Days:          draft.Days,
		TotalPrice:    total,
		ServerName:    draft.ServerName,
		GameType:      string(draft.GameType),
		UserID:        c.userID(),
	}

	resp, err := c.gateway.CreateOrder(ctx, req, key)
	return c.finish(req, resp, err)
}

func (c *OrderController) finish(req ports.CreateOrderRequest, resp *ports.CreateOrderResponse, err error) (*domain.ProvisioningResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.message = domain.MsgSubmissionFailed
		c.setState(domain.StateFailed)
		c.log.Error().Err(err).Str("plan", req.PlanType).Msg("order submission failed")
		return nil, &domain.SubmissionError{Message: c.message, Err: err}
	}

	if !isSuccessStatus(resp.StatusCode) || !resp.Success || resp.Server == nil {
		c.message = domain.MessageOr(resp.Error, domain.MsgSubmissionFailed)
		c.setState(domain.StateFailed)
		c.log.Warn().
			Int("status_code", resp.StatusCode).
			Str("reason", resp.Error).
			Str("plan", req.PlanType).
			Msg("order rejected")
		return nil, &domain.SubmissionError{Message: c.message, StatusCode: resp.StatusCode}
	}

	result := *resp.Server
	c.result = &result
	c.setState(domain.StateSucceeded)
	c.log.Info().
		Str("plan", req.PlanType).
		Int("slots", req.Slots).
		Int("days", req.Days).
		Int("total_price", req.TotalPrice).
		Str("server", result.Address()).
		Msg("order provisioned")

	out := result
	return &out, nil
}

// Reset returns to Idle and forgets the draft, the result and the idempotency
// key. It is a no-op while a submission is outstanding so the attempt's outcome
// is not lost.
func (c *OrderController) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == domain.StateSubmitting {
		c.log.Warn().Msg("reset ignored while submitting")
		return
	}
	c.state = domain.StateIdle
	c.draft = nil
	c.result = nil
	c.message = ""
	c.idemKey = ""
}

// Snapshot returns a copy of the controller state.
func (c *OrderController) Snapshot() ports.SubmissionSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := ports.SubmissionSnapshot{State: c.state, Message: c.message}
	if c.draft != nil {
		d := *c.draft
		snap.Draft = &d
	}
	if c.result != nil {
		r := *c.result
		snap.Result = &r
	}
	return snap
}

// Prefill returns contact fields from the signed-in user, or zero values for
// anonymous visitors.
func (c *OrderController) Prefill() ports.DraftContact {
	if c.session == nil {
		return ports.DraftContact{}
	}
	s, ok := c.session.Current()
	if !ok {
		return ports.DraftContact{}
	}
	return ports.DraftContact{
		CustomerName:  s.User.FullName,
		CustomerEmail: s.User.Email,
		CustomerPhone: s.User.Phone,
	}
}

// Quote prices slots and days for plan using the same bounds Submit applies.
func (c *OrderController) Quote(plan domain.Plan, slots, days int) ports.LineItems {
	return LineItems(plan, ClampSlots(plan, slots), ClampDays(days))
}

// validateDraft checks required fields and normalises plan and game type in
// place. The caller holds c.mu.
func (c *OrderController) validateDraft(draft *domain.OrderDraft) *domain.ValidationError {
	var fields []string

	if err := c.validate.Struct(draft); err != nil {
		var ve validator.ValidationErrors
		if !errors.As(err, &ve) {
			return &domain.ValidationError{Fields: []string{err.Error()}}
		}
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
	}

	plan, err := domain.LookupPlan(string(draft.Plan.Name))
	if err != nil {
		fields = append(fields, "plan")
	} else {
		draft.Plan = plan
	}

	if draft.GameType == "" {
		draft.GameType = domain.DefaultGameType
	}
	gt, ok := domain.ParseGameType(string(draft.GameType))
	if !ok {
		fields = append(fields, "game_type")
	} else {
		draft.GameType = gt
	}

	if len(fields) > 0 {
		return &domain.ValidationError{Fields: fields}
	}
	return nil
}

func (c *OrderController) userID() *int {
	if c.session == nil {
		return nil
	}
	s, ok := c.session.Current()
	if !ok {
		return nil
	}
	id := s.User.ID
	return &id
}

// setState moves to next, logging transitions the table does not allow.
// The caller holds c.mu.
func (c *OrderController) setState(next domain.SubmissionState) {
	if !c.state.CanTransitionTo(next) {
		c.log.Warn().
			Str("from", string(c.state)).
			Str("to", string(next)).
			Msg(domain.ErrInvalidTransition.Error())
	}
	c.state = next
}
