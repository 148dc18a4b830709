package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/QuantumCastro/L-Artisan/internal/catalog"
	"github.com/QuantumCastro/L-Artisan/internal/domain"
	"github.com/QuantumCastro/L-Artisan/internal/event"
	"github.com/QuantumCastro/L-Artisan/internal/repository"
	"github.com/QuantumCastro/L-Artisan/internal/scheduler"
	apperrors "github.com/QuantumCastro/L-Artisan/pkg/errors"
	"github.com/QuantumCastro/L-Artisan/pkg/logger"
	"github.com/QuantumCastro/L-Artisan/pkg/tracing"
	"github.com/QuantumCastro/L-Artisan/pkg/validator"
)

// Config holds the simulated processing delays. A zero delay applies the
// effect immediately.
type Config struct {
	AddToCartDelay time.Duration
	CheckoutDelay  time.Duration
}

// DefaultConfig returns the storefront's standard delays.
func DefaultConfig() Config {
	return Config{
		AddToCartDelay: 500 * time.Millisecond,
		CheckoutDelay:  750 * time.Millisecond,
	}
}

// Result is returned by operations that may refuse a transition without
// failing. Refusals carry Accepted=false and the unchanged view.
type Result struct {
	Accepted bool   `json:"accepted"`
	Ticket   string `json:"ticket,omitempty"`
	View     View   `json:"view"`
}

// StorefrontService owns shopper sessions and applies storefront events to
// them one at a time per session.
type StorefrontService struct {
	catalog  *catalog.Catalog
	repo     repository.SessionRepository
	sched    scheduler.Scheduler
	producer *event.Producer
	logger   *slog.Logger
	cfg      Config
	tracer   trace.Tracer
	locks    *sessionLocks
	tasks    *taskRegistry
	newID    func() string
}

// NewStorefrontService creates a new storefront service.
func NewStorefrontService(
	cat *catalog.Catalog,
	repo repository.SessionRepository,
	sched scheduler.Scheduler,
	producer *event.Producer,
	logger *slog.Logger,
	cfg Config,
) *StorefrontService {
	return &StorefrontService{
		catalog:  cat,
		repo:     repo,
		sched:    sched,
		producer: producer,
		logger:   logger,
		cfg:      cfg,
		tracer:   tracing.Tracer("storefront-service"),
		locks:    newSessionLocks(),
		tasks:    newTaskRegistry(),
		newID:    uuid.NewString,
	}
}

// Catalog returns the catalog the service sells from.
func (s *StorefrontService) Catalog() *catalog.Catalog {
	return s.catalog
}

func checkoutKey(id string) string {
	return "checkout:" + id
}

func (s *StorefrontService) start(ctx context.Context, op, sessionID string) (context.Context, trace.Span) {
	ctx = logger.WithSessionID(ctx, sessionID)
	return s.tracer.Start(ctx, "StorefrontService."+op, trace.WithAttributes(tracing.SessionAttr(sessionID)))
}

func finish(span trace.Span, err error) {
	tracing.RecordError(span, err)
	span.End()
}

// load fetches a session. Callers mutating it must hold its lock.
func (s *StorefrontService) load(ctx context.Context, id string) (*domain.Session, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.InvalidInput("session id is required")
	}
	sess, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *StorefrontService) save(ctx context.Context, sess *domain.Session) error {
	sess.Touch(s.sched.Now())
	if err := s.repo.Save(ctx, sess); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// mutate applies fn to a session under its lock and saves the result.
func (s *StorefrontService) mutate(ctx context.Context, id string, fn func(*domain.Session)) (View, error) {
	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	s.recoverTasks(ctx, sess)
	fn(sess)
	if err := s.save(ctx, sess); err != nil {
		return View{}, err
	}
	return BuildView(sess, s.catalog), nil
}

// ---------------------------------------------------------------------------
// Session lifecycle
// ---------------------------------------------------------------------------

// CreateSession starts a session with an empty cart.
func (s *StorefrontService) CreateSession(ctx context.Context, lang domain.Language) (v View, err error) {
	id := s.newID()
	ctx, span := s.start(ctx, "CreateSession", id)
	defer func() { finish(span, err) }()

	sess := domain.NewSession(id, lang, s.sched.Now())
	if err := s.repo.Save(ctx, sess); err != nil {
		return View{}, fmt.Errorf("save session: %w", err)
	}
	sessionsCreated.Inc()

	s.logger.InfoContext(ctx, "session created",
		slog.String("session_id", id),
		slog.String("language", string(sess.Language)),
	)
	return BuildView(sess, s.catalog), nil
}

// View returns the current view of a session.
func (s *StorefrontService) View(ctx context.Context, id string) (v View, err error) {
	ctx, span := s.start(ctx, "View", id)
	defer func() { finish(span, err) }()

	sess, err := s.load(ctx, id)
	if err != nil {
		return View{}, err
	}
	return BuildView(sess, s.catalog), nil
}

// EndSession cancels every pending effect of a session and deletes it.
func (s *StorefrontService) EndSession(ctx context.Context, id string) (err error) {
	ctx, span := s.start(ctx, "EndSession", id)
	defer func() { finish(span, err) }()

	unlock := s.locks.lock(id)
	defer unlock()

	if _, err := s.load(ctx, id); err != nil {
		return err
	}
	cancelled := s.tasks.cancelAll(id)
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	s.logger.InfoContext(ctx, "session ended",
		slog.String("session_id", id),
		slog.Int("cancelled_tasks", cancelled),
	)
	return nil
}

// ---------------------------------------------------------------------------
// Filters and language
// ---------------------------------------------------------------------------

// SelectLanguage switches the display language. Unsupported codes select the
// default language.
func (s *StorefrontService) SelectLanguage(ctx context.Context, id, code string) (v View, err error) {
	ctx, span := s.start(ctx, "SelectLanguage", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.SelectLanguage(code)
	})
}

// SelectCategory sets the active category. Unknown categories select all.
func (s *StorefrontService) SelectCategory(ctx context.Context, id, category string) (v View, err error) {
	ctx, span := s.start(ctx, "SelectCategory", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.SelectCategory(category)
	})
}

// SetSearchQuery stores the search text.
func (s *StorefrontService) SetSearchQuery(ctx context.Context, id, query string) (v View, err error) {
	ctx, span := s.start(ctx, "SetSearchQuery", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.SetQuery(query)
	})
}

// SetSearchOpen opens or closes the search panel.
func (s *StorefrontService) SetSearchOpen(ctx context.Context, id string, open bool) (v View, err error) {
	ctx, span := s.start(ctx, "SetSearchOpen", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.SetSearchOpen(open)
	})
}

// ResetFilters clears the category, the query and closes the search panel.
func (s *StorefrontService) ResetFilters(ctx context.Context, id string) (v View, err error) {
	ctx, span := s.start(ctx, "ResetFilters", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.ResetFilters()
	})
}

// ---------------------------------------------------------------------------
// Cart
// ---------------------------------------------------------------------------

// SetCartOpen opens or closes the cart drawer. Pending adds keep running.
func (s *StorefrontService) SetCartOpen(ctx context.Context, id string, open bool) (v View, err error) {
	ctx, span := s.start(ctx, "SetCartOpen", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		sess.SetCartOpen(open)
	})
}

// AddToCart queues an add of productID in size. A missing or unknown size is
// refused with Accepted=false. Accepted adds land after the configured delay.
func (s *StorefrontService) AddToCart(ctx context.Context, id string, productID int, size string) (res Result, err error) {
	ctx, span := s.start(ctx, "AddToCart", id)
	defer func() { finish(span, err) }()
	span.SetAttributes(attribute.Int("storefront.product_id", productID))

	product, ok := s.catalog.Get(productID)
	if !ok {
		return Result{}, apperrors.NotFound("product", strconv.Itoa(productID))
	}

	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return Result{}, err
	}
	s.recoverTasks(ctx, sess)

	ticket := s.newID()
	if _, ok := sess.RequestAdd(product, size, ticket, s.sched.Now()); !ok {
		addRequests.WithLabelValues(resultRejected).Inc()
		s.logger.DebugContext(ctx, "add to cart refused",
			slog.String("session_id", id),
			slog.Int("product_id", productID),
			slog.String("size", size),
		)
		return Result{Accepted: false, View: BuildView(sess, s.catalog)}, nil
	}
	addRequests.WithLabelValues(resultAccepted).Inc()

	if s.cfg.AddToCartDelay <= 0 {
		applied := sess.ApplyAdd(ticket)
		if err := s.save(ctx, sess); err != nil {
			return Result{}, err
		}
		cartLinesAdded.Add(float64(len(applied)))
		s.publishCartUpdated(ctx, sess, event.ReasonItemAdded)
		return Result{Accepted: true, Ticket: ticket, View: BuildView(sess, s.catalog)}, nil
	}

	if err := s.save(ctx, sess); err != nil {
		return Result{}, err
	}
	task := s.sched.Schedule(s.cfg.AddToCartDelay, func() { s.applyAdd(id, ticket) })
	s.tasks.add(id, ticket, task)

	s.logger.InfoContext(ctx, "add to cart accepted",
		slog.String("session_id", id),
		slog.Int("product_id", productID),
		slog.String("ticket", ticket),
	)
	return Result{Accepted: true, Ticket: ticket, View: BuildView(sess, s.catalog)}, nil
}

// applyAdd is the delayed half of AddToCart.
func (s *StorefrontService) applyAdd(sessionID, ticket string) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	// Scheduling and cancellation both happen under the session lock, so the
	// registry is authoritative once it is held.
	if !s.tasks.done(sessionID, ticket) {
		return
	}
	ctx := logger.WithSessionID(context.Background(), sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "dropping add for unavailable session",
			slog.String("session_id", sessionID),
			slog.String("ticket", ticket),
			slog.String("error", err.Error()),
		)
		return
	}

	applied := sess.ApplyAdd(ticket)
	if len(applied) == 0 {
		s.logger.DebugContext(ctx, "stale add ticket ignored",
			slog.String("session_id", sessionID),
			slog.String("ticket", ticket),
		)
		return
	}
	for _, p := range applied {
		if p.Ticket != ticket {
			s.tasks.cancel(sessionID, p.Ticket)
		}
	}

	if err := s.save(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to save session after add",
			slog.String("session_id", sessionID),
			slog.String("error", err.Error()),
		)
		return
	}
	cartLinesAdded.Add(float64(len(applied)))
	s.publishCartUpdated(ctx, sess, event.ReasonItemAdded)
}

// RemoveFromCart removes the line at index. Out-of-range indexes are a no-op
// reported with Accepted=false.
func (s *StorefrontService) RemoveFromCart(ctx context.Context, id string, index int) (res Result, err error) {
	ctx, span := s.start(ctx, "RemoveFromCart", id)
	defer func() { finish(span, err) }()

	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return Result{}, err
	}
	s.recoverTasks(ctx, sess)
	if !sess.RemoveFromCart(index) {
		return Result{Accepted: false, View: BuildView(sess, s.catalog)}, nil
	}
	if err := s.save(ctx, sess); err != nil {
		return Result{}, err
	}
	cartLinesRemoved.Inc()
	s.publishCartUpdated(ctx, sess, event.ReasonItemRemoved)

	return Result{Accepted: true, View: BuildView(sess, s.catalog)}, nil
}

// ---------------------------------------------------------------------------
// Checkout
// ---------------------------------------------------------------------------

// OpenCheckout opens the checkout drawer. With an empty cart the cart drawer
// opens instead and Accepted is false.
func (s *StorefrontService) OpenCheckout(ctx context.Context, id string) (res Result, err error) {
	ctx, span := s.start(ctx, "OpenCheckout", id)
	defer func() { finish(span, err) }()

	var opened bool
	v, err := s.mutate(ctx, id, func(sess *domain.Session) {
		opened = sess.OpenCheckout(s.newID(), s.sched.Now())
	})
	if err != nil {
		return Result{}, err
	}
	return Result{Accepted: opened, View: v}, nil
}

// UpdateCheckoutForm merges form edits while the checkout is idle. Edits with
// no open checkout, or after submission, are ignored.
func (s *StorefrontService) UpdateCheckoutForm(ctx context.Context, id string, patch domain.CheckoutFormPatch) (v View, err error) {
	ctx, span := s.start(ctx, "UpdateCheckoutForm", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		if sess.Checkout != nil {
			sess.Checkout.UpdateForm(patch)
		}
	})
}

// SubmitCheckout merges patch, when given, and submits the checkout. An
// incomplete form, a missing checkout or one already submitted is refused
// with Accepted=false. An accepted checkout completes after the configured
// delay.
func (s *StorefrontService) SubmitCheckout(ctx context.Context, id string, patch *domain.CheckoutFormPatch) (res Result, err error) {
	ctx, span := s.start(ctx, "SubmitCheckout", id)
	defer func() { finish(span, err) }()

	unlock := s.locks.lock(id)
	defer unlock()

	sess, err := s.load(ctx, id)
	if err != nil {
		return Result{}, err
	}
	s.recoverTasks(ctx, sess)

	c := sess.Checkout
	if c == nil || c.Status != domain.CheckoutIdle {
		checkoutSubmissions.WithLabelValues(resultIgnored).Inc()
		return Result{Accepted: false, View: BuildView(sess, s.catalog)}, nil
	}

	if patch != nil {
		c.UpdateForm(*patch)
	}
	if !sess.SubmitCheckout(s.sched.Now()) {
		checkoutSubmissions.WithLabelValues(resultRejected).Inc()
		if err := s.save(ctx, sess); err != nil {
			return Result{}, err
		}
		return Result{Accepted: false, View: BuildView(sess, s.catalog)}, nil
	}
	checkoutSubmissions.WithLabelValues(resultAccepted).Inc()
	span.SetAttributes(attribute.String("storefront.checkout_id", c.ID))

	if s.cfg.CheckoutDelay <= 0 {
		receipt, _ := sess.CompleteCheckout(c.ID, s.sched.Now())
		if err := s.save(ctx, sess); err != nil {
			return Result{}, err
		}
		s.afterCompletion(ctx, sess, receipt)
		return Result{Accepted: true, View: BuildView(sess, s.catalog)}, nil
	}

	if err := s.save(ctx, sess); err != nil {
		return Result{}, err
	}
	s.scheduleCompletion(id, c.ID, s.cfg.CheckoutDelay)

	s.logger.InfoContext(ctx, "checkout submitted",
		slog.String("session_id", id),
		slog.String("checkout_id", c.ID),
		slog.Int64("total", c.Total),
	)
	return Result{Accepted: true, View: BuildView(sess, s.catalog)}, nil
}

func (s *StorefrontService) scheduleCompletion(sessionID, checkoutID string, delay time.Duration) {
	task := s.sched.Schedule(delay, func() { s.completeCheckout(sessionID, checkoutID) })
	s.tasks.add(sessionID, checkoutKey(checkoutID), task)
}

// recoverTasks reconciles a session with the tasks registered for it. A
// Redis-backed session can outlive the process that scheduled its delayed
// effects: pending adds without a task are dropped and a submitted checkout
// without one is scheduled again. Callers hold the session lock.
func (s *StorefrontService) recoverTasks(ctx context.Context, sess *domain.Session) {
	dropped := sess.DropPendingAdds(func(ticket string) bool {
		return s.tasks.has(sess.ID, ticket)
	})
	if len(dropped) > 0 {
		s.logger.WarnContext(ctx, "dropped pending adds with no scheduled task",
			slog.String("session_id", sess.ID),
			slog.Any("tickets", dropped),
		)
	}

	c := sess.Checkout
	if c == nil || c.Status != domain.CheckoutSubmitting || s.tasks.has(sess.ID, checkoutKey(c.ID)) {
		return
	}
	s.scheduleCompletion(sess.ID, c.ID, s.cfg.CheckoutDelay)
	s.logger.WarnContext(ctx, "rescheduled checkout completion with no scheduled task",
		slog.String("session_id", sess.ID),
		slog.String("checkout_id", c.ID),
	)
}

// completeCheckout is the delayed half of SubmitCheckout.
func (s *StorefrontService) completeCheckout(sessionID, checkoutID string) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	if !s.tasks.done(sessionID, checkoutKey(checkoutID)) {
		return
	}
	ctx := logger.WithSessionID(context.Background(), sessionID)

	sess, err := s.load(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "dropping checkout completion for unavailable session",
			slog.String("session_id", sessionID),
			slog.String("checkout_id", checkoutID),
			slog.String("error", err.Error()),
		)
		return
	}

	receipt, ok := sess.CompleteCheckout(checkoutID, s.sched.Now())
	if !ok {
		s.logger.DebugContext(ctx, "stale checkout completion ignored",
			slog.String("session_id", sessionID),
			slog.String("checkout_id", checkoutID),
		)
		return
	}
	if err := s.save(ctx, sess); err != nil {
		s.logger.ErrorContext(ctx, "failed to save completed checkout",
			slog.String("session_id", sessionID),
			slog.String("checkout_id", checkoutID),
			slog.String("error", err.Error()),
		)
		return
	}
	s.afterCompletion(ctx, sess, receipt)
}

func (s *StorefrontService) afterCompletion(ctx context.Context, sess *domain.Session, receipt *domain.Receipt) {
	checkoutsCompleted.Inc()
	s.logger.InfoContext(ctx, "checkout completed",
		slog.String("session_id", sess.ID),
		slog.String("checkout_id", receipt.CheckoutID),
		slog.String("reference", receipt.Reference),
		slog.Int64("total", receipt.Total),
	)

	if err := s.producer.PublishCheckoutCompleted(ctx, sess.ID, receipt); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish checkout.completed event",
			slog.String("session_id", sess.ID),
			slog.String("error", err.Error()),
		)
	}
	s.publishCartUpdated(ctx, sess, event.ReasonCleared)
}

// CloseCheckout discards the checkout and cancels a pending completion. The
// cart is untouched.
func (s *StorefrontService) CloseCheckout(ctx context.Context, id string) (v View, err error) {
	ctx, span := s.start(ctx, "CloseCheckout", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		s.cancelCheckout(ctx, id, sess.CloseCheckout())
	})
}

// BackToCart closes the checkout like CloseCheckout and re-opens the cart
// drawer.
func (s *StorefrontService) BackToCart(ctx context.Context, id string) (v View, err error) {
	ctx, span := s.start(ctx, "BackToCart", id)
	defer func() { finish(span, err) }()

	return s.mutate(ctx, id, func(sess *domain.Session) {
		s.cancelCheckout(ctx, id, sess.BackToCart())
	})
}

func (s *StorefrontService) cancelCheckout(ctx context.Context, sessionID string, c *domain.Checkout) {
	if c == nil {
		return
	}
	if s.tasks.cancel(sessionID, checkoutKey(c.ID)) {
		s.logger.InfoContext(ctx, "pending checkout cancelled",
			slog.String("session_id", sessionID),
			slog.String("checkout_id", c.ID),
		)
	}
}

// ---------------------------------------------------------------------------
// Catalog, search and newsletter
// ---------------------------------------------------------------------------

// Product resolves an id or slug to a localized product.
func (s *StorefrontService) Product(idOrSlug string, lang domain.Language) (domain.LocalizedProduct, error) {
	p, ok := s.catalog.Lookup(idOrSlug)
	if !ok {
		return domain.LocalizedProduct{}, apperrors.NotFound("product", idOrSlug)
	}
	return p.Localize(lang), nil
}

// Products returns the whole catalog localized to lang.
func (s *StorefrontService) Products(lang domain.Language) []domain.LocalizedProduct {
	all := s.catalog.All()
	out := make([]domain.LocalizedProduct, len(all))
	for i, p := range all {
		out[i] = p.Localize(lang)
	}
	return out
}

// SubscribeNewsletter validates email, announces the signup and returns the
// localized thanks line. Nothing is stored.
func (s *StorefrontService) SubscribeNewsletter(ctx context.Context, email string, lang domain.Language) (string, error) {
	email = strings.TrimSpace(email)
	if err := validator.Var(email, "required,email"); err != nil {
		return "", apperrors.InvalidInput("a valid email is required")
	}

	if err := s.producer.PublishNewsletterSubscribed(ctx, email, lang); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish newsletter.subscribed event",
			slog.String("error", err.Error()),
		)
	}
	return newsletterThanks(lang), nil
}

func (s *StorefrontService) publishCartUpdated(ctx context.Context, sess *domain.Session, reason string) {
	if err := s.producer.PublishCartUpdated(ctx, sess, reason); err != nil {
		s.logger.ErrorContext(ctx, "failed to publish cart.updated event",
			slog.String("session_id", sess.ID),
			slog.String("error", err.Error()),
		)
	}
}
