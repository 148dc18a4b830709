package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/QuantumCastro/L-Artisan/internal/domain"
	pkgkafka "github.com/QuantumCastro/L-Artisan/pkg/kafka"
	"github.com/QuantumCastro/L-Artisan/pkg/logger"
)

// Kafka topics for storefront domain events.
var (
	TopicCartUpdated          = pkgkafka.Topic("cart", "updated")
	TopicCheckoutCompleted    = pkgkafka.Topic("checkout", "completed")
	TopicNewsletterSubscribed = pkgkafka.Topic("newsletter", "subscribed")
)

// Aggregate type constants.
const (
	AggregateTypeSession    = "session"
	AggregateTypeNewsletter = "newsletter"
)

// SourceStorefront identifies events originating from the storefront service.
const SourceStorefront = "storefront-service"

// Cart change reasons carried by cart.updated.
const (
	ReasonItemAdded   = "item_added"
	ReasonItemRemoved = "item_removed"
	ReasonCleared     = "cleared"
)

// CartItemData is the line payload within cart and checkout events.
type CartItemData struct {
	ProductID int    `json:"product_id"`
	Slug      string `json:"slug"`
	Name      string `json:"name"`
	Size      string `json:"size"`
	Price     int64  `json:"price"`
}

// CartUpdatedData is the payload for a cart.updated event.
type CartUpdatedData struct {
	SessionID string         `json:"session_id"`
	Reason    string         `json:"reason"`
	Items     []CartItemData `json:"items"`
	ItemCount int            `json:"item_count"`
	Total     int64          `json:"total"`
	Currency  string         `json:"currency"`
}

// CheckoutCompletedData is the payload for a checkout.completed event.
type CheckoutCompletedData struct {
	SessionID  string         `json:"session_id"`
	CheckoutID string         `json:"checkout_id"`
	Reference  string         `json:"reference"`
	Items      []CartItemData `json:"items"`
	Total      int64          `json:"total"`
	Currency   string         `json:"currency"`
	Email      string         `json:"email"`
}

// NewsletterSubscribedData is the payload for a newsletter.subscribed event.
type NewsletterSubscribedData struct {
	Email    string `json:"email"`
	Language string `json:"language"`
}

const currency = "USD"

// Producer publishes storefront domain events.
type Producer struct {
	publisher pkgkafka.Publisher
	timeout   time.Duration
	logger    *slog.Logger
}

// NewProducer creates a new event producer. A nil publisher discards events.
func NewProducer(publisher pkgkafka.Publisher, timeout time.Duration, logger *slog.Logger) *Producer {
	if publisher == nil {
		publisher = nopPublisher{}
	}
	return &Producer{
		publisher: publisher,
		timeout:   timeout,
		logger:    logger,
	}
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, string, *pkgkafka.Event) error { return nil }

func itemData(items []domain.CartItem) []CartItemData {
	out := make([]CartItemData, len(items))
	for i, item := range items {
		out[i] = CartItemData{
			ProductID: item.Product.ID,
			Slug:      item.Product.Slug,
			Name:      item.Product.Name.EN,
			Size:      item.SelectedSize,
			Price:     item.Product.Price,
		}
	}
	return out
}

// PublishCartUpdated publishes a cart.updated event.
func (p *Producer) PublishCartUpdated(ctx context.Context, session *domain.Session, reason string) error {
	data := CartUpdatedData{
		SessionID: session.ID,
		Reason:    reason,
		Items:     itemData(session.Cart.Items),
		ItemCount: session.Cart.Count(),
		Total:     session.Cart.Total(),
		Currency:  currency,
	}
	return p.publish(ctx, TopicCartUpdated, session.ID, AggregateTypeSession, data)
}

// PublishCheckoutCompleted publishes a checkout.completed event.
func (p *Producer) PublishCheckoutCompleted(ctx context.Context, sessionID string, receipt *domain.Receipt) error {
	data := CheckoutCompletedData{
		SessionID:  sessionID,
		CheckoutID: receipt.CheckoutID,
		Reference:  receipt.Reference,
		Items:      itemData(receipt.Items),
		Total:      receipt.Total,
		Currency:   currency,
		Email:      receipt.Email,
	}
	return p.publish(ctx, TopicCheckoutCompleted, sessionID, AggregateTypeSession, data)
}

// PublishNewsletterSubscribed publishes a newsletter.subscribed event.
func (p *Producer) PublishNewsletterSubscribed(ctx context.Context, email string, lang domain.Language) error {
	data := NewsletterSubscribedData{Email: email, Language: string(lang)}
	return p.publish(ctx, TopicNewsletterSubscribed, email, AggregateTypeNewsletter, data)
}

func (p *Producer) publish(ctx context.Context, topic, aggregateID, aggregateType string, data any) error {
	evt, err := pkgkafka.NewEvent(topic, aggregateID, aggregateType, SourceStorefront, data)
	if err != nil {
		return fmt.Errorf("create %s event: %w", topic, err)
	}
	if id := logger.CorrelationIDFromContext(ctx); id != "" {
		evt.WithCorrelationID(id)
	}
	if id := logger.SessionIDFromContext(ctx); id != "" {
		evt.WithMetadata("session_id", id)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	if err := p.publisher.Publish(ctx, topic, evt); err != nil {
		return fmt.Errorf("publish %s event: %w", topic, err)
	}

	p.logger.DebugContext(ctx, "published event",
		slog.String("topic", topic),
		slog.String("event_id", evt.EventID),
		slog.String("aggregate_id", aggregateID),
	)
	return nil
}
