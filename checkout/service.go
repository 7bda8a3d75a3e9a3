package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"storefront/events"
	"storefront/mercadopago"
	"storefront/models"
	"storefront/repository"
)

var ErrEmptyCart = errors.New("cart is empty")

const (
	currencyID          = "BRL"
	statementDescriptor = "LOJA PROFS"
	// The provider requires a payer email even for test checkouts.
	placeholderPayerEmail = "test_user_123456@test.com"
)

// Service runs the checkout flow: price the cart, persist the order with its
// line items, create a payment preference and hand back the redirect URL.
type Service struct {
	repo      repository.OrderRepository
	prefs     mercadopago.PreferenceCreator
	publisher events.Publisher
	siteURL   string
}

func NewService(repo repository.OrderRepository, prefs mercadopago.PreferenceCreator, siteURL string) *Service {
	return &Service{
		repo:    repo,
		prefs:   prefs,
		siteURL: siteURL,
	}
}

func (s *Service) SetPublisher(p events.Publisher) {
	s.publisher = p
}

// CreateSession validates the cart, writes the order and returns the provider
// redirect URL. Line prices are taken at face value from the submitted cart;
// they are not re-checked against the catalog.
func (s *Service) CreateSession(ctx context.Context, userID uint, userName string, items []models.CartItem) (string, error) {
	if len(items) == 0 {
		return "", ErrEmptyCart
	}

	total := 0.0
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		total += item.Price
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ID,
			Title:     item.Title,
			Price:     item.Price,
		})
	}

	order := &models.Order{
		UserID: userID,
		Total:  total,
		Status: models.OrderStatusPending,
		Items:  orderItems,
	}
	if err := s.repo.CreateWithItems(ctx, order); err != nil {
		return "", fmt.Errorf("save order: %w", err)
	}

	pref, err := s.prefs.CreatePreference(ctx, s.buildPreference(order.ID, userName, items))
	if err != nil {
		// The order row already exists; mark it failed instead of leaving a
		// pending order with no payment session.
		if updErr := s.repo.UpdateStatus(ctx, order.ID, models.OrderStatusFailed); updErr != nil {
			log.Printf("failed to mark order %d as failed: %v", order.ID, updErr)
		}
		return "", err
	}

	if s.publisher != nil {
		go s.publishOrderCreated(order)
	}

	return pref.InitPoint, nil
}

func (s *Service) buildPreference(orderID uint, userName string, items []models.CartItem) mercadopago.PreferenceRequest {
	prefItems := make([]mercadopago.Item, 0, len(items))
	for _, item := range items {
		prefItems = append(prefItems, mercadopago.Item{
			ID:         strconv.FormatUint(uint64(item.ID), 10),
			Title:      item.Title,
			Quantity:   1,
			UnitPrice:  item.Price,
			CurrencyID: currencyID,
			PictureURL: item.ImageURL,
		})
	}

	return mercadopago.PreferenceRequest{
		Items: prefItems,
		Payer: mercadopago.Payer{
			Name:  userName,
			Email: placeholderPayerEmail,
		},
		BackURLs: mercadopago.BackURLs{
			Success: s.siteURL + "/sucesso.html",
			Failure: s.siteURL + "/index.html",
			Pending: s.siteURL + "/meus-pedidos.html",
		},
		AutoReturn:          "approved",
		ExternalReference:   strconv.FormatUint(uint64(orderID), 10),
		StatementDescriptor: statementDescriptor,
	}
}

func (s *Service) publishOrderCreated(order *models.Order) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	evt := map[string]any{
		"orderId":   order.ID,
		"userId":    order.UserID,
		"total":     order.Total,
		"createdAt": order.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, "order.created", evt); err != nil {
		log.Printf("failed to publish order.created: %v", err)
	}
}
