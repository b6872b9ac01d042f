package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/storefront-order-service/internal/payment"
	"github.com/segmentio/kafka-go"
)

const (
	baseURL = "http://localhost:5000/api/orders/"
	topic   = "payments"
)

type CartItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	Image    string  `json:"image,omitempty"`
}

type CreateOrderRequest struct {
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	PostalCode     string     `json:"postalCode"`
	ShippingOption string     `json:"shippingOption"`
	CartItems      []CartItem `json:"cartItems"`
}

type PaymentEvent struct {
	TxRef         string `json:"tx_ref"`
	Status        string `json:"status"`
	PaymentMethod string `json:"payment_method,omitempty"`
}

var menu = []CartItem{
	{ID: "doro-wat", Name: "Doro Wat", Price: 12.5, Image: "/images/doro-wat.jpg"},
	{ID: "kitfo", Name: "Kitfo", Price: 14},
	{ID: "shiro", Name: "Shiro", Price: 7.99},
	{ID: "injera", Name: "Injera", Price: 1.25},
	{ID: "buna", Name: "Buna", Price: 2.5},
}

func randomString(n int) string {
	letters := []rune("abcdefghijklmnopqrstuvwxyz")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomOrder() CreateOrderRequest {
	items := make([]CartItem, 0, 3)
	for _, i := range rand.Perm(len(menu))[:1+rand.Intn(3)] {
		item := menu[i]
		item.Quantity = 1 + rand.Intn(4)
		items = append(items, item)
	}

	shipping := "standard"
	if rand.Intn(3) == 0 {
		shipping = "express"
	}

	return CreateOrderRequest{
		FullName:       "Test " + randomString(6),
		Email:          fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		Phone:          fmt.Sprintf("+2519%08d", rand.Intn(99999999)),
		Address:        fmt.Sprintf("Street %d", rand.Intn(100)),
		City:           "Addis Ababa",
		PostalCode:     fmt.Sprintf("%05d", rand.Intn(99999)),
		ShippingOption: shipping,
		CartItems:      items,
	}
}

func createOrder(ctx context.Context, order CreateOrderRequest) (string, error) {
	data, err := json.Marshal(order)
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"create", bytes.NewReader(data))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status %s", resp.Status)
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// simulateHandoff проходит путь покупателя: подтверждение, pay now, окно провайдера,
// иногда закрытие окна и повторная попытка.
func simulateHandoff(orderID string) (*payment.Handoff, error) {
	h := payment.NewHandoff(orderID)
	for _, e := range []payment.Event{payment.EventConfirm, payment.EventPayNow, payment.EventOpenProvider} {
		if err := h.Fire(e); err != nil {
			return nil, err
		}
	}
	for rand.Intn(3) == 0 {
		if err := h.Fire(payment.EventClose); err != nil {
			return nil, err
		}
		if err := h.Fire(payment.EventRetry); err != nil {
			return nil, err
		}
		if err := h.Fire(payment.EventOpenProvider); err != nil {
			return nil, err
		}
	}
	if rand.Intn(5) == 0 {
		// покупатель ушёл, заказ остаётся неоплаченным
		return h, h.Fire(payment.EventClose)
	}
	return h, h.Fire(payment.EventSuccess)
}

func main() {
	writer := &kafka.Writer{
		Addr:                   kafka.TCP("localhost:9092"),
		Topic:                  topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			orderID, err := createOrder(ctx, generateRandomOrder())
			if err != nil {
				log.Println("failed to create order:", err)
				continue
			}

			h, err := simulateHandoff(orderID)
			if err != nil {
				log.Println("handoff failed:", err)
				continue
			}
			if !h.Done() {
				log.Println("order abandoned", orderID, "attempts", h.Attempts())
				continue
			}

			data, _ := json.Marshal(PaymentEvent{TxRef: orderID, Status: "success", PaymentMethod: "chapa"})
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(orderID), Value: data}); err != nil {
				log.Println("failed to publish payment:", err)
				continue
			}
			log.Println("order paid", orderID, "attempts", h.Attempts())
		case <-ctx.Done():
			return
		}
	}
}
