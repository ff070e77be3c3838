package push

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Outcome - результат доставки на один токен
type Outcome string

const (
	OutcomeDelivered    Outcome = "delivered"
	OutcomeInvalidToken Outcome = "invalid_token"
	OutcomeTransient    Outcome = "transient_failure"
)

// Payload - содержимое push-сообщения
type Payload struct {
	Title string            `json:"title"`
	Body  string            `json:"body"`
	Data  map[string]string `json:"data,omitempty"`
}

// Result - исход отправки для конкретного токена
type Result struct {
	Token   string  `json:"token"`
	Outcome Outcome `json:"outcome"`
	Error   string  `json:"error,omitempty"`
}

// Sender - интерфейс push-шлюза: пакетная отправка с исходом на каждый токен
type Sender interface {
	SendBatch(ctx context.Context, tokens []string, payload Payload) ([]Result, error)
}

// HTTPSender отправляет батчи во внешний push-шлюз по HTTP
type HTTPSender struct {
	gatewayURL string
	secret     string
	httpClient *http.Client
	logger     *logrus.Logger
}

// NewHTTPSender создает новый HTTPSender
func NewHTTPSender(gatewayURL, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPSender {
	return &HTTPSender{
		gatewayURL: gatewayURL,
		secret:     secret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

type gatewayRequest struct {
	Tokens  []string `json:"tokens"`
	Payload Payload  `json:"payload"`
}

type gatewayResponse struct {
	Results []struct {
		Token  string `json:"token"`
		Status string `json:"status"`
		Error  string `json:"error,omitempty"`
	} `json:"results"`
}

// SendBatch отправляет один батч в шлюз. Ошибка возвращается только при
// недоступности шлюза целиком, частичные сбои приходят в результатах
func (s *HTTPSender) SendBatch(ctx context.Context, tokens []string, payload Payload) ([]Result, error) {
	if s.gatewayURL == "" {
		return nil, fmt.Errorf("push gateway URL is not configured")
	}

	body, err := json.Marshal(gatewayRequest{Tokens: tokens, Payload: payload})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal push gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.gatewayURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create push gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если PUSH_SECRET задан
	if s.secret != "" {
		req.Header.Set("X-Push-Signature", generateHMACSHA256(body, s.secret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach push gateway: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("push gateway returned status %d", resp.StatusCode)
	}

	var gw gatewayResponse
	if err := json.NewDecoder(resp.Body).Decode(&gw); err != nil {
		return nil, fmt.Errorf("failed to decode push gateway response: %w", err)
	}

	results := make([]Result, 0, len(gw.Results))
	for _, r := range gw.Results {
		results = append(results, Result{
			Token:   r.Token,
			Outcome: mapGatewayStatus(r.Status),
			Error:   r.Error,
		})
	}

	s.logger.WithFields(logrus.Fields{
		"tokens":  len(tokens),
		"results": len(results),
	}).Debug("Push batch sent")
	return results, nil
}

// mapGatewayStatus приводит статус шлюза к исходу доставки.
// Незнакомые статусы считаем временным сбоем, чтобы не терять уведомления
func mapGatewayStatus(status string) Outcome {
	switch status {
	case "ok", "delivered":
		return OutcomeDelivered
	case "invalid_token", "unregistered":
		return OutcomeInvalidToken
	default:
		return OutcomeTransient
	}
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
