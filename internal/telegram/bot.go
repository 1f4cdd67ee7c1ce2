package telegram

import (
	"encoding/json"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"predictionMart/internal/finance"
	"predictionMart/internal/openai"
	"predictionMart/internal/storage"
)

type Bot struct {
	api *tgbotapi.BotAPI
	h   *Handlers
	log *zap.Logger
}

func NewBot(token, webhookURL string, store *storage.Store, ex *openai.Explainer, cache *finance.ChartCache, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	// set webhook
	webhook, err := tgbotapi.NewWebhook(webhookURL)
	if err != nil {
		return nil, err
	}
	if _, err := api.Request(webhook); err != nil {
		return nil, err
	}
	log.Info("telegram: webhook set", zap.String("url", webhookURL))

	h := NewHandlers(api, store, ex, cache, log)
	return &Bot{api: api, h: h, log: log}, nil
}

// Webhook HTTP handler (registered at /telegram/webhook)
func (b *Bot) WebhookHandler(w http.ResponseWriter, r *http.Request) {
	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}
	if update.Message != nil {
		b.log.Debug("webhook: message", zap.String("text", update.Message.Text))
		go b.h.HandleMessage(update.Message)
	} else {
		b.log.Debug("webhook: non-message update received")
	}
	w.WriteHeader(http.StatusOK)
}
