package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"predictionMart/internal/finance"
	"predictionMart/internal/storage"
)

var (
	// /calc [price] [investment] [fee] [USD|INR]
	reCalc = regexp.MustCompile(`^/calc(?:@[\w_]+)?(?:\s+(.*))?$`)
	// /price X, /investment X, /fee X, /currency USD|INR
	reField   = regexp.MustCompile(`^/(price|investment|fee|currency)(?:@[\w_]+)?\s+(\S+)$`)
	reReset   = regexp.MustCompile(`^/reset(?:@[\w_]+)?$`)
	reForm    = regexp.MustCompile(`^/form(?:@[\w_]+)?$`)
	reExplain = regexp.MustCompile(`^/explain(?:@[\w_]+)?$`)
	// /usage [days]
	reUsage = regexp.MustCompile(`^/usage(?:@[\w_]+)?(?:\s+(\d+))?$`)
	// /video ID
	reVideo = regexp.MustCompile(`^/video(?:@[\w_]+)?\s+(\S+)$`)
	reHelp  = regexp.MustCompile(`^/(help|start)(?:@[\w_]+)?$`)
)

const (
	explainTimeout = 45 * time.Second
	youtubeEmbed   = "https://www.youtube.com/embed/"
)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

type usageStore interface {
	LogUsage(chatID int64, command string, ts int64) error
	UsageStats(since int64) (map[string]*storage.UsageStats, error)
}

type explainer interface {
	Explain(ctx context.Context, table string) (string, error)
}

type Handlers struct {
	api      sender
	store    usageStore
	explain  explainer
	cache    *finance.ChartCache
	usage    *finance.UsageAnalytics
	sessions *Sessions
	log      *zap.Logger
	now      func() time.Time
}

func NewHandlers(api sender, store usageStore, ex explainer, cache *finance.ChartCache, log *zap.Logger) *Handlers {
	return &Handlers{
		api:      api,
		store:    store,
		explain:  ex,
		cache:    cache,
		usage:    finance.NewUsageAnalytics(),
		sessions: NewSessions(),
		log:      log,
		now:      time.Now,
	}
}

func (h *Handlers) HandleMessage(m *tgbotapi.Message) {
	if m == nil || m.Chat == nil {
		return
	}
	txt := strings.TrimSpace(m.Text)
	if !strings.HasPrefix(txt, "/") {
		return
	}
	chatID := m.Chat.ID

	switch {
	case reCalc.MatchString(txt):
		g := reCalc.FindStringSubmatch(txt)
		h.logUsage(chatID, "calc", m.Date)
		h.handleCalc(chatID, strings.Fields(g[1]))

	case reField.MatchString(txt):
		g := reField.FindStringSubmatch(txt)
		h.logUsage(chatID, g[1], m.Date)
		h.handleSetField(chatID, g[1], g[2])

	case reReset.MatchString(txt):
		h.logUsage(chatID, "reset", m.Date)
		h.handleReset(chatID)

	case reForm.MatchString(txt):
		h.logUsage(chatID, "form", m.Date)
		h.handleForm(chatID)

	case reExplain.MatchString(txt):
		h.logUsage(chatID, "explain", m.Date)
		h.handleExplain(chatID)

	case reUsage.MatchString(txt):
		days := 7
		if g := reUsage.FindStringSubmatch(txt); len(g) == 2 && g[1] != "" {
			days, _ = strconv.Atoi(g[1])
			if days < 1 {
				days = 1
			}
			if days > 90 {
				days = 90
			}
		}
		h.logUsage(chatID, "usage", m.Date)
		h.handleUsage(chatID, days)

	case reVideo.MatchString(txt):
		g := reVideo.FindStringSubmatch(txt)
		h.logUsage(chatID, "video", m.Date)
		h.reply(chatID, EmbedURL(g[1]))

	case reHelp.MatchString(txt):
		h.logUsage(chatID, "help", m.Date)
		h.handleHelp(chatID)
	}
}

const calcUsage = "Usage: /calc [price] [investment] [fee%] [USD|INR]"

// handleCalc applies positional overrides (price, investment, fee, then an
// optional trailing currency) and calculates.
func (h *Handlers) handleCalc(chatID int64, args []string) {
	currency := ""
	if n := len(args); n > 0 && isCurrency(args[n-1]) {
		currency, args = args[n-1], args[:n-1]
	}
	if len(args) > 3 {
		h.reply(chatID, calcUsage)
		return
	}

	var (
		calc finance.Calculation
		err  error
	)
	h.sessions.With(chatID, func(f *finance.Form) {
		if currency != "" {
			f.Currency = finance.ParseCurrency(currency)
		}
		fields := []*string{&f.Price, &f.Investment, &f.FeePercent}
		for i, a := range args {
			*fields[i] = a
		}
		calc, err = f.Calculate()
	})

	var verr *finance.ValidationError
	if errors.As(err, &verr) {
		h.reply(chatID, "Fix inputs: "+strings.Join(verr.Problems, " "))
		return
	}
	if err != nil {
		h.reply(chatID, "Calculation failed: "+err.Error())
		return
	}

	h.reply(chatID, calc.Table.Text())

	img, err := h.cache.Render(calc, finance.FormatPNG)
	if err != nil {
		h.log.Error("render roi chart", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "Chart failed: "+err.Error())
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "roi.png", Bytes: img})
	photo.Caption = calc.Chart.Caption
	h.send(photo)
}

func (h *Handlers) handleSetField(chatID int64, field, value string) {
	if field == "currency" && !isCurrency(value) {
		h.reply(chatID, "Currency must be USD or INR.")
		return
	}
	h.sessions.With(chatID, func(f *finance.Form) {
		switch field {
		case "price":
			f.Price = value
		case "investment":
			f.Investment = value
		case "fee":
			f.FeePercent = value
		case "currency":
			f.Currency = finance.ParseCurrency(value)
		}
	})
	h.reply(chatID, fmt.Sprintf("%s set to %s. Send /calc to calculate.", field, value))
}

func (h *Handlers) handleReset(chatID int64) {
	h.sessions.With(chatID, func(f *finance.Form) { f.Reset() })
	h.reply(chatID, "Calculator reset: price 0.40, investment 100, fee 0.5%, currency USD.")
}

func (h *Handlers) handleForm(chatID int64) {
	var text string
	h.sessions.With(chatID, func(f *finance.Form) {
		text = fmt.Sprintf("Price: %s\nInvestment: %s\nFee %%: %s\nCurrency: %s",
			f.Price, f.Investment, f.FeePercent, f.Currency)
	})
	h.reply(chatID, text)
}

func (h *Handlers) handleExplain(chatID int64) {
	var table string
	h.sessions.With(chatID, func(f *finance.Form) {
		if f.Last != nil {
			table = f.Last.Table.Text()
		}
	})
	if table == "" {
		h.reply(chatID, "Nothing to explain yet. Run /calc first.")
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), explainTimeout)
	defer cancel()
	out, err := h.explain.Explain(ctx, table)
	if err != nil {
		h.log.Warn("explain failed", zap.Int64("chat_id", chatID), zap.Error(err))
		h.reply(chatID, "Explanation failed: "+err.Error())
		return
	}
	h.reply(chatID, out)
}

func (h *Handlers) handleUsage(chatID int64, days int) {
	since := h.now().Add(-time.Duration(days) * 24 * time.Hour).Unix()
	stats, err := h.store.UsageStats(since)
	if err != nil {
		h.reply(chatID, "Usage failed: "+err.Error())
		return
	}
	if len(stats) > 0 {
		img, err := h.usage.MakeUsageChart(stats, days)
		if err != nil {
			h.log.Error("render usage chart", zap.Error(err))
		} else {
			h.send(tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "usage.png", Bytes: img}))
		}
	}
	h.reply(chatID, h.usage.FormatUsageStatsText(stats, days))
}

func (h *Handlers) handleHelp(chatID int64) {
	help := "Payoff Calculator\n\n" +
		"- /calc [price] [investment] [fee%] [USD|INR] - Calculate payoff; omitted values keep the current form\n" +
		"- /price X - Share price, 0.01 to 0.99 (implied probability)\n" +
		"- /investment X - Amount to invest, in the selected currency\n" +
		"- /fee X - Fee % charged on entry and on payout, 0 to 2\n" +
		"- /currency USD|INR - Display currency (INR at a fixed " + strconv.FormatFloat(finance.FXRate, 'f', 1, 64) + ")\n" +
		"- /form - Show current inputs\n" +
		"- /reset - Restore defaults (0.40, 100, 0.5%, USD)\n" +
		"- /explain - Plain-language explanation of the last result\n" +
		"- /usage [days] - Command usage statistics\n" +
		"- /video ID - YouTube embed link for an explainer video\n" +
		"\n© " + strconv.Itoa(h.now().Year()) + " PredictionMart"
	h.reply(chatID, help)
}

// EmbedURL builds the YouTube embed address for a video id.
func EmbedURL(id string) string {
	return youtubeEmbed + url.PathEscape(strings.TrimSpace(id))
}

func isCurrency(s string) bool {
	return strings.EqualFold(s, string(finance.USD)) || strings.EqualFold(s, string(finance.INR))
}

func (h *Handlers) logUsage(chatID int64, command string, date int) {
	ts := int64(date)
	if ts == 0 {
		ts = h.now().Unix()
	}
	if err := h.store.LogUsage(chatID, command, ts); err != nil {
		h.log.Warn("log usage", zap.String("command", command), zap.Error(err))
	}
}

func (h *Handlers) reply(chatID int64, text string) {
	h.send(tgbotapi.NewMessage(chatID, text))
}

func (h *Handlers) send(c tgbotapi.Chattable) {
	if _, err := h.api.Send(c); err != nil {
		h.log.Warn("telegram send", zap.Error(err))
	}
}
