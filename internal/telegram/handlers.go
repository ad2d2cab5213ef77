package telegram

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/techntrails/bitcoin-price-chart/internal/digest"
	"github.com/techntrails/bitcoin-price-chart/internal/price"
	"github.com/techntrails/bitcoin-price-chart/internal/summarize"
	"github.com/techntrails/bitcoin-price-chart/internal/transcript"
)

var (
	// /price
	rePrice = regexp.MustCompile(`^/price(?:@[\w_]+)?$`)
	// /chart
	reChart = regexp.MustCompile(`^/chart(?:@[\w_]+)?$`)
	// /help or /start
	reHelp = regexp.MustCompile(`^/(help|start)(?:@[\w_]+)?$`)
	// anything that looks like a URL gets routed to the digest pipeline
	reURL = regexp.MustCompile(`https?://\S+`)
)

// transcriptPreview caps how much raw transcript goes into the reply;
// Telegram messages top out at 4096 chars.
const transcriptPreview = 1500

type Handlers struct {
	api    *tgbotapi.BotAPI
	svc    *digest.Service
	poller *price.Poller

	mu       sync.Mutex
	inFlight map[int64]bool
}

func NewHandlers(api *tgbotapi.BotAPI, svc *digest.Service, poller *price.Poller) *Handlers {
	return &Handlers{api: api, svc: svc, poller: poller, inFlight: map[int64]bool{}}
}

func (h *Handlers) HandleMessage(m *tgbotapi.Message) {
	txt := strings.TrimSpace(m.Text)
	switch {
	case rePrice.MatchString(txt):
		h.handlePrice(m.Chat.ID)

	case reChart.MatchString(txt):
		h.handleChart(m.Chat.ID)

	case reHelp.MatchString(txt):
		h.handleHelp(m.Chat.ID)

	case reURL.MatchString(txt):
		h.handleDigest(m.Chat.ID, reURL.FindString(txt))
	}
}

func (h *Handlers) handleDigest(chatID int64, rawURL string) {
	// One digest per chat at a time. A second URL while one is running gets
	// a short notice instead of a parallel pipeline.
	h.mu.Lock()
	if h.inFlight[chatID] {
		h.mu.Unlock()
		h.reply(chatID, "Already working on a video for this chat, hold on…")
		return
	}
	h.inFlight[chatID] = true
	h.mu.Unlock()
	defer func() {
		h.mu.Lock()
		delete(h.inFlight, chatID)
		h.mu.Unlock()
	}()

	h.reply(chatID, "Fetching transcript…")

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()
	res, err := h.svc.Digest(ctx, rawURL)
	if err != nil {
		h.reply(chatID, digestErrorText(err))
		return
	}
	h.sendDigest(chatID, res)
}

func digestErrorText(err error) string {
	switch {
	case errors.Is(err, digest.ErrPodcastFeed):
		return "That looks like a podcast feed. " + digest.ErrPodcastFeed.Error() + "."
	case errors.Is(err, digest.ErrInvalidURL):
		return "Please send a YouTube link (watch, youtu.be, or embed form)."
	case errors.Is(err, transcript.ErrUnavailable):
		return "Couldn't fetch a transcript: " + err.Error()
	case errors.Is(err, summarize.ErrTooShort):
		return "The transcript is too short to summarize."
	default:
		return "Digest failed: " + err.Error()
	}
}

func (h *Handlers) sendDigest(chatID int64, res digest.Result) {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\nby %s\n\n", escapeMarkdown(res.VideoInfo.Title), escapeMarkdown(res.VideoInfo.Author))
	fmt.Fprintf(&b, "*Summary*\n%s\n\n", escapeMarkdown(res.Summary))
	if len(res.KeyPoints) > 0 {
		b.WriteString("*Key points*\n")
		for _, kp := range res.KeyPoints {
			b.WriteString("• " + escapeMarkdown(kp) + "\n")
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "Word count: %d\n", res.WordCount)

	preview := res.Transcript
	if len(preview) > transcriptPreview {
		preview = preview[:transcriptPreview] + "…"
	}
	fmt.Fprintf(&b, "\n*Transcript*\n%s", escapeMarkdown(preview))

	msg := tgbotapi.NewMessage(chatID, b.String())
	msg.ParseMode = "Markdown"
	if _, err := h.api.Send(msg); err != nil {
		// Markdown can choke on odd transcript text; retry plain.
		plain := tgbotapi.NewMessage(chatID, b.String())
		h.api.Send(plain)
	}
}

func (h *Handlers) handlePrice(chatID int64) {
	st := h.poller.Latest()
	if st.Err != nil && len(st.History.Prices) == 0 {
		h.reply(chatID, "Price feed unavailable right now, next tick retries automatically.")
		return
	}
	arrow := "▲"
	if st.Quote.ChangePercent < 0 {
		arrow = "▼"
	}
	h.reply(chatID, fmt.Sprintf("BTC/USDT: $%.2f  %s %.2f%% (24h)", st.Quote.LastPrice, arrow, st.Quote.ChangePercent))
}

func (h *Handlers) handleChart(chatID int64) {
	st := h.poller.Latest()
	img, err := price.RenderChart(st.History)
	if err != nil {
		h.reply(chatID, "Chart not ready yet: "+err.Error())
		return
	}
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "btcusdt.png", Bytes: img})
	photo.Caption = fmt.Sprintf("BTC/USDT • last %d samples • $%.2f", len(st.History.Prices), st.Quote.LastPrice)
	h.api.Send(photo)
}

func (h *Handlers) handleHelp(chatID int64) {
	help := "Commands\n\n" +
		"- Send a YouTube link (watch, youtu.be, or embed form) to get a transcript digest:\n" +
		"  summary, key points, word count, and a transcript preview\n" +
		"- /price - Latest BTC/USDT price and 24h change\n" +
		"- /chart - Line chart of the last 50 price samples (1s polling)\n" +
		"- /help - This message\n" +
		"\nPodcast feeds are recognized but not supported."
	h.reply(chatID, help)
}

func (h *Handlers) reply(chatID int64, text string) {
	h.api.Send(tgbotapi.NewMessage(chatID, text))
}

var mdEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

func escapeMarkdown(s string) string {
	return mdEscaper.Replace(s)
}
