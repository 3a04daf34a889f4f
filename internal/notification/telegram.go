package notification

import (
	"context"
	"fmt"

	"github.com/giftly/giftcart/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

// TelegramNotifier posts checkout outcomes to a configured channel. It is a
// fire-and-forget sink: failures are logged and never surface to checkout.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{bot: nil, chatID: chatID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, chatID: chatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyCheckoutCompleted(ctx context.Context, booking *domain.Booking, itemCount int) {
	text := fmt.Sprintf(
		"*Order confirmed*\n\n"+"Booking: %s\n"+"Lines: %d\n"+"Total: %d",
		booking.ID, itemCount, booking.TotalAmount,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyCheckoutFailed(ctx context.Context, userID string, reason string) {
	text := fmt.Sprintf(
		"*Checkout failed*\n\n"+"User: %s\n"+"Reason: %s",
		userID, reason,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if n.chatID == 0 {
		n.logger.Debug("notification skipped (no chat_id)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", n.chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
