package notifier

import (
	"context"
	"sync"

	"github.com/mymmrac/telego"
	"github.com/pkg/errors"
)

// telegramBotPool reaproveita instâncias de bot por token; cada tenant tem
// o próprio bot e criar um cliente novo a cada envio seria desperdício.
type telegramBotPool struct {
	mu   sync.Mutex
	bots map[string]*telego.Bot
}

func newTelegramBotPool() *telegramBotPool {
	return &telegramBotPool{
		bots: make(map[string]*telego.Bot),
	}
}

func (p *telegramBotPool) get(token string) (*telego.Bot, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if bot, ok := p.bots[token]; ok {
		return bot, nil
	}

	bot, err := telego.NewBot(token)
	if err != nil {
		return nil, errors.Wrap(err, "telegram: erro ao criar bot")
	}

	p.bots[token] = bot
	return bot, nil
}

// telegramChannel entrega via API de bot autenticada por token.
type telegramChannel struct {
	pool   *telegramBotPool
	token  string
	chatID int64
}

func (t *telegramChannel) Name() string {
	return "telegram"
}

func (t *telegramChannel) Send(ctx context.Context, text string) error {
	bot, err := t.pool.get(t.token)
	if err != nil {
		return err
	}

	_, err = bot.SendMessage(ctx, &telego.SendMessageParams{
		ChatID:    telego.ChatID{ID: t.chatID},
		Text:      text,
		ParseMode: "Markdown",
	})
	if err != nil {
		return errors.Wrap(err, "telegram: erro no envio da mensagem")
	}

	return nil
}
