package whatsapp

import (
	"net/url"

	"github.com/matbakh-tech/go-backend/internal/cfg"
)

// Dispatcher собирает ссылку wa.me с предзаполненным текстом заказа.
// Переход по ссылке открывает чат с магазином, отправка остаётся
// за покупателем.
type Dispatcher struct {
	contact string
}

func NewDispatcher(cfg *cfg.DispatchCfg) *Dispatcher {
	return &Dispatcher{contact: cfg.Contact}
}

// OrderLink возвращает ссылку вида https://wa.me/<contact>?text=<encoded>.
func (d *Dispatcher) OrderLink(summaryText string) string {
	u := url.URL{
		Scheme:   "https",
		Host:     "wa.me",
		Path:     "/" + d.contact,
		RawQuery: url.Values{"text": {summaryText}}.Encode(),
	}

	return u.String()
}
