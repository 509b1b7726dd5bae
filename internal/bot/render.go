package bot

import (
	"fmt"
	"strings"

	"github.com/candylab/sweetbot/core/telegram/format"
	"github.com/candylab/sweetbot/internal/i18n"
	"github.com/candylab/sweetbot/internal/models"
	"github.com/candylab/sweetbot/internal/service"
)

func (a *App) currency() string {
	return a.cfg.Shop.Currency
}

// productCaption renders the catalog card sent for one product.
func (a *App) productCaption(p *models.Product, lang string) string {
	title := p.Title.Resolve(lang, a.cfg.Shop.DefaultLanguage)
	desc := p.Description.Resolve(lang, a.cfg.Shop.DefaultLanguage)

	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n", format.EscapeMarkdown(title))
	if desc != "" {
		b.WriteString(format.EscapeMarkdown(desc))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "%s: %d%s", i18n.T(lang, "price"), p.Price, a.currency())
	return b.String()
}

// cartText renders the cart view with the running total.
func (a *App) cartText(view *service.CartView, lang string) string {
	var b strings.Builder
	b.WriteString(i18n.T(lang, "your_cart"))
	b.WriteByte('\n')
	for _, line := range view.Lines {
		fmt.Fprintf(&b, "%s x%d — %d%s\n", line.Title, line.Qty, line.Product.Price, a.currency())
	}
	fmt.Fprintf(&b, "\n%s: %d%s", i18n.T(lang, "total"), view.Total, a.currency())
	return b.String()
}

func (a *App) itemsText(items models.OrderItems) string {
	lines := make([]string, 0, len(items))
	for _, it := range items {
		lines = append(lines, fmt.Sprintf("%s x%d - %d%s", it.Title, it.Qty, it.Price, a.currency()))
	}
	return strings.Join(lines, "\n")
}

// adminOrderText renders the detailed notification sent to the administrator
// when an order is created or listed.
func (a *App) adminOrderText(header string, o *models.Order, withStatus bool) string {
	var b strings.Builder
	if header != "" {
		b.WriteString(header)
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "Order ID: %d\n", o.ID)
	fmt.Fprintf(&b, "User: %d\n", o.UserID)
	fmt.Fprintf(&b, "Name: %s\n", o.Name)
	fmt.Fprintf(&b, "Phone: %s\n", o.Phone)
	fmt.Fprintf(&b, "Address: %s\n", o.Address)
	if withStatus {
		fmt.Fprintf(&b, "Status: %s\n", o.Status)
	}
	fmt.Fprintf(&b, "Payment: %s\n", o.PaymentMethod)
	fmt.Fprintf(&b, "Total: %d%s\n", o.Total, a.currency())
	fmt.Fprintf(&b, "\nItems:\n%s", a.itemsText(o.Items))
	return b.String()
}

// statusNotification is the message sent to the order's user on a status change.
func statusNotification(o *models.Order) string {
	switch o.Status {
	case models.OrderStatusAccepted:
		return i18n.T(o.Lang, "order_accepted")
	case models.OrderStatusShipped:
		return i18n.T(o.Lang, "order_shipped")
	case models.OrderStatusCanceled:
		return i18n.T(o.Lang, "order_canceled")
	}
	return ""
}
