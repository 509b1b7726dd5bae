package bot

import (
	"strings"
	"testing"

	coreconfig "github.com/candylab/sweetbot/core/config"
	"github.com/candylab/sweetbot/core/telegram/state"
	"github.com/candylab/sweetbot/internal/models"
	"github.com/candylab/sweetbot/internal/service"
)

func testApp() *App {
	cfg := &coreconfig.Config{}
	cfg.Shop.DefaultLanguage = "uz"
	cfg.Shop.Languages = []string{"uz", "ru", "en"}
	cfg.Shop.Currency = "$"
	cfg.Telegram.AdminID = 999
	return &App{cfg: cfg, sessions: state.NewMemoryManager()}
}

func TestProductCaption(t *testing.T) {
	a := testApp()
	p := &models.Product{
		Title:       models.LocalizedText{"en": "Chocolate Cake", "uz": "Shokoladli tort"},
		Description: models.LocalizedText{"en": "Rich cocoa layers"},
		Price:       45,
	}

	got := a.productCaption(p, "en")
	if !strings.Contains(got, "*Chocolate Cake*") {
		t.Errorf("caption missing bold title: %q", got)
	}
	if !strings.Contains(got, "Rich cocoa layers") {
		t.Errorf("caption missing description: %q", got)
	}
	if !strings.Contains(got, "45$") {
		t.Errorf("caption missing price: %q", got)
	}
}

func TestProductCaptionFallsBackToDefaultLanguage(t *testing.T) {
	a := testApp()
	p := &models.Product{
		Title: models.LocalizedText{"uz": "Shokoladli tort"},
		Price: 45,
	}

	got := a.productCaption(p, "en")
	if !strings.Contains(got, "Shokoladli tort") {
		t.Errorf("caption did not fall back: %q", got)
	}
}

func TestProductCaptionEscapesMarkdown(t *testing.T) {
	a := testApp()
	p := &models.Product{
		Title: models.LocalizedText{"en": "Choc_Cake"},
		Price: 10,
	}

	got := a.productCaption(p, "en")
	if !strings.Contains(got, `Choc\_Cake`) {
		t.Errorf("underscore not escaped: %q", got)
	}
}

func TestCartText(t *testing.T) {
	a := testApp()
	view := &service.CartView{
		Lines: []service.CartLine{
			{Product: models.Product{Price: 45}, Title: "Chocolate Cake", Qty: 2},
			{Product: models.Product{Price: 5}, Title: "Caramel dessert", Qty: 1},
		},
		Total: 95,
	}

	got := a.cartText(view, "en")
	if !strings.Contains(got, "Chocolate Cake x2") {
		t.Errorf("cart line missing: %q", got)
	}
	if !strings.Contains(got, "Total: 95$") {
		t.Errorf("total missing: %q", got)
	}
}

func TestAdminOrderText(t *testing.T) {
	a := testApp()
	o := &models.Order{
		ID:            7,
		UserID:        1001,
		Name:          "Aziz",
		Phone:         "+998901234567",
		Address:       "Tashkent, Chilonzor 5",
		Items:         models.OrderItems{{ProductID: 1, Title: "Chocolate Cake", Price: 45, Qty: 2}},
		Total:         90,
		PaymentMethod: models.PaymentCash,
		Status:        models.OrderStatusNew,
		Lang:          "en",
	}

	got := a.adminOrderText("New order", o, false)
	for _, want := range []string{
		"New order",
		"Order ID: 7",
		"User: 1001",
		"Name: Aziz",
		"Phone: +998901234567",
		"Address: Tashkent, Chilonzor 5",
		"Payment: cash",
		"Total: 90$",
		"Chocolate Cake x2 - 45$",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("order text missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Status:") {
		t.Errorf("status should be omitted: %q", got)
	}

	withStatus := a.adminOrderText("", o, true)
	if !strings.Contains(withStatus, "Status: new") {
		t.Errorf("status missing: %q", withStatus)
	}
}

func TestStatusNotification(t *testing.T) {
	o := &models.Order{Lang: "en"}

	o.Status = models.OrderStatusAccepted
	if got := statusNotification(o); got == "" {
		t.Error("accepted notification is empty")
	}
	o.Status = models.OrderStatusShipped
	if got := statusNotification(o); got == "" {
		t.Error("shipped notification is empty")
	}
	o.Status = models.OrderStatusNew
	if got := statusNotification(o); got != "" {
		t.Errorf("new status should not notify, got %q", got)
	}
}
