package bot

import "testing"

func TestMainMenuCallbackData(t *testing.T) {
	a := testApp()
	markup := a.mainMenu("en")

	var data []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			data = append(data, btn.Data)
		}
	}

	want := []string{"cat_cakes", "cat_pastries", "cat_desserts", "view_cart", "choose_lang"}
	if len(data) != len(want) {
		t.Fatalf("button payloads = %v, want %v", data, want)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("payload[%d] = %q, want %q", i, data[i], want[i])
		}
	}
}

func TestPayButtonsWireData(t *testing.T) {
	a := testApp()
	markup := a.payButtons("en")

	var data []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			data = append(data, btn.Data)
		}
	}
	if len(data) != 2 || data[0] != "pay_cash" || data[1] != "pay_card" {
		t.Errorf("pay payloads = %v", data)
	}
}

func TestAdminOrderButtonsSingleRow(t *testing.T) {
	markup := adminOrderButtons(17)
	if len(markup.InlineKeyboard) != 1 {
		t.Fatalf("rows = %d, want 1", len(markup.InlineKeyboard))
	}
	row := markup.InlineKeyboard[0]
	if len(row) != 2 {
		t.Fatalf("buttons = %d, want 2", len(row))
	}
	if row[0].Data != "admin_accept_17" {
		t.Errorf("accept payload = %q", row[0].Data)
	}
	if row[1].Data != "admin_mark_shipped_17" {
		t.Errorf("ship payload = %q", row[1].Data)
	}
}

func TestLangMenuCoversConfiguredLanguages(t *testing.T) {
	a := testApp()
	markup := a.langMenu()

	var data []string
	for _, row := range markup.InlineKeyboard {
		for _, btn := range row {
			data = append(data, btn.Data)
		}
	}
	want := []string{"lang_uz", "lang_ru", "lang_en"}
	if len(data) != len(want) {
		t.Fatalf("payloads = %v, want %v", data, want)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Errorf("payload[%d] = %q, want %q", i, data[i], want[i])
		}
	}
}
