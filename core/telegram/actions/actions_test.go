package actions

import "testing"

func registeredSet(verbs ...string) func(string) bool {
	set := make(map[string]struct{}, len(verbs))
	for _, v := range verbs {
		set[v] = struct{}{}
	}
	return func(verb string) bool {
		_, ok := set[verb]
		return ok
	}
}

var shopVerbs = registeredSet(
	"cat", "add", "lang", "pay", "checkout", "view_cart", "back_main",
	"choose_lang", "admin_accept", "admin_mark_shipped",
)

func TestMatchSimpleVerb(t *testing.T) {
	verb, arg, ok := Match("cat_cakes", shopVerbs)
	if !ok || verb != "cat" || arg != "cakes" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}

func TestMatchBareVerb(t *testing.T) {
	verb, arg, ok := Match("checkout", shopVerbs)
	if !ok || verb != "checkout" || arg != "" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}

func TestMatchVerbContainingSeparator(t *testing.T) {
	verb, arg, ok := Match("view_cart", shopVerbs)
	if !ok || verb != "view_cart" || arg != "" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}

func TestMatchLongestVerbWins(t *testing.T) {
	verb, arg, ok := Match("admin_mark_shipped_1754", shopVerbs)
	if !ok || verb != "admin_mark_shipped" || arg != "1754" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}

func TestMatchArgumentWithSeparators(t *testing.T) {
	verb, arg, ok := Match("add_68a_1f9", shopVerbs)
	if !ok || verb != "add" || arg != "68a_1f9" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}

func TestMatchUnknownVerb(t *testing.T) {
	if _, _, ok := Match("remove_5", shopVerbs); ok {
		t.Fatal("expected no match for unregistered verb")
	}
	if _, _, ok := Match("", shopVerbs); ok {
		t.Fatal("expected no match for empty data")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	if got := Format("pay", "cash"); got != "pay_cash" {
		t.Fatalf("got %q", got)
	}
	if got := Format("checkout", ""); got != "checkout" {
		t.Fatalf("got %q", got)
	}
	if got := FormatInt64("admin_accept", 42); got != "admin_accept_42" {
		t.Fatalf("got %q", got)
	}
	verb, arg, ok := Match(FormatInt64("admin_mark_shipped", 9), shopVerbs)
	if !ok || verb != "admin_mark_shipped" || arg != "9" {
		t.Fatalf("got %q %q %v", verb, arg, ok)
	}
}
