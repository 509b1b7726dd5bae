package i18n

import "testing"

func TestTranslationLookup(t *testing.T) {
	if got := T("en", "empty_cart"); got != "Cart is empty." {
		t.Fatalf("T(en, empty_cart) = %q", got)
	}
	if got := T("ru", "checkout"); got != "Оформить заказ ✅" {
		t.Fatalf("T(ru, checkout) = %q", got)
	}
}

func TestTranslationFallsBackToDefaultLang(t *testing.T) {
	if got, want := T("de", "empty_cart"), T(DefaultLang, "empty_cart"); got != want {
		t.Fatalf("T(de) = %q, want default-language value %q", got, want)
	}
}

func TestTranslationFallsBackToKey(t *testing.T) {
	if got := T("en", "no_such_key"); got != "no_such_key" {
		t.Fatalf("T(en, no_such_key) = %q", got)
	}
}

func TestSupported(t *testing.T) {
	for _, lang := range []string{"uz", "ru", "en"} {
		if !Supported(lang) {
			t.Fatalf("%s should be supported", lang)
		}
	}
	if Supported("de") {
		t.Fatal("de should not be supported")
	}
}

func TestEveryLanguageHasEveryKey(t *testing.T) {
	base := dictionaries[DefaultLang]
	for lang, dict := range dictionaries {
		for key := range base {
			if _, ok := dict[key]; !ok {
				t.Errorf("language %s is missing key %s", lang, key)
			}
		}
		for key := range dict {
			if _, ok := base[key]; !ok {
				t.Errorf("language %s has extra key %s", lang, key)
			}
		}
	}
}
