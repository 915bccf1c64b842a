package i18n

import "testing"

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	t.Cleanup(func() { SetLanguage("en") })

	if msg := T("unknown_key", nil); msg != "unknown field" {
		t.Fatalf("expected english message, got %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unknown_key", nil); msg == "unknown field" || msg == "unknown_key" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	SetLanguage("fr")
	if msg := T("unknown_key", nil); msg != "unknown field" {
		t.Fatalf("unsupported language should fall back to english, got %q", msg)
	}
}

func TestTranslator_KeyAndUnknownCode(t *testing.T) {
	if msg := T("duplicate_key", map[string]string{"key": "proxies"}); msg != "duplicate key 'proxies'" {
		t.Fatalf("unexpected message %q", msg)
	}
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("unknown code should echo, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, _ map[string]string) string { return "X:" + code }

func TestSetTranslator(t *testing.T) {
	t.Cleanup(func() { SetTranslator(nil) })
	SetTranslator(upper{})
	if msg := T("required", nil); msg != "X:required" {
		t.Fatalf("custom translator not used, got %q", msg)
	}
	SetTranslator(nil)
	if msg := T("required", nil); msg != "required property missing" {
		t.Fatalf("nil translator should restore default, got %q", msg)
	}
}
