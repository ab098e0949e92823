package ui

import "testing"

func TestLocalization_SetLanguage(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		lang string
		want string
	}{
		{"ru", "ru"},
		{"system", "en"},
		{"ar", "ar"},
		{"xx", "ar"},
		{"pt", "pt"},
	}

	for _, tt := range tests {
		l.SetLanguage(tt.lang)
		if got := l.GetCurrentLanguage(); got != tt.want {
			t.Errorf("SetLanguage(%q): current language = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestLocalization_GetTextFallback(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ru")

	if got := l.GetText(KeyLoading); got != "Загрузка..." {
		t.Errorf("Expected Russian loading text, got %q", got)
	}

	delete(l.texts["ru"], KeyRescan)
	if got := l.GetText(KeyRescan); got != l.texts["en"][KeyRescan] {
		t.Errorf("Expected English fallback %q, got %q", l.texts["en"][KeyRescan], got)
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key itself for unknown key, got %q", got)
	}
}

func TestLocalization_AllLanguagesComplete(t *testing.T) {
	l := NewLocalization()
	english := l.texts["en"]

	for code := range l.GetAvailableLanguages() {
		texts, ok := l.texts[code]
		if !ok {
			t.Errorf("Language %s is offered but has no texts", code)
			continue
		}
		for key := range english {
			if texts[key] == "" {
				t.Errorf("Language %s is missing %s", code, key)
			}
		}
	}
}

func TestLocalization_ViewerStrings(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("ar")

	s := l.ViewerStrings()
	if s.Loading != "جاري التحميل..." {
		t.Errorf("Expected Arabic loading text, got %q", s.Loading)
	}
	if s.RenderError == "" || s.InitError == "" || s.Of == "" {
		t.Errorf("Viewer strings should be filled, got %+v", s)
	}
}
