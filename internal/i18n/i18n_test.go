package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newTestContext(target string, headers map[string]string) *gin.Context {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest("GET", target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestResolveLocaleQueryParam(t *testing.T) {
	c := newTestContext("/posts?lang=en", nil)
	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("want %s got %s", LocaleEN, got)
	}
}

func TestResolveLocaleAcceptLanguage(t *testing.T) {
	c := newTestContext("/posts", map[string]string{"Accept-Language": "en-GB;q=0.9, pt-BR;q=0.8"})
	if got := ResolveLocale(c); got != LocaleEN {
		t.Fatalf("want %s got %s", LocaleEN, got)
	}
}

func TestResolveLocaleFallback(t *testing.T) {
	c := newTestContext("/posts", map[string]string{"Accept-Language": "fr-FR"})
	if got := ResolveLocale(c); got != DefaultLocale {
		t.Fatalf("want default locale got %s", got)
	}
}

func TestTranslateFallbackToEnglish(t *testing.T) {
	if got := T("fr-FR", "error.post_not_found"); got != "post não encontrado" {
		t.Fatalf("unknown locale should fall back to default, got %q", got)
	}
	if got := T(LocaleEN, "no.such.key"); got != "no.such.key" {
		t.Fatalf("missing key should echo the key, got %q", got)
	}
}

func TestSprintfCount(t *testing.T) {
	got := Sprintf(LocaleEN, "msg.comments_approved", 3)
	if got != "3 comments approved" {
		t.Fatalf("want formatted message got %q", got)
	}
}
