package whatsapp

import (
	"net/url"
	"testing"

	"github.com/matbakh-tech/go-backend/internal/cfg"
)

func TestOrderLink(t *testing.T) {
	d := NewDispatcher(&cfg.DispatchCfg{Contact: "15551234567"})

	link := d.OrderLink("New order:\nSourdough (2×) - 13.00\nTotal: 13.00")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if u.Scheme != "https" || u.Host != "wa.me" {
		t.Errorf("got %s://%s, want https://wa.me", u.Scheme, u.Host)
	}
	if u.Path != "/15551234567" {
		t.Errorf("path = %q, want /15551234567", u.Path)
	}

	text := u.Query().Get("text")
	want := "New order:\nSourdough (2×) - 13.00\nTotal: 13.00"
	if text != want {
		t.Errorf("decoded text = %q, want %q", text, want)
	}
}

func TestOrderLinkEncodesReservedCharacters(t *testing.T) {
	d := NewDispatcher(&cfg.DispatchCfg{Contact: "490000000"})

	link := d.OrderLink("a b&c=d")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != "a b&c=d" {
		t.Errorf("decoded text = %q, want %q", got, "a b&c=d")
	}
}
