package alert

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"
)

func TestTwilioSend(t *testing.T) {
	var gotPath, gotAuthSID, gotAuthToken string
	var gotForm url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuthSID, gotAuthToken, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		gotForm, _ = url.ParseQuery(string(body))
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"sid":"SM123"}`)
	}))
	defer srv.Close()

	s := NewTwilioSender(srv.URL, "AC999", "secret", "whatsapp:+14155238886", "+254700000000", time.Second)
	if err := s.Send("hello"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if gotPath != "/2010-04-01/Accounts/AC999/Messages.json" {
		t.Fatalf("wrong path: %s", gotPath)
	}
	if gotAuthSID != "AC999" || gotAuthToken != "secret" {
		t.Fatalf("wrong basic auth: %s/%s", gotAuthSID, gotAuthToken)
	}
	if gotForm.Get("From") != "whatsapp:+14155238886" {
		t.Fatalf("wrong From: %s", gotForm.Get("From"))
	}
	if gotForm.Get("To") != "whatsapp:+254700000000" {
		t.Fatalf("wrong To: %s", gotForm.Get("To"))
	}
	if gotForm.Get("Body") != "hello" {
		t.Fatalf("wrong Body: %s", gotForm.Get("Body"))
	}
}

func TestTwilioSendRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		io.WriteString(w, `{"code":20003,"message":"Authentication Error"}`)
	}))
	defer srv.Close()

	s := NewTwilioSender(srv.URL, "AC999", "wrong", "whatsapp:+14155238886", "+254700000000", time.Second)
	err := s.Send("hello")
	if err == nil {
		t.Fatal("want error on rejection")
	}
	if !strings.Contains(err.Error(), "status=401") {
		t.Fatalf("error should carry the status: %v", err)
	}
}

func TestTwilioSendMissingSID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{}`)
	}))
	defer srv.Close()

	s := NewTwilioSender(srv.URL, "AC999", "secret", "whatsapp:+14155238886", "+254700000000", time.Second)
	if err := s.Send("hello"); err == nil {
		t.Fatal("want error when response lacks a message sid")
	}
}
