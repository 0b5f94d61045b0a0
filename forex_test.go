package vavoping

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLatestRate_unsupportedCurrency(t *testing.T) {
	if _, err := LatestRate("JPY"); err == nil {
		t.Error("LatestRate(JPY) expected an error")
	}
}

func Test_jwget(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"series":{"intraday":{"data":[[1693400400000,1.0812]]}}}`))
	}))
	defer srv.Close()

	var jobj map[string]any
	if err := jwget(new(http.Client), srv.URL, &jobj); err != nil {
		t.Fatalf("jwget() error = %v", err)
	}
	if _, ok := jobj["series"]; !ok {
		t.Error("jwget() did not decode the payload")
	}
}

func Test_jwget_statusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	var jobj any
	if err := jwget(new(http.Client), srv.URL, &jobj); err == nil {
		t.Error("jwget() expected an error on 403")
	}
}
