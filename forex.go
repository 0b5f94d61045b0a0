package vavoping

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PaesslerAG/jsonpath"
)

/*
	{
	    "info": {
	        "isin": "LS000IUSD016",
	        "chartType": "mini",
	        ...
	    },
	    "series": {
	        "intraday": {
	            "data": [[1693400400000, 1.0812], ...]
	        }
	    }
	}
*/

// LatestRate returns the latest intraday conversion rate from EUR to the
// given currency, quoted by Lang & Schwarz. Only USD is wired for now,
// Bitvavo quotes everything in EUR anyway.
func LatestRate(currency string) (Quantity, error) {
	if currency != "USD" {
		return Quantity{}, fmt.Errorf("unsupported reporting currency %q", currency)
	}
	// instrument 349938 is the EUR/USD pair, the quote is USD per EUR.
	addr := "https://www.ls-tc.de/_rpc/json/instrument/chart/dataForInstrument?instrumentId=349938&series=intraday&type=mini"
	var jobj any
	if err := jwget(new(http.Client), addr, &jobj); err != nil {
		return Quantity{}, fmt.Errorf("error in wget %q: %w", "EUR/USD", err)
	}
	path := "$.series.intraday.data[-1:][1]"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return Quantity{}, fmt.Errorf("error parsing %q: %q %w", "EUR/USD", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of
	// 1 answer, or a single answer: by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return Quantity{}, fmt.Errorf("error parsing %q: %q %s %v", "EUR/USD", path, "not a float", jval)
	}
	return Q(val), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response
// into the provided data structure.
func jwget(client *http.Client, addr string, data interface{}) error {
	resp, err := client.Get(addr)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Body)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return json.Unmarshal(buf.Bytes(), data)
}
