package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/ecommerce-dashboard/internal/dataset"
	repo "github.com/rogerio-castellano/ecommerce-dashboard/internal/repo"
)

// readJSON tries to read the body of a request and converts it into JSON
func readJSON(w http.ResponseWriter, r *http.Request, data any) error {
	maxBytes := 1048576 // one megabyte
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	err := dec.Decode(data)
	if err != nil {
		return fmt.Errorf("failed to read JSON: %w", err)
	}

	err = dec.Decode(&struct{}{})
	if err != io.EOF {
		return errors.New("body must have only a single json value")
	}

	return nil
}

// writeJSON takes a response status code and arbitrary data and writes a json response to the client
func writeJSON(w http.ResponseWriter, status int, data any, headers ...http.Header) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	if len(headers) > 0 {
		for key, value := range headers[0] {
			w.Header()[key] = value
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(out)
	if err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}

	return nil
}

const dateOnly = "2006-01-02"

// parseDateRange reads the start and end query parameters. A bare date as
// end covers that whole day. Missing parameters leave the bound open.
func parseDateRange(r *http.Request) (repo.OrderFilter, error) {
	var f repo.OrderFilter

	if s := queryTime(r, "start"); s != "" {
		t, err := parseBound(s, false)
		if err != nil {
			return f, fmt.Errorf("invalid start date: %w", err)
		}
		f.Since = &t
	}
	if s := queryTime(r, "end"); s != "" {
		t, err := parseBound(s, true)
		if err != nil {
			return f, fmt.Errorf("invalid end date: %w", err)
		}
		f.Until = &t
	}
	return f, nil
}

// queryTime undoes the '+' to ' ' substitution URL decoding applies to
// RFC3339 offsets such as 2018-08-29T15:00:00+02:00.
func queryTime(r *http.Request, name string) string {
	s := strings.TrimSpace(r.URL.Query().Get(name))
	if len(s) == len(time.RFC3339) && s[len(s)-6] == ' ' {
		s = s[:len(s)-6] + "+" + s[len(s)-5:]
	}
	return s
}

func parseBound(s string, endOfDay bool) (time.Time, error) {
	if d, err := time.Parse(dateOnly, s); err == nil {
		if endOfDay {
			return d.AddDate(0, 0, 1).Add(-time.Nanosecond), nil
		}
		return d, nil
	}
	return dataset.ParseTimestamp(s)
}
