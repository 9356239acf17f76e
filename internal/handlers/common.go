package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"
	"time"
)

const handlerTimeout = 10 * time.Second

const flashCookie = "onboard_flash"

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// setFlash stages a one-shot notification for the next page load.
func setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60,
	})
}

// popFlash reads and clears the staged notification, if any.
func popFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

// firstError picks one message from a validation map in a stable field order,
// for the single form-level error line the pages show.
func firstError(errs map[string]string, fields ...string) string {
	for _, field := range fields {
		if msg, ok := errs[field]; ok {
			return msg
		}
	}
	for _, msg := range errs {
		return msg
	}
	return ""
}
