package handler

import "net/http"

// HandleNotFound answers any path that matched no route
func HandleNotFound() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondText(w, r, http.StatusNotFound, ErrMsgNotFound)
	}
}

// HandleMethodNotAllowed answers a known path requested with a method other than GET
func HandleMethodNotAllowed() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(HeaderAllow, AllowedMethods)
		respondText(w, r, http.StatusMethodNotAllowed, ErrMsgMethodNotAllowed)
	}
}

// HandleServiceUnavailable answers requests that could not be scheduled
func HandleServiceUnavailable() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondText(w, r, http.StatusServiceUnavailable, ErrMsgServiceUnavailable)
	}
}
