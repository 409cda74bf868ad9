package handlers

import "net/http"

// Notifier queues one-shot notices shown on the operator's next history
// fetch. Satisfied by *flash.Store; a nil Notifier disables notices.
type Notifier interface {
	Add(w http.ResponseWriter, r *http.Request, notice string) error
	Pop(w http.ResponseWriter, r *http.Request) []string
}
