package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vmelikhov/orderdesk/internal/utils"
)

// me responds with the authenticated user's record. Every branch terminates
// in exactly one response: either the user record or an unauthorized error.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

// userOrders lists the orders of the user named in the path. Any
// authenticated viewer may read any existing user's orders; the ownership
// check in the service only selects the cheaper query path.
func (h *Handler) userOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	viewer, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, ErrUnauthorized)
		return
	}

	username := chi.URLParam(r, "username")

	orders, err := h.services.OrderService.ListOrdersForUsername(ctx, *viewer, username)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}
