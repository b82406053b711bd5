package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/campusforge/showcase-backend/database"
)

type categoryHandler struct {
	responder  Responder
	logger     zerolog.Logger
	categories database.CategoryRepo
}

func newCategoryHandler(categories database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		categories: categories,
	}
}

// listCategories serves the static reference data behind the submit and
// edit forms: every category with its selectable option values.
func (h categoryHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categories.FindAll(r.Context())
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"categories": categories,
			"total":      len(categories),
		})
	}
}
