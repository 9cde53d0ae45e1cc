package handler // handler package also serves the read-only party routes

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/candidate-registry/internal/repository" // repository holds the data access layer
)

// PartyHandler bundles the party repository for the read-only routes
type PartyHandler struct {
	Repo *repository.PartyRepo // Repo provides party lookups
}

// NewPartyHandler constructs a PartyHandler and panics if the repository is nil
func NewPartyHandler(repo *repository.PartyRepo) *PartyHandler {
	if repo == nil { // check for a missing dependency
		panic("nil repository passed to NewPartyHandler") // panic when the repository is missing
	}
	return &PartyHandler{Repo: repo}
}

// List handles GET /api/parties and returns the full party reference list
func (h *PartyHandler) List(c echo.Context) error { // begin List handler
	items, err := h.Repo.List(c.Request().Context()) // fetch all parties
	if err != nil {                                  // handle repository errors
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) // forward the driver message with 500
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "success", "data": items}) // return the list in the success envelope
}

// Get handles GET /api/parties/:id and returns one party or an empty envelope
func (h *PartyHandler) Get(c echo.Context) error { // begin Get handler
	item, err := h.Repo.GetByID(c.Request().Context(), c.Param("id")) // fetch one party by path id
	if err != nil {                                                  // handle repository errors
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) // forward the driver message with 400
	}
	envelope := map[string]any{"message": "success"} // base success envelope
	if item != nil {                                 // a missing id keeps the data key absent
		envelope["data"] = item // attach the row when one matched
	}
	return c.JSON(http.StatusOK, envelope) // missing ids still answer 200
}
