package handler // handler package contains the candidate CRUD handlers

import (
	"fmt"      // fmt stringifies loosely typed body values
	"net/http" // http provides status code constants
	"strconv"  // strconv parses optional numeric body values

	"github.com/labstack/echo/v4" // echo is the web framework used for handlers

	"github.com/iliyamo/candidate-registry/internal/model"      // model holds the persisted entities
	"github.com/iliyamo/candidate-registry/internal/repository" // repository holds the data access layer
	"github.com/iliyamo/candidate-registry/internal/validate"   // validate checks required body fields
)

// candidateFields lists the body fields a POST must carry.
var candidateFields = []string{"first_name", "last_name", "industry_connected"}

// CandidateHandler bundles the candidate repository for the CRUD routes
type CandidateHandler struct {
	Repo *repository.CandidateRepo // Repo provides candidate persistence
}

// NewCandidateHandler constructs a CandidateHandler and panics if the repository is nil
func NewCandidateHandler(repo *repository.CandidateRepo) *CandidateHandler {
	if repo == nil { // check for a missing dependency
		panic("nil repository passed to NewCandidateHandler") // panic when the repository is missing
	}
	return &CandidateHandler{Repo: repo}
}

// List handles GET /api/candidates and returns every candidate joined with its party
func (h *CandidateHandler) List(c echo.Context) error { // begin List handler
	items, err := h.Repo.ListWithParty(c.Request().Context()) // fetch all candidates with party names
	if err != nil {                                           // handle repository errors
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()}) // forward the driver message with 500
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "success", "data": items}) // return the list in the success envelope
}

// Get handles GET /api/candidates/:id and returns one candidate or an empty envelope
func (h *CandidateHandler) Get(c echo.Context) error { // begin Get handler
	item, err := h.Repo.GetWithParty(c.Request().Context(), c.Param("id")) // fetch one candidate by path id
	if err != nil {                                                       // handle repository errors
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) // forward the driver message with 400
	}
	envelope := map[string]any{"message": "success"} // base success envelope
	if item != nil {                                 // a missing id keeps the data key absent
		envelope["data"] = item // attach the row when one matched
	}
	return c.JSON(http.StatusOK, envelope) // missing ids still answer 200
}

// Create handles POST /api/candidates: validate the body, insert, echo it back with the new id
func (h *CandidateHandler) Create(c echo.Context) error { // begin Create handler
	body := map[string]any{}              // bind into a map so absent and null fields stay distinguishable
	if err := c.Bind(&body); err != nil { // attempt to decode the request body
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"}) // return bad request when decoding fails
	}
	if msgs := validate.Required(body, candidateFields); msgs != nil { // run the field checks
		return c.JSON(http.StatusBadRequest, map[string]any{"error": msgs}) // one message per missing or mistyped field
	}
	flag, _ := validate.BoolLike(body["industry_connected"]) // normalize the boolean-like flag to 0/1
	cand := &model.Candidate{                                // build the row to insert
		FirstName:         asString(body["first_name"]), // first name as submitted
		LastName:          asString(body["last_name"]),  // last name as submitted
		IndustryConnected: flag,                         // normalized flag
		PartyID:           asPartyID(body["party_id"]),  // optional party reference
	}
	if err := h.Repo.Create(c.Request().Context(), cand); err != nil { // insert via the repository
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) // forward the driver message with 400
	}
	return c.JSON(http.StatusOK, map[string]any{ // echo the body back with the assigned id
		"message": "success, candidate created",
		"data":    body,
		"id":      cand.ID,
	})
}

// Delete handles DELETE /api/candidates/:id and reports how many rows went away
func (h *CandidateHandler) Delete(c echo.Context) error { // begin Delete handler
	changes, err := h.Repo.DeleteByID(c.Request().Context(), c.Param("id")) // delete by path id
	if err != nil {                                                        // handle repository errors
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()}) // forward the driver message with 400
	}
	return c.JSON(http.StatusOK, map[string]any{"message": "successfully deleted", "changes": changes}) // zero changes for an absent id is still success
}

// asString renders a decoded JSON value as a string for storage.
func asString(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// asPartyID extracts an optional numeric party reference from the body.
// Absent, null, or non-numeric values store NULL.
func asPartyID(v any) *int64 {
	switch t := v.(type) {
	case float64: // encoding/json decodes all numbers as float64
		id := int64(t)
		return &id
	case string:
		if id, err := strconv.ParseInt(t, 10, 64); err == nil {
			return &id
		}
	}
	return nil
}
