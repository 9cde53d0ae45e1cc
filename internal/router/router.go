package router // package router defines how HTTP routes are registered for the API

import (
	"errors"   // errors unwraps echo HTTP errors in the fallback handler
	"net/http" // net/http provides status code constants

	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/iliyamo/candidate-registry/internal/handler" // import the handlers that implement the API
)

// RegisterRoutes registers every route on the provided Echo instance and
// installs the fallback that answers unmatched requests.  The candidate
// routes live under /api/candidates; the read-only party routes live under
// /api/parties.
func RegisterRoutes(e *echo.Echo, ch *handler.CandidateHandler, ph *handler.PartyHandler) {
	// Replace echo's default error handler so unmatched routes answer an
	// empty-body 404 instead of echo's JSON not-found document.
	e.HTTPErrorHandler = fallbackErrorHandler

	// Map the GET request at path "/healthz" to the Health handler.  This
	// endpoint can be used by load balancers or monitoring systems to verify
	// that the service is up and running.
	e.GET("/healthz", handler.Health)

	api := e.Group("/api") // all API routes share the /api prefix
	// Register a GET endpoint returning every candidate joined with its party.
	api.GET("/candidates", ch.List)
	// Register a GET endpoint returning one candidate by id.
	api.GET("/candidates/:id", ch.Get)
	// Register a POST endpoint that validates and inserts a candidate.
	api.POST("/candidates", ch.Create)
	// Register a DELETE endpoint removing a candidate by id.
	api.DELETE("/candidates/:id", ch.Delete)
	// Register read-only party endpoints; parties are seeded reference data.
	api.GET("/parties", ph.List)
	api.GET("/parties/:id", ph.Get)
}

// fallbackErrorHandler maps routing misses to a bare 404.  Echo reports a
// known path with the wrong method as 405, but the API treats any
// unmatched verb/path pair the same way: 404 with an empty body.  Errors
// that already carry another status keep it, with a minimal JSON body.
func fallbackErrorHandler(err error, c echo.Context) {
	if c.Response().Committed { // a handler already wrote the response
		return
	}
	code := http.StatusInternalServerError // default when the error carries no status
	var he *echo.HTTPError
	if errors.As(err, &he) { // echo wraps routing misses in *echo.HTTPError
		code = he.Code
	}
	if code == http.StatusNotFound || code == http.StatusMethodNotAllowed {
		_ = c.NoContent(http.StatusNotFound) // empty body, per the API contract
		return
	}
	_ = c.JSON(code, map[string]string{"error": http.StatusText(code)})
}
