package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/contactly/clients-api/internal/api/metrics"
	"github.com/contactly/clients-api/internal/core/domain"
	"github.com/contactly/clients-api/internal/core/ports"
)

const dateLayout = "2006-01-02"

// ClientHandler handles HTTP requests for client record operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List handles GET /clients/.
//
// @Summary      List all clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   clientResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      429  {object}  errorResponse
// @Router       /clients/ [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponses(clients))
}

// Birthday handles GET /clients/birthday.
//
// The window is a literal day/month band: each birthday's day and month are
// compared independently against the bounds, ignoring year. Windows that
// cross a month boundary match nothing useful; this mirrors the documented
// production behavior.
//
// @Summary      List clients with upcoming birthdays
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        start_date  query     string  false  "Window start (YYYY-MM-DD, default today)"
// @Param        end_date    query     string  false  "Window end (YYYY-MM-DD, default today+7d)"
// @Success      200         {array}   clientResponse
// @Failure      400         {object}  errorResponse
// @Failure      401         {object}  errorResponse
// @Failure      403         {object}  errorResponse
// @Router       /clients/birthday [get]
func (h *ClientHandler) Birthday(c echo.Context) error {
	start, err := parseDateParam(c.QueryParam("start_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "start_date must be a date in format "+dateLayout)
	}
	end, err := parseDateParam(c.QueryParam("end_date"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "end_date must be a date in format "+dateLayout)
	}

	clients, err := h.service.ListByBirthday(c.Request().Context(), start, end)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponses(clients))
}

// Get handles GET /clients/:id.
//
// @Summary      Get a client by id
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Client id (>= 1)"
// @Success      200  {object}  clientResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	client, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(client))
}

// Create handles POST /clients/.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      201   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /clients/ [post]
func (h *ClientHandler) Create(c echo.Context) error {
	in, err := bindClientInput(c)
	if err != nil {
		return err
	}

	created, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return err
	}

	metrics.ClientsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toClientResponse(created))
}

// Update handles PUT /clients/:id.
//
// @Summary      Replace a client record
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int            true  "Client id (>= 1)"
// @Param        body  body      clientRequest  true  "Full replacement payload"
// @Success      200   {object}  clientResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	in, err := bindClientInput(c)
	if err != nil {
		return err
	}

	updated, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toClientResponse(updated))
}

// Delete handles DELETE /clients/:id.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  int  true  "Client id (>= 1)"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if _, err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	metrics.ClientsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}

// --- helpers ---

// pathID parses the :id path parameter. Anything that is not an integer >= 1
// is rejected here, before the service or store is touched.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, domain.ErrInvalidID
	}
	return id, nil
}

func parseDateParam(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(dateLayout, raw)
}

func bindClientInput(c echo.Context) (ports.ClientInput, error) {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return ports.ClientInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ClientInput{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	birthday, err := time.Parse(dateLayout, req.Birthday)
	if err != nil {
		return ports.ClientInput{}, echo.NewHTTPError(http.StatusBadRequest, "birthday must be a date in format "+dateLayout)
	}

	return ports.ClientInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Mobile:    req.Mobile,
		Birthday:  birthday,
		AddInfo:   req.AddInfo,
	}, nil
}

func toClientResponse(c *domain.Client) clientResponse {
	return clientResponse{
		ID:        c.ID,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Mobile:    c.Mobile,
		Birthday:  c.Birthday.Format(dateLayout),
		AddInfo:   c.AddInfo,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func toClientResponses(clients []*domain.Client) []clientResponse {
	out := make([]clientResponse, 0, len(clients))
	for _, c := range clients {
		out = append(out, toClientResponse(c))
	}
	return out
}
