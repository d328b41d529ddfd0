// Package http provides the inbound HTTP adapter: the echo server, the JWT
// auth middleware and the mapping between wire payloads and application
// commands and queries.
package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"atelier/internal/core/application/usecases/commands"
	"atelier/internal/core/application/usecases/queries"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/order"
	"atelier/internal/core/ports"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime/types"
)

// Handler interfaces keep the server decoupled from the concrete use case
// implementations; the composition root wires the real handlers in.
type (
	createOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}
	startOrderCommandHandler interface {
		Handle(ctx context.Context, cmd commands.StartOrderCommand) error
	}
	deliverContentCommandHandler interface {
		Handle(ctx context.Context, cmd commands.DeliverContentCommand) error
	}
	addFeedbackCommandHandler interface {
		Handle(ctx context.Context, cmd commands.AddFeedbackCommand) error
	}
	getOrderQueryHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	listOrdersQueryHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderView, error)
	}
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler    createOrderCommandHandler
	startOrderHandler     startOrderCommandHandler
	deliverContentHandler deliverContentCommandHandler
	addFeedbackHandler    addFeedbackCommandHandler

	getOrderHandler   getOrderQueryHandler
	listOrdersHandler listOrdersQueryHandler

	files ports.FileStore
}

// NewServer creates a new HTTP server with the required command and query
// handlers and the file store used for uploads.
func NewServer(
	createOrderHandler createOrderCommandHandler,
	startOrderHandler startOrderCommandHandler,
	deliverContentHandler deliverContentCommandHandler,
	addFeedbackHandler addFeedbackCommandHandler,
	getOrderHandler getOrderQueryHandler,
	listOrdersHandler listOrdersQueryHandler,
	files ports.FileStore,
) *Server {
	return &Server{
		createOrderHandler:    createOrderHandler,
		startOrderHandler:     startOrderHandler,
		deliverContentHandler: deliverContentHandler,
		addFeedbackHandler:    addFeedbackHandler,
		getOrderHandler:       getOrderHandler,
		listOrdersHandler:     listOrdersHandler,
		files:                 files,
	}
}

// RegisterRoutes mounts the order API under /api with the given auth middleware.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	api := e.Group("/api", auth)
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
}

// updateOrderRequest is the multiplexed PUT payload. The action field selects
// the operation; the remaining fields are read per action.
type updateOrderRequest struct {
	Action      string `json:"action" form:"action"`
	Status      string `json:"status" form:"status"`
	Type        string `json:"type" form:"type"`
	Message     string `json:"message" form:"message"`
	Description string `json:"description" form:"description"`
}

// CreateOrder handles POST /api/orders.
//
//	@Summary	Place a new order
//	@Tags		orders
//	@Accept		mpfd
//	@Produce	json
//	@Param		title		formData	string	true	"Order title"
//	@Param		description	formData	string	false	"Free-form brief"
//	@Param		priority	formData	string	false	"NORMAL, URGENT or CRITICAL"
//	@Param		dueDate		formData	string	false	"Requested completion date (YYYY-MM-DD)"
//	@Param		file0		formData	file	false	"Reference files, numbered file0..fileN"
//	@Success	201			{object}	OrderResponse
//	@Failure	400			{object}	ErrorResponse
//	@Failure	401			{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders [post]
func (s *Server) CreateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c, err.Error())
	}

	title := c.FormValue("title")

	priorityValue := c.FormValue("priority")
	if priorityValue == "" {
		priorityValue = order.PriorityNormal.String()
	}
	priority, err := order.PriorityFromString(priorityValue)
	if err != nil {
		return writeError(c, err)
	}

	var dueDate *time.Time
	if raw := c.FormValue("dueDate"); raw != "" {
		parsed, parseErr := time.Parse(types.DateFormat, raw)
		if parseErr != nil {
			return badRequest(c, "dueDate must be formatted as YYYY-MM-DD")
		}
		dueDate = &parsed
	}

	attachments, err := s.saveUploads(c)
	if err != nil {
		return writeError(c, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, actor, title, c.FormValue("description"), priority, dueDate, attachments)
	if err != nil {
		return writeError(c, err)
	}

	if err = s.createOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
		return writeError(c, err)
	}

	return s.respondWithOrder(c, http.StatusCreated, orderID, actor)
}

// ListOrders handles GET /api/orders.
//
//	@Summary	List visible orders, newest first
//	@Tags		orders
//	@Produce	json
//	@Success	200	{array}		OrderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders [get]
func (s *Server) ListOrders(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c, err.Error())
	}

	query, err := queries.NewListOrdersQuery(actor)
	if err != nil {
		return writeError(c, err)
	}

	views, err := s.listOrdersHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	response := make([]OrderResponse, 0, len(views))
	for _, view := range views {
		response = append(response, toOrderResponse(view))
	}

	return c.JSON(http.StatusOK, response)
}

// GetOrder handles GET /api/orders/:id.
//
//	@Summary	Fetch one order with its complete state
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	401	{object}	ErrorResponse
//	@Failure	403	{object}	ErrorResponse
//	@Failure	404	{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders/{id} [get]
func (s *Server) GetOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c, err.Error())
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id must be a valid UUID")
	}

	return s.respondWithOrder(c, http.StatusOK, orderID, actor)
}

// UpdateOrder handles PUT /api/orders/:id.
//
// The request is multiplexed on the action field:
//   - updateStatus: request the IN_PROGRESS transition (administrators)
//   - addAdminContent: publish delivered content (administrators)
//   - addFeedback: record the client's verdict on delivered content
//
//	@Summary	Apply a lifecycle action to an order
//	@Tags		orders
//	@Accept		json
//	@Accept		mpfd
//	@Produce	json
//	@Param		id		path		string				true	"Order id"
//	@Param		request	body		updateOrderRequest	true	"Action payload"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Failure	401		{object}	ErrorResponse
//	@Failure	403		{object}	ErrorResponse
//	@Failure	404		{object}	ErrorResponse
//	@Security	BearerAuth
//	@Router		/orders/{id} [put]
func (s *Server) UpdateOrder(c echo.Context) error {
	actor, err := actorFromContext(c)
	if err != nil {
		return unauthorized(c, err.Error())
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return badRequest(c, "id must be a valid UUID")
	}

	req, err := s.bindUpdateRequest(c)
	if err != nil {
		return badRequest(c, "invalid request body")
	}

	switch req.Action {
	case "updateStatus":
		if req.Status != order.InProgress.String() {
			return badRequest(c, "only the IN_PROGRESS transition can be requested directly")
		}
		cmd, cmdErr := commands.NewStartOrderCommand(orderID, actor)
		if cmdErr != nil {
			return writeError(c, cmdErr)
		}
		if err = s.startOrderHandler.Handle(c.Request().Context(), cmd); err != nil {
			return writeError(c, err)
		}

	case "addAdminContent":
		files, uploadErr := s.saveUploads(c)
		if uploadErr != nil {
			return writeError(c, uploadErr)
		}
		cmd, cmdErr := commands.NewDeliverContentCommand(orderID, actor, req.Description, files)
		if cmdErr != nil {
			return writeError(c, cmdErr)
		}
		if err = s.deliverContentHandler.Handle(c.Request().Context(), cmd); err != nil {
			return writeError(c, err)
		}

	case "addFeedback":
		feedbackType, typeErr := order.FeedbackTypeFromString(req.Type)
		if typeErr != nil {
			return writeError(c, typeErr)
		}
		cmd, cmdErr := commands.NewAddFeedbackCommand(orderID, actor, feedbackType, req.Message)
		if cmdErr != nil {
			return writeError(c, cmdErr)
		}
		if err = s.addFeedbackHandler.Handle(c.Request().Context(), cmd); err != nil {
			return writeError(c, err)
		}

	default:
		return badRequest(c, fmt.Sprintf("unknown action %q", req.Action))
	}

	return s.respondWithOrder(c, http.StatusOK, orderID, actor)
}

// bindUpdateRequest reads the action payload from either a JSON body or a
// multipart/url-encoded form.
func (s *Server) bindUpdateRequest(c echo.Context) (updateOrderRequest, error) {
	var req updateOrderRequest

	contentType := c.Request().Header.Get(echo.HeaderContentType)
	if strings.HasPrefix(contentType, echo.MIMEApplicationJSON) {
		if err := c.Bind(&req); err != nil {
			return updateOrderRequest{}, err
		}
		return req, nil
	}

	req.Action = c.FormValue("action")
	req.Status = c.FormValue("status")
	req.Type = c.FormValue("type")
	req.Message = c.FormValue("message")
	req.Description = c.FormValue("description")
	return req, nil
}

// saveUploads stores the files of a multipart request and returns their
// attachment records. Files are read from numbered fields file0..fileN; the
// loop stops at the first missing index and empty files are skipped.
func (s *Server) saveUploads(c echo.Context) ([]order.Attachment, error) {
	var attachments []order.Attachment

	for i := 0; ; i++ {
		header, err := c.FormFile(fmt.Sprintf("file%d", i))
		if err != nil {
			break
		}
		if header.Size == 0 {
			continue
		}

		file, err := header.Open()
		if err != nil {
			return nil, err
		}

		stored, err := s.files.Save(c.Request().Context(), ports.FileUpload{
			Name:        header.Filename,
			ContentType: header.Header.Get(echo.HeaderContentType),
			Size:        header.Size,
			Content:     file,
		})
		file.Close()
		if err != nil {
			return nil, err
		}

		attachment, err := order.NewAttachment(
			kernel.NewUUID(),
			stored.Name,
			header.Filename,
			header.Header.Get(echo.HeaderContentType),
			header.Size,
			stored.Location,
		)
		if err != nil {
			return nil, err
		}

		attachments = append(attachments, attachment)
	}

	return attachments, nil
}

func (s *Server) respondWithOrder(c echo.Context, status int, orderID kernel.UUID, actor kernel.Actor) error {
	query, err := queries.NewGetOrderQuery(orderID, actor)
	if err != nil {
		return writeError(c, err)
	}

	view, err := s.getOrderHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(status, toOrderResponse(view))
}
