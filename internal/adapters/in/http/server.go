// Package http is the REST adapter. It implements servers.ServerInterface on
// top of the command and query handlers and translates domain errors into
// HTTP statuses.
package http

import (
	"context"
	"fmt"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/courier"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	// CreateCourierHandler registers a courier.
	CreateCourierHandler interface {
		Handle(ctx context.Context, cmd commands.CreateCourierCommand) (*courier.Courier, error)
	}

	// AddCourierStorageHandler adds a storage place to a courier.
	AddCourierStorageHandler interface {
		Handle(ctx context.Context, cmd commands.AddCourierStorageCommand) error
	}

	// CreateOrderHandler accepts an order.
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) error
	}

	// GetAllCouriersHandler lists couriers.
	GetAllCouriersHandler interface {
		Handle(ctx context.Context, q queries.GetAllCouriersQuery) ([]queries.CourierView, error)
	}

	// GetUncompletedOrdersHandler lists orders that are not delivered yet.
	GetUncompletedOrdersHandler interface {
		Handle(ctx context.Context, q queries.GetUncompletedOrdersQuery) ([]queries.OrderView, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	CreateCourier        CreateCourierHandler
	AddCourierStorage    AddCourierStorageHandler
	CreateOrder          CreateOrderHandler
	GetAllCouriers       GetAllCouriersHandler
	GetUncompletedOrders GetUncompletedOrdersHandler
}

// Server implements servers.ServerInterface. Use case errors are returned
// unchanged and turned into responses by the handler from NewErrorHandler.
type Server struct {
	h Handlers
}

var _ servers.ServerInterface = (*Server)(nil)

// NewServer serves the given handlers.
func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// GetCouriers handles GET /api/v1/couriers.
func (s *Server) GetCouriers(c echo.Context) error {
	views, err := s.h.GetAllCouriers.Handle(c.Request().Context(), queries.NewGetAllCouriersQuery())
	if err != nil {
		return err
	}

	resp := make([]servers.Courier, 0, len(views))
	for _, v := range views {
		resp = append(resp, servers.Courier{
			Id:       v.ID.Google(),
			Name:     v.Name,
			Location: toLocationDTO(v.Location),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// CreateCourier places the courier at a random point when no location is given.
func (s *Server) CreateCourier(c echo.Context) error {
	var body servers.CreateCourierJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return errBadRequestBody(err)
	}

	var loc kernel.Location
	if body.Location != nil {
		var err error
		if loc, err = fromLocationDTO(*body.Location); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCreateCourierCommand(body.Name, body.Speed, loc)
	if err != nil {
		return err
	}

	created, err := s.h.CreateCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedResource{Id: created.ID().Google()})
}

// AddStoragePlace handles POST /api/v1/couriers/{courierId}/storage-places.
func (s *Server) AddStoragePlace(c echo.Context, courierID openapi_types.UUID) error {
	var body servers.AddStoragePlaceJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return errBadRequestBody(err)
	}

	id, err := kernel.UUIDFromGoogle(courierID)
	if err != nil {
		return err
	}

	cmd, err := commands.NewAddCourierStorageCommand(id, body.Name, body.TotalVolume)
	if err != nil {
		return err
	}

	if err := s.h.AddCourierStorage.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.NoContent(http.StatusCreated)
}

// CreateOrder generates an order id when the client does not supply one.
func (s *Server) CreateOrder(c echo.Context) error {
	var body servers.CreateOrderJSONRequestBody
	if err := c.Bind(&body); err != nil {
		return errBadRequestBody(err)
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		var err error
		if orderID, err = kernel.UUIDFromGoogle(*body.OrderId); err != nil {
			return err
		}
	}

	cmd, err := commands.NewCreateOrderCommand(orderID, body.Street, body.Volume)
	if err != nil {
		return err
	}

	if err := s.h.CreateOrder.Handle(c.Request().Context(), cmd); err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, servers.CreatedResource{Id: orderID.Google()})
}

// GetActiveOrders handles GET /api/v1/orders/active.
func (s *Server) GetActiveOrders(c echo.Context) error {
	views, err := s.h.GetUncompletedOrders.Handle(c.Request().Context(), queries.NewGetUncompletedOrdersQuery())
	if err != nil {
		return err
	}

	resp := make([]servers.Order, 0, len(views))
	for _, v := range views {
		resp = append(resp, servers.Order{
			Id:       v.ID.Google(),
			Location: toLocationDTO(v.Location),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

func toLocationDTO(loc kernel.Location) servers.Location {
	return servers.Location{X: int(loc.X()), Y: int(loc.Y())}
}

func fromLocationDTO(dto servers.Location) (kernel.Location, error) {
	if dto.X < int(kernel.LocationMinX) || dto.X > int(kernel.LocationMaxX) ||
		dto.Y < int(kernel.LocationMinY) || dto.Y > int(kernel.LocationMaxY) {
		return kernel.Location{}, errs.NewValueIsOutOfRangeError("location",
			fmt.Sprintf("(%d,%d)", dto.X, dto.Y), kernel.MinLocation(), kernel.MaxLocation())
	}
	return kernel.NewLocation(kernel.Coordinate(dto.X), kernel.Coordinate(dto.Y))
}
