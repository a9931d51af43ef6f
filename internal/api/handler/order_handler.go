package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/tacocloud/tacocloud/internal/api/metrics"
	"github.com/tacocloud/tacocloud/internal/core/domain"
	"github.com/tacocloud/tacocloud/internal/core/ports"
)

// OrderHandler serves the order review, checkout, and history pages.
type OrderHandler struct {
	orderService  ports.OrderService
	designService ports.DesignService
}

func NewOrderHandler(orderService ports.OrderService, designService ports.DesignService) *OrderHandler {
	return &OrderHandler{orderService: orderService, designService: designService}
}

type checkoutForm struct {
	DeliveryName    string `form:"deliveryName" validate:"required"`
	DeliveryAddress string `form:"deliveryAddress" validate:"required"`
	DeliveryCity    string `form:"deliveryCity" validate:"required"`
	DeliveryState   string `form:"deliveryState" validate:"required"`
	DeliveryZip     string `form:"deliveryZip" validate:"required"`
	CCNumber        string `form:"ccNumber" validate:"required,credit_card"`
	CCExpiration    string `form:"ccExpiration" validate:"required"`
	CCCVV           string `form:"ccCVV" validate:"required,len=3,numeric"`
}

type orderFormPage struct {
	Draft *domain.Order
	Form  checkoutForm
	Error string
}

// Current handles GET /orders/current: the review page for the session draft.
func (h *OrderHandler) Current(c echo.Context) error {
	if _, _, err := ctxIdentity(c); err != nil {
		return err
	}

	draft, err := h.designService.Draft(c.Request().Context(), cartID(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "order_form.html", orderFormPage{Draft: draft})
}

// Checkout handles POST /orders: validate the delivery and payment fields and
// persist the draft as a placed order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	sid := cartID(c)

	var form checkoutForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form submission")
	}
	if err := c.Validate(&form); err != nil {
		draft, draftErr := h.designService.Draft(c.Request().Context(), sid)
		if draftErr != nil {
			return draftErr
		}
		return c.Render(http.StatusBadRequest, "order_form.html", orderFormPage{
			Draft: draft,
			Form:  form,
			Error: err.Error(),
		})
	}

	start := time.Now()
	_, err = h.orderService.Checkout(c.Request().Context(), sid, userID, ports.CheckoutInput{
		DeliveryName:    form.DeliveryName,
		DeliveryAddress: form.DeliveryAddress,
		DeliveryCity:    form.DeliveryCity,
		DeliveryState:   form.DeliveryState,
		DeliveryZip:     form.DeliveryZip,
		CCNumber:        form.CCNumber,
		CCExpiration:    form.CCExpiration,
		CCCVV:           form.CCCVV,
	})
	metrics.OrderSaveDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.OrdersPlacedTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.OrdersPlacedTotal.WithLabelValues("ok").Inc()
	return c.Redirect(http.StatusFound, "/")
}

type orderListPage struct {
	Orders []*domain.Order
}

// History handles GET /orders: the user's placed orders, newest first.
func (h *OrderHandler) History(c echo.Context) error {
	_, userID, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	orders, err := h.orderService.History(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "order_list.html", orderListPage{Orders: orders})
}
