package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	itemHTTP "giftlist/internal/item/delivery/http"
	itemUC "giftlist/internal/item/usecase"
	"giftlist/internal/middleware"
	resHTTP "giftlist/internal/reservation/delivery/http"
	resUC "giftlist/internal/reservation/usecase"
)

// setupItemDomain initializes the item domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(srv.repo, ..., srv.l)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc, srv.events)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(api, h, mw)
func (srv *HTTPServer) setupItemDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := itemUC.New(srv.repo, srv.images, srv.l, srv.maxItemsPerList)
	h := itemHTTP.New(srv.l, uc, srv.events)
	itemHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Item domain registered")
}

func (srv *HTTPServer) setupReservationDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) {
	uc := resUC.New(srv.repo, srv.l)
	h := resHTTP.New(srv.l, uc, srv.events)
	resHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Reservation domain registered")
}
