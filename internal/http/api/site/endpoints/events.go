package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/simplystudent09/sanatan-spirituality/internal/content"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/packets"
)

type contentController struct {
	content *content.Service
}

func newContentController(svc *content.Service) *contentController {
	return &contentController{content: svc}
}

// EventsModule mounts the public events endpoint.
func EventsModule(svc *content.Service) api.Module {
	ctl := newContentController(svc)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/events", ctl.listEvents)
	})
}

// GET /api/site/events?category=Festival
func (ctl *contentController) listEvents(ctx *gin.Context) (any, *api.APIError) {
	category := ctx.Query("category")

	featured, events := ctl.content.Events(ctx.Request.Context(), category)

	return packets.EventsResponse{
		Featured: featured,
		Events:   events,
	}, nil
}
