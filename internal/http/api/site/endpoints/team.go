package endpoints

import (
	"github.com/gin-gonic/gin"

	"github.com/simplystudent09/sanatan-spirituality/internal/content"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/packets"
)

// TeamModule mounts the team and statistics endpoints.
func TeamModule(svc *content.Service) api.Module {
	ctl := newContentController(svc)
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/team", ctl.listTeam)
		c.GET("/statistics", ctl.listStatistics)
	})
}

// GET /api/site/team
func (ctl *contentController) listTeam(ctx *gin.Context) (any, *api.APIError) {
	groups := ctl.content.Team(ctx.Request.Context())
	return packets.TeamResponse{Groups: groups}, nil
}

// GET /api/site/statistics
func (ctl *contentController) listStatistics(ctx *gin.Context) (any, *api.APIError) {
	stats := ctl.content.Statistics(ctx.Request.Context())
	return packets.StatisticsResponse{Statistics: stats}, nil
}
