package endpoints

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/db"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/packets"
	"github.com/simplystudent09/sanatan-spirituality/internal/model"
	"github.com/simplystudent09/sanatan-spirituality/internal/webhook"
)

const (
	joinValidationMessage = "Please fill in both name and contact number."
	joinThanksMessage     = "We have received your details. Our team will connect with you soon."
)

type joinController struct {
	store db.Store
	relay *webhook.Client
}

func newJoinController(store db.Store, relay *webhook.Client) *joinController {
	return &joinController{store: store, relay: relay}
}

// JoinModule mounts the lead-capture endpoint.
func JoinModule(store db.Store, relay *webhook.Client) api.Module {
	ctl := newJoinController(store, relay)
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/join", ctl.submitLead)
	})
}

// POST /api/site/join
//
// Acknowledges as soon as validation and the local insert succeed; webhook
// delivery happens in the background and cannot fail the request.
func (ctl *joinController) submitLead(ctx *gin.Context) (any, *api.APIError) {
	var request packets.JoinRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	name := strings.TrimSpace(request.Name)
	contactNumber := strings.TrimSpace(request.ContactNumber)
	if name == "" || contactNumber == "" {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: joinValidationMessage}
	}

	if !model.IsValidService(request.Service) {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "unknown service selection"}
	}

	lead, err := ctl.store.CreateLead(name, contactNumber, request.Service)
	if err != nil {
		log.Error().Err(err).Msg("failed to record lead")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "Something went wrong. Please try again."}
	}

	ctl.relay.DeliverLeadAsync(lead)

	return packets.MessageResponse{Message: joinThanksMessage}, nil
}
