package endpoints

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/simplystudent09/sanatan-spirituality/internal/db"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api"
	"github.com/simplystudent09/sanatan-spirituality/internal/http/api/site/packets"
	"github.com/simplystudent09/sanatan-spirituality/pkg/validator"
)

const (
	subscribedMessage        = "Successfully subscribed to our newsletter!"
	alreadySubscribedMessage = "You are already subscribed!"
)

type newsletterController struct {
	store db.Store
}

// NewsletterModule mounts the newsletter subscription endpoint.
func NewsletterModule(store db.Store) api.Module {
	ctl := &newsletterController{store: store}
	return api.ModuleFunc(func(c *api.Controller) {
		c.POST("/newsletter", ctl.subscribe)
	})
}

// POST /api/site/newsletter
func (ctl *newsletterController) subscribe(ctx *gin.Context) (any, *api.APIError) {
	var request packets.SubscribeRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: "invalid request body"}
	}

	if verr := validator.Validate(ctx, request); verr != nil {
		return nil, &api.APIError{Code: http.StatusBadRequest, Message: verr.Error()}
	}

	if _, err := ctl.store.CreateSubscriber(request.Email); err != nil {
		if errors.Is(err, db.ErrDuplicateSubscriber) {
			return nil, &api.APIError{Code: http.StatusConflict, Message: alreadySubscribedMessage}
		}
		log.Error().Err(err).Msg("failed to create newsletter subscriber")
		return nil, &api.APIError{Code: http.StatusInternalServerError, Message: "An error occurred. Please try again."}
	}

	return packets.MessageResponse{Message: subscribedMessage}, nil
}
