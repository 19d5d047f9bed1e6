package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskboard/backend/api/transport"
	"github.com/taskboard/backend/domain"
	"github.com/taskboard/backend/pkg/httpcontext"
	"github.com/taskboard/backend/usecase"
	activityUC "github.com/taskboard/backend/usecase/activity"
)

type ActivityHandler struct {
	baseHandler
	uc *activityUC.UseCase
}

func NewActivityHandler(uc *activityUC.UseCase, adapter *httpcontext.Adapter, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		baseHandler: newBaseHandler(adapter, logger),
		uc:          uc,
	}
}

// @Summary List the caller's activity log, newest first
// @Tags activities
// @Router /api/v1/activities [get]
func (h *ActivityHandler) List(ctx *fasthttp.RequestCtx) {
	userID := h.userID(ctx)
	if userID == "" {
		return
	}

	args := ctx.QueryArgs()
	page := parseInt(string(args.Peek("page")), 1)
	pageSize := parseInt(string(args.Peek("page_size")), usecase.DefaultPageSize)

	stdCtx, cancel := h.requestContext(ctx)
	defer cancel()

	activities, total, err := h.uc.List(stdCtx, userID, page, pageSize)
	if err != nil {
		h.respondError(ctx, err)
		return
	}
	if activities == nil {
		activities = []domain.Activity{}
	}

	page, size := usecase.NormalizePage(page, pageSize)
	h.respondSuccess(ctx, http.StatusOK, transport.NewPage(ctx.URI(), page, size, total, activities))
}
