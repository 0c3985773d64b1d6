package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/masterroofing/sales-insights-service/docs"
	"github.com/masterroofing/sales-insights-service/internal/dto"
	"github.com/masterroofing/sales-insights-service/internal/service"
)

type Handler struct {
	eventService    service.EventServicer
	insightsService service.InsightsServicer
	router          *gin.Engine
	log             *zap.Logger
}

func NewHandler(eventService service.EventServicer, insightsService service.InsightsServicer, log *zap.Logger) *Handler {
	h := &Handler{
		eventService:    eventService,
		insightsService: insightsService,
		router:          gin.Default(),
		log:             log,
	}

	h.registerRoutes()

	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) registerRoutes() {
	h.router.GET("/health", h.healthCheck)
	h.router.POST("/events", h.publishEvent)
	h.router.POST("/events/bulk", h.publishEventsBulk)
	h.router.POST("/insights/refresh", h.refreshInsights)
	h.router.GET("/insights/actors", h.getActors)
	h.router.GET("/insights/pairings", h.getPairings)
	h.router.GET("/insights/ask", h.ask)
	h.router.GET("/insights/board", h.getBoard)
	h.router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheck handles health check requests
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// publishEvent handles POST /events
// @Summary Publish a single sales event
// @Description Publish a single sales event to the ingestion queue
// @Tags events
// @Accept json
// @Produce json
// @Param event body dto.PublishEventRequest true "Event data"
// @Success 202 {object} dto.PublishEventResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events [post]
func (h *Handler) publishEvent(c *gin.Context) {
	var req dto.PublishEventRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("Invalid event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventID, err := h.eventService.ProcessEvent(&req)
	if err != nil {
		h.log.Warn("Failed to process event",
			zap.Error(err),
			zap.String("event_type", req.EventType),
			zap.String("project_name", req.ProjectName))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Event accepted",
		zap.String("event_id", eventID),
		zap.String("event_type", req.EventType))

	c.JSON(http.StatusAccepted, dto.PublishEventResponse{
		EventID: eventID,
		Status:  "accepted",
	})
}

// publishEventsBulk handles POST /events/bulk
// @Summary Publish multiple sales events
// @Description Publish multiple sales events in bulk to the ingestion queue
// @Tags events
// @Accept json
// @Produce json
// @Param events body dto.PublishEventsBulkRequest true "Bulk events data"
// @Success 202 {object} dto.PublishBulkEventsResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /events/bulk [post]
func (h *Handler) publishEventsBulk(c *gin.Context) {
	var bulkRequest dto.PublishEventsBulkRequest

	if err := c.ShouldBindJSON(&bulkRequest); err != nil {
		h.log.Warn("Invalid bulk event request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	eventIDs, errs, err := h.eventService.ProcessBulkEvents(bulkRequest.Events)
	if err != nil {
		h.log.Error("Failed to process bulk events",
			zap.Error(err),
			zap.Int("event_count", len(bulkRequest.Events)))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	h.log.Info("Bulk events processed",
		zap.Int("accepted", len(eventIDs)),
		zap.Int("rejected", len(errs)))

	c.JSON(http.StatusAccepted, dto.PublishBulkEventsResponse{
		Accepted: len(eventIDs),
		Rejected: len(errs),
		EventIDs: eventIDs,
		Errors:   errs,
	})
}

// refreshInsights handles POST /insights/refresh
// @Summary Refresh the insights snapshot
// @Description Re-fetch the event snapshot and rebuild all derived metrics
// @Tags insights
// @Produce json
// @Success 200 {object} dto.RefreshResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/refresh [post]
func (h *Handler) refreshInsights(c *gin.Context) {
	report, err := h.insightsService.Refresh(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to refresh insights", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.RefreshResponse{
		Status:    "refreshed",
		Events:    len(report.Events),
		Pairings:  len(report.Pairings),
		Actors:    len(report.Actors),
		Malformed: report.Malformed,
	})
}

// getActors handles GET /insights/actors
// @Summary Get per-actor sales metrics
// @Description Retrieve win rates, turnaround averages and deal sizes per actor
// @Tags insights
// @Produce json
// @Success 200 {object} dto.ActorMetricsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/actors [get]
func (h *Handler) getActors(c *gin.Context) {
	totals, actors, err := h.insightsService.Actors(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get actor metrics", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.ActorMetricsResponse{
		Totals: totals,
		Actors: actors,
	})
}

// getPairings handles GET /insights/pairings
// @Summary Get RFP-to-proposal pairings
// @Description Retrieve the derived turnaround pairings per project
// @Tags insights
// @Produce json
// @Success 200 {object} dto.PairingsResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/pairings [get]
func (h *Handler) getPairings(c *gin.Context) {
	pairings, err := h.insightsService.Pairings(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to get pairings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.PairingsResponse{Pairings: pairings})
}

// ask handles GET /insights/ask
// @Summary Ask an analytics question
// @Description Answer a bounded free-text question about sales performance
// @Tags insights
// @Produce json
// @Param q query string true "Question"
// @Success 200 {object} dto.AskResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/ask [get]
func (h *Handler) ask(c *gin.Context) {
	var req dto.AskRequest

	if err := c.ShouldBindQuery(&req); err != nil {
		h.log.Warn("Invalid ask request", zap.Error(err))
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error:   "validation_error",
			Message: err.Error(),
		})
		return
	}

	answer, err := h.insightsService.Ask(c.Request.Context(), req.Query)
	if err != nil {
		h.log.Error("Failed to answer question",
			zap.Error(err),
			zap.String("query", req.Query))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.AskResponse{
		Query: req.Query,
		Text:  answer.Text,
		Chart: answer.Chart,
	})
}

// getBoard handles GET /insights/board
// @Summary Get the Kanban task board
// @Description Retrieve the task feed bucketed into today, upcoming, later and completed
// @Tags insights
// @Produce json
// @Success 200 {object} dto.BoardResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /insights/board [get]
func (h *Handler) getBoard(c *gin.Context) {
	board, err := h.insightsService.Board(c.Request.Context(), time.Now())
	if err != nil {
		h.log.Error("Failed to get task board", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, dto.BoardResponse{Board: board})
}
