package transcript

import (
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	apperrors "github.com/kbukum/transcript-gateway/errors"
	"github.com/kbukum/transcript-gateway/logger"
	"github.com/kbukum/transcript-gateway/observability"
	"github.com/kbukum/transcript-gateway/server"
	"github.com/kbukum/transcript-gateway/transcription"
)

const pageTitle = "Transcript Gateway"

//go:embed templates/*.html
var templateFS embed.FS

var pages = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Endpoint names used for metrics.
const (
	endpointForm   = "form"
	endpointJSON   = "transcript"
	endpointJob    = "job"
	endpointLegacy = "legacy"
)

// Handler exposes a Service over HTTP.
type Handler struct {
	service *Service
	metrics *observability.Metrics
	log     *logger.Logger
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithMetrics records request outcomes on m.
func WithMetrics(m *observability.Metrics) HandlerOption {
	return func(h *Handler) { h.metrics = m }
}

// NewHandler creates a Handler for svc.
func NewHandler(svc *Service, opts ...HandlerOption) *Handler {
	h := &Handler{service: svc, log: logger.WithComponent("transcript-http")}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// RegisterRoutes mounts the transcript endpoints on r.
func (h *Handler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.Index)
	r.POST("/", h.Form)
	r.POST("/transcript", h.Transcript)
	r.GET("/transcript/jobs/:job_id", h.Job)
	r.POST("/api/transcript", h.Legacy)
}

// Index serves the HTML form, or an endpoint descriptor to JSON clients.
func (h *Handler) Index(c *gin.Context) {
	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		c.JSON(http.StatusOK, gin.H{
			"service": pageTitle,
			"endpoints": []gin.H{
				{"method": http.MethodPost, "path": "/", "description": "HTML form submission (url, lang, mode)"},
				{"method": http.MethodPost, "path": "/transcript", "description": "JSON transcript request {url, lang, text, mode}"},
				{"method": http.MethodGet, "path": "/transcript/jobs/:job_id", "description": "single status lookup for a pending job"},
				{"method": http.MethodPost, "path": "/api/transcript", "description": "compact transcript request (?url=)"},
				{"method": http.MethodGet, "path": "/health", "description": "liveness"},
			},
		})
		return
	}
	c.Render(http.StatusOK, render.HTML{Template: pages, Name: "index.html", Data: gin.H{
		"Title":    pageTitle,
		"Language": h.service.cfg.DefaultLanguage,
		"Mode":     h.service.cfg.DefaultMode,
		"Modes":    []transcription.Mode{transcription.ModeAuto, transcription.ModeNative, transcription.ModeGenerate},
	}})
}

// Form handles the HTML form submission.
func (h *Handler) Form(c *gin.Context) {
	start := time.Now()
	var req Request
	if err := c.ShouldBind(&req); err != nil {
		h.failHTML(c, endpointForm, start, apperrors.Validation("Invalid form submission.").WithCause(err))
		return
	}
	outcome, err := h.service.Resolve(c.Request.Context(), req)
	if err != nil {
		h.failHTML(c, endpointForm, start, err)
		return
	}
	h.succeed(c, endpointForm, start, outcome)
	c.Render(http.StatusOK, render.HTML{Template: pages, Name: "result.html", Data: gin.H{
		"Title":    pageTitle,
		"Status":   outcome.DisplayStatus(),
		"JobID":    outcome.JobID,
		"Language": outcome.Language,
		"Content":  outcome.DisplayContent(),
	}})
}

// Transcript handles a JSON transcript request.
func (h *Handler) Transcript(c *gin.Context) {
	start := time.Now()
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failJSON(c, endpointJSON, start, apperrors.Validation("Request body must be a JSON object.").WithCause(err))
		return
	}
	outcome, err := h.service.Resolve(c.Request.Context(), req)
	if err != nil {
		h.failJSON(c, endpointJSON, start, err)
		return
	}
	h.succeed(c, endpointJSON, start, outcome)
	c.JSON(outcome.HTTPStatus(), outcome)
}

// Job performs one status lookup for a job reference.
func (h *Handler) Job(c *gin.Context) {
	start := time.Now()
	outcome, err := h.service.JobStatus(c.Request.Context(), c.Param("job_id"))
	if err != nil {
		h.failJSON(c, endpointJob, start, err)
		return
	}
	h.succeed(c, endpointJob, start, outcome)
	c.JSON(outcome.HTTPStatus(), outcome)
}

// Legacy answers {status, content} for a url passed as query or form value.
func (h *Handler) Legacy(c *gin.Context) {
	start := time.Now()
	rawURL := c.Query("url")
	if rawURL == "" {
		rawURL = c.PostForm("url")
	}
	outcome, err := h.service.Resolve(c.Request.Context(), Request{URL: rawURL})
	if err != nil {
		h.failJSON(c, endpointLegacy, start, err)
		return
	}
	h.succeed(c, endpointLegacy, start, outcome)

	var content any
	if outcome.Status == StatusSuccess {
		content = outcome.Content
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  outcome.DisplayStatus(),
		"content": content,
	})
}

func (h *Handler) succeed(c *gin.Context, endpoint string, start time.Time, o *Outcome) {
	ctx := c.Request.Context()
	h.metrics.RecordRequest(ctx, endpoint, string(o.Status), time.Since(start))
	h.log.WithContext(ctx).Debug("Transcript request resolved", map[string]interface{}{
		logger.FieldOperation: endpoint,
		logger.FieldStatus:    string(o.Status),
		logger.FieldJobID:     o.JobID,
		logger.FieldDuration:  time.Since(start).Milliseconds(),
	})
}

func (h *Handler) failJSON(c *gin.Context, endpoint string, start time.Time, err error) {
	server.RespondWithError(c, h.record(c, endpoint, start, err))
}

func (h *Handler) failHTML(c *gin.Context, endpoint string, start time.Time, err error) {
	appErr := h.record(c, endpoint, start, err)
	c.Render(appErr.HTTPStatus, render.HTML{Template: pages, Name: "error.html", Data: gin.H{
		"Title":            pageTitle,
		"Message":          appErr.Message,
		"DocumentationURL": appErr.DocumentationURL,
	}})
}

// record logs err at the handler boundary (warn for 4xx, error for 5xx)
// and counts it.
func (h *Handler) record(c *gin.Context, endpoint string, start time.Time, err error) *apperrors.AppError {
	appErr := ToAppError(err)
	ctx := c.Request.Context()
	h.metrics.RecordRequest(ctx, endpoint, "error", time.Since(start))
	h.metrics.RecordError(ctx, string(appErr.Code))

	fields := map[string]interface{}{
		logger.FieldOperation: endpoint,
		logger.FieldStatus:    appErr.HTTPStatus,
		"code":                string(appErr.Code),
		logger.FieldDuration:  time.Since(start).Milliseconds(),
	}
	if appErr.Cause != nil {
		fields[logger.FieldError] = appErr.Cause.Error()
	}
	log := h.log.WithContext(ctx)
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error(appErr.Message, fields)
	} else {
		log.Warn(appErr.Message, fields)
	}
	return appErr
}
