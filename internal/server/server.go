// Package server exposes invoice generation and validation over HTTP.
package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/rezonia/facturx/internal/cii"
	"github.com/rezonia/facturx/internal/docio"
	"github.com/rezonia/facturx/internal/profile"
	"github.com/rezonia/facturx/internal/schema"
)

// Config holds server configuration
type Config struct {
	Address      string
	SchemaDir    string // enables the XSD endpoint when set
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	Debug        bool
}

// Server represents the HTTP API server
type Server struct {
	config    *Config
	router    *gin.Engine
	validator schema.Validator
}

// NewServer creates a new API server
func NewServer(config *Config) *Server {
	if !config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestID())
	if config.Debug {
		router.Use(gin.Logger())
	}

	s := &Server{
		config: config,
		router: router,
	}
	if config.SchemaDir != "" {
		s.validator = schema.NewValidatorDir(config.SchemaDir)
	}

	s.setupRoutes()
	return s
}

// requestID tags every request with an id for log correlation.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Header("X-Request-ID", id)
		c.Next()
	}
}

func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", s.handleHealth)

	// API v1
	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/profiles", s.handleProfiles)
		v1.POST("/generate", s.handleGenerate)
		v1.POST("/validate", s.handleValidate)
		v1.POST("/validate/schema", s.handleValidateSchema)
	}
}

// Run starts the HTTP server
func (s *Server) Run() error {
	srv := &http.Server{
		Addr:         s.config.Address,
		Handler:      s.router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
	}
	return srv.ListenAndServe()
}

// Handler returns the http.Handler for use with custom servers
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleProfiles(c *gin.Context) {
	profiles := make([]ProfileInfo, 0, len(profile.All()))
	for _, p := range profile.All() {
		profiles = append(profiles, ProfileInfo{Name: p.String(), URN: p.URN()})
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

// requestedProfile resolves the profile from the query string, falling back
// to the document's own declaration, then to EN16931.
func requestedProfile(c *gin.Context, doc *docio.Document) (profile.Profile, error) {
	name := c.Query("profile")
	if name == "" && doc != nil {
		name = doc.Profile
	}
	if name == "" {
		return profile.EN16931, nil
	}
	return profile.Parse(name)
}

func (s *Server) bindDocument(c *gin.Context) (*docio.Document, bool) {
	body, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return nil, false
	}
	if len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return nil, false
	}

	doc, err := docio.ParseYAML(body)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "malformed invoice document", Details: err.Error()})
		return nil, false
	}
	return doc, true
}

func (s *Server) handleGenerate(c *gin.Context) {
	doc, ok := s.bindDocument(c)
	if !ok {
		return
	}

	p, err := requestedProfile(c, doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown profile", Details: err.Error()})
		return
	}
	if p == profile.Extended {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: cii.ErrExtendedUnsupported.Error()})
		return
	}

	inv, err := doc.Build()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return
	}

	if c.Query("lenient") == "true" {
		err = inv.ValidateLenient(p)
	} else {
		err = inv.Validate(p)
	}
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ValidationResponse{
			Valid:   false,
			Profile: p.String(),
			Issues:  issues(err),
		})
		return
	}

	out, err := inv.BuildDocument(p).WriteToBytes()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "serialization failed", Details: err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", out)
}

func (s *Server) handleValidate(c *gin.Context) {
	doc, ok := s.bindDocument(c)
	if !ok {
		return
	}

	p, err := requestedProfile(c, doc)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown profile", Details: err.Error()})
		return
	}

	inv, err := doc.Build()
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "invalid invoice document", Details: err.Error()})
		return
	}

	result := ValidationResponse{Profile: p.String()}
	if err := inv.Validate(p); err != nil {
		result.Issues = issues(err)
	}
	result.Valid = len(result.Issues) == 0

	c.JSON(http.StatusOK, result)
}

func (s *Server) handleValidateSchema(c *gin.Context) {
	if s.validator == nil {
		c.JSON(http.StatusServiceUnavailable, ErrorResponse{
			Error:   "schema validation unavailable",
			Details: "no schema directory configured",
		})
		return
	}

	body, err := c.GetRawData()
	if err != nil || len(body) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "empty request body"})
		return
	}

	p, err := requestedProfile(c, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "unknown profile", Details: err.Error()})
		return
	}

	report, err := s.validator.Validate(body, p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "schema validation failed", Details: err.Error()})
		return
	}

	result := SchemaValidationResponse{Valid: report.Valid, Profile: p.String()}
	for _, d := range report.Diagnostics {
		result.Issues = append(result.Issues, SchemaIssue{
			Code:     d.Code,
			Message:  d.Message,
			Location: d.Location,
			Line:     d.Line,
			Column:   d.Column,
		})
	}
	c.JSON(http.StatusOK, result)
}

// issues flattens a joined validation error into API items, classified by
// error type.
func issues(err error) []ValidationIssue {
	var out []ValidationIssue
	for _, e := range flatten(err) {
		var (
			ve *cii.ValidationError
			pe *cii.ProfileError
			ce *cii.ConsistencyError
		)
		switch {
		case errors.As(e, &ve):
			out = append(out, ValidationIssue{Kind: "validation", Path: ve.Field, Message: ve.Message})
		case errors.As(e, &pe):
			out = append(out, ValidationIssue{Kind: "profile", Path: pe.Field, Message: pe.Error()})
		case errors.As(e, &ce):
			out = append(out, ValidationIssue{Kind: "consistency", Path: ce.Rule, Message: ce.Error()})
		default:
			out = append(out, ValidationIssue{Kind: "error", Message: e.Error()})
		}
	}
	return out
}

func flatten(err error) []error {
	if err == nil {
		return nil
	}
	if u, ok := err.(interface{ Unwrap() []error }); ok {
		return u.Unwrap()
	}
	return []error{err}
}
