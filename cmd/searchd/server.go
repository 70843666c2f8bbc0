package main

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/lvsearch/builder"
	"github.com/katalvlaran/lvsearch/core"
	"github.com/katalvlaran/lvsearch/internal/cli"
	"github.com/katalvlaran/lvsearch/search"
	"github.com/katalvlaran/lvsearch/strategy"
	"github.com/katalvlaran/lvsearch/uninformed"
)

// searchRequest is the body of POST /api/search.
type searchRequest struct {
	Algorithm string `json:"algorithm" binding:"required"`
	Start     string `json:"start" binding:"required"`
	Goal      string `json:"goal" binding:"required"`
	Limit     int    `json:"limit" binding:"gte=0"`
}

type cityView struct {
	ID        string      `json:"id"`
	Neighbors []string    `json:"neighbors"`
	Position  *core.Point `json:"position,omitempty"`
	Heuristic *int64      `json:"heuristic,omitempty"`
}

type graphView struct {
	Name   string      `json:"name"`
	Goal   string      `json:"goal,omitempty"`
	Cities []cityView  `json:"cities"`
	Roads  []core.Edge `json:"roads"`
}

// server holds the read-only dataset shared by all handlers.
type server struct {
	ds     builder.Dataset
	graph  graphView
	logger *slog.Logger
}

// newRouter wires the handlers, CORS and request logging.
func newRouter(ds builder.Dataset, logger *slog.Logger, origins []string) *gin.Engine {
	s := &server{ds: ds, graph: newGraphView(ds), logger: logger}

	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	config := cors.DefaultConfig()
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = origins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type"}
	r.Use(cors.New(config))

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	api := r.Group("/api")
	api.GET("/algorithms", s.handleAlgorithms)
	api.GET("/graph", s.handleGraph)
	api.POST("/search", s.handleSearch)

	return r
}

func newGraphView(ds builder.Dataset) graphView {
	v := graphView{Name: ds.Name, Goal: ds.Heuristic.Goal(), Roads: ds.Graph.Edges()}
	for _, id := range ds.Graph.Vertices() {
		nbrs, _ := ds.Graph.NeighborIDs(id)
		if nbrs == nil {
			nbrs = []string{}
		}
		cv := cityView{ID: id, Neighbors: nbrs}
		if p, ok := ds.Positions[id]; ok {
			cv.Position = &p
		}
		if h, ok := ds.Heuristic.Lookup(id); ok {
			cv.Heuristic = &h
		}
		v.Cities = append(v.Cities, cv)
	}

	return v
}

func (s *server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

func (s *server) handleAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		string(strategy.Uninformed): strategy.NamesOf(strategy.Uninformed),
		string(strategy.Informed):   strategy.NamesOf(strategy.Informed),
	})
}

func (s *server) handleGraph(c *gin.Context) {
	c.JSON(http.StatusOK, s.graph)
}

func (s *server) handleSearch(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	r, err := strategy.Run(s.ds, strategy.Request{
		Algorithm: req.Algorithm,
		Start:     req.Start,
		Goal:      req.Goal,
		Limit:     req.Limit,
	}, search.WithLogger(s.logger))
	if err != nil {
		c.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cli.NewView(s.ds.Graph, r))
}

// statusOf maps engine errors to HTTP status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, strategy.ErrUnknownAlgorithm),
		errors.Is(err, search.ErrInvalidState),
		errors.Is(err, uninformed.ErrNegativeLimit):
		return http.StatusBadRequest
	case errors.Is(err, strategy.ErrNoHeuristic):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
