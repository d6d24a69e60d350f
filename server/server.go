package server

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/safepathshield/safepath/floorplan"
	"github.com/safepathshield/safepath/planner"
)

// ErrNilPlanner is returned when the server is constructed without a planner.
var ErrNilPlanner = errors.New("server: planner is nil")

// PlanSink receives every freshly computed door map. Implementations must
// not block; the hardware controller's latest-wins delivery satisfies that.
type PlanSink interface {
	Apply(doors map[string]planner.DoorState)
}

// Options collects the server's collaborators. Planner is required;
// everything else degrades gracefully when absent.
type Options struct {
	Log       *slog.Logger
	Planner   *planner.Planner
	Rooms     *RoomStateStore
	Doors     PlanSink
	StaticDir string

	// Builder rebuilds the map artifact after a floorplan upload; Artifact
	// is the one built at startup. Both may be nil when no floorplan is
	// configured.
	Builder  *floorplan.Builder
	Artifact *floorplan.MapArtifact
}

// Server is the HTTP surface over the planning engine.
type Server struct {
	log     *slog.Logger
	planner *planner.Planner
	rooms   *RoomStateStore
	doors   PlanSink
	static  string
	builder *floorplan.Builder

	artMu    sync.RWMutex
	artifact *floorplan.MapArtifact
}

// New validates the options and assembles a server.
func New(opts Options) (*Server, error) {
	if opts.Planner == nil {
		return nil, ErrNilPlanner
	}
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	rooms := opts.Rooms
	if rooms == nil {
		rooms = NewRoomStateStore("", nil)
	}
	return &Server{
		log:      log,
		planner:  opts.Planner,
		rooms:    rooms,
		doors:    opts.Doors,
		static:   opts.StaticDir,
		builder:  opts.Builder,
		artifact: opts.Artifact,
	}, nil
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLog())

	cfg := cors.DefaultConfig()
	cfg.AllowAllOrigins = true
	cfg.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	cfg.AllowHeaders = []string{"*"}
	r.Use(cors.New(cfg))

	r.GET("/api/plan", s.handlePlan)
	r.POST("/api/hazards", s.handleSetHazards)
	r.GET("/api/room_states", s.handleRoomStates)
	r.POST("/api/room_states", s.handleSetRoomState)
	r.GET("/api/map", s.handleMap)
	r.POST("/api/upload_floorplan", s.handleUploadFloorplan)

	if s.static != "" {
		r.NoRoute(s.handleStatic)
	}
	return r
}

// Run serves the router on addr until the listener fails.
func (s *Server) Run(addr string) error {
	s.log.Info("http server listening", "addr", addr)
	return s.Router().Run(addr)
}

func (s *Server) handlePlan(c *gin.Context) {
	c.JSON(http.StatusOK, s.planner.Plan())
}

func (s *Server) handleSetHazards(c *gin.Context) {
	var ids []string
	if err := c.ShouldBindJSON(&ids); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := s.planner.SetHazards(ids)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.pushDoors(plan)
	c.JSON(http.StatusOK, plan)
}

func (s *Server) handleRoomStates(c *gin.Context) {
	c.JSON(http.StatusOK, s.rooms.States())
}

// handleSetRoomState records one detector verdict, folds every non-clear
// room into the hazard set, and replans.
func (s *Server) handleSetRoomState(c *gin.Context) {
	var req struct {
		Room  string    `json:"room"`
		State RoomState `json:"state"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := s.rooms.Set(req.Room, req.State); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	plan, err := s.planner.SetHazards(s.rooms.Hazardous())
	if err != nil {
		// The store admitted a room the graph does not know; surface it
		// rather than serving a plan that ignores the verdict.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.pushDoors(plan)
	c.JSON(http.StatusOK, gin.H{"states": s.rooms.States(), "plan": plan})
}

func (s *Server) handleMap(c *gin.Context) {
	s.artMu.RLock()
	art := s.artifact
	s.artMu.RUnlock()
	if art == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no floorplan map built"})
		return
	}
	c.JSON(http.StatusOK, art)
}

// handleUploadFloorplan stores the uploaded image over the configured
// floorplan path and rebuilds the map artifact against the existing
// calibration.
func (s *Server) handleUploadFloorplan(c *gin.Context) {
	if s.builder == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no floorplan configured"})
		return
	}
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(header.Filename)) {
	case ".png", ".jpg", ".jpeg":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "please upload a PNG or JPG image"})
		return
	}

	if err := saveUpload(s.builder.ImagePath, file); err != nil {
		s.log.Error("floorplan save failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not store floorplan"})
		return
	}
	art, err := s.builder.Build()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	s.artMu.Lock()
	s.artifact = art
	s.artMu.Unlock()
	s.log.Info("floorplan updated", "file", header.Filename,
		"size", art.ImageSize, "regions", len(art.Regions))
	c.JSON(http.StatusOK, gin.H{"ok": true, "message": "floorplan updated"})
}

// handleStatic serves the UI files, with / mapped to index.html. The
// request path is cleaned against the static root so it cannot escape it.
func (s *Server) handleStatic(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	p := path.Clean("/" + c.Request.URL.Path)
	if p == "/" {
		p = "/index.html"
	}
	c.File(filepath.Join(s.static, filepath.FromSlash(p)))
}

// pushDoors hands the new door map to the actuation sink, if any.
func (s *Server) pushDoors(plan planner.Plan) {
	if s.doors == nil {
		return
	}
	s.doors.Apply(plan.Doors)
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.log.Debug("http request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start))
	}
}

func saveUpload(dst string, src io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, src); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
