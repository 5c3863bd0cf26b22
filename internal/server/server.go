package server

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/prospecta/leadgen/internal/config"
	"github.com/prospecta/leadgen/internal/core"
	"github.com/prospecta/leadgen/internal/core/model"
	"github.com/prospecta/leadgen/internal/llm"
	"github.com/prospecta/leadgen/internal/review"
	"github.com/prospecta/leadgen/internal/store"
)

// Server wires the dedup engine to its HTTP tool surface. Store and
// Reviewer are optional collaborators: without a store the endpoints work
// on inline batches only, without a reviewer borderline pairs go out
// unadjudicated.
type Server struct {
	Engine   *core.Engine
	Store    store.LeadStore
	Reviewer *review.Adjudicator
}

func NewServer() *Server {
	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config/config.toml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Printf("Warning: could not load %s: %v. Using defaults", cfgPath, err)
		cfg = &config.Config{}
	}

	// Env vars override the config file.
	if envProvider := os.Getenv("LLM_PROVIDER"); envProvider != "" {
		cfg.LLM.Provider = envProvider
	}
	if envModel := os.Getenv("LLM_MODEL"); envModel != "" {
		cfg.LLM.Model = envModel
	}
	if envAPIKey := os.Getenv("LLM_API_KEY"); envAPIKey != "" {
		cfg.LLM.APIKey = envAPIKey
	}
	if envBaseURL := os.Getenv("LLM_BASE_URL"); envBaseURL != "" {
		cfg.LLM.BaseURL = envBaseURL
	}
	if envURI := os.Getenv("MEMGRAPH_URI"); envURI != "" {
		cfg.Memgraph.URI = envURI
	}
	if envUser := os.Getenv("MEMGRAPH_USER"); envUser != "" {
		cfg.Memgraph.User = envUser
	}
	if envPass := os.Getenv("MEMGRAPH_PASSWORD"); envPass != "" {
		cfg.Memgraph.Password = envPass
	}

	engine, err := core.NewEngine(cfg.MatchConfig())
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	s := &Server{Engine: engine}

	if cfg.Memgraph.URI != "" {
		leadStore, err := store.NewMemgraphStore(cfg.Memgraph.URI, cfg.Memgraph.User, cfg.Memgraph.Password)
		if err != nil {
			log.Fatalf("Failed to connect to Memgraph: %v", err)
		}
		if err := leadStore.BuildIndices(context.Background()); err != nil {
			log.Printf("Warning: failed to build indices: %v", err)
		}
		s.Store = leadStore
	} else {
		log.Println("No Memgraph URI configured, running without persistence")
	}

	if cfg.LLM.Provider != "" {
		llmClient, err := llm.NewClient(context.Background(), cfg.LLM)
		if err != nil {
			log.Fatalf("Failed to initialize LLM client: %v", err)
		}
		s.Reviewer = review.NewAdjudicator(llmClient)
	} else {
		log.Println("No LLM provider configured, running without borderline review")
	}

	return s
}

func (s *Server) SetupRouter() *gin.Engine {
	r := gin.Default()

	r.POST("/tools/analyze_duplicates", s.AnalyzeDuplicates)
	r.POST("/tools/merge_duplicates", s.MergeDuplicates)
	r.POST("/tools/similarity", s.Similarity)
	r.POST("/tools/dedup_summary", s.DedupSummary)

	r.POST("/leads", s.SaveLeads)
	r.GET("/leads", s.ListLeads)

	return r
}

func ok(c *gin.Context, result interface{}) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "result": result})
}

func fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if core.IsInvalidInput(err) {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"ok": false, "error": core.AsError(err)})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": &core.Error{
		Code:    core.CodeInvalidInput,
		Message: message,
	}})
}

type AnalyzeRequest struct {
	Leads     []model.LeadRecord `json:"leads"`
	Threshold float64            `json:"threshold"`
	Review    bool               `json:"review"`
}

type AnalyzeResponse struct {
	*model.AnalysisReport
	ReviewVerdicts []model.ReviewVerdict `json:"review_verdicts,omitempty"`
}

// AnalyzeDuplicates runs the full analysis pipeline. With an empty leads
// array and a configured store, the active leads are loaded from storage.
// When review is requested and a reviewer is configured, borderline pairs
// are adjudicated by the LLM; verdicts are advisory and never change the
// report counts.
func (s *Server) AnalyzeDuplicates(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	leads := req.Leads
	if len(leads) == 0 && s.Store != nil {
		stored, err := s.Store.ActiveLeads(c.Request.Context())
		if err != nil {
			log.Printf("Failed to load leads: %v", err)
			fail(c, err)
			return
		}
		leads = stored
	}

	report, err := s.Engine.AnalyzeLeads(leads, req.Threshold)
	if err != nil {
		fail(c, err)
		return
	}

	resp := AnalyzeResponse{AnalysisReport: report}
	if req.Review && s.Reviewer != nil && len(report.BorderlinePairs) > 0 {
		verdicts, err := s.Reviewer.ReviewPairs(c.Request.Context(), model.LeadIndex(leads), report.BorderlinePairs)
		if err != nil {
			log.Printf("Borderline review failed: %v", err)
		} else {
			resp.ReviewVerdicts = verdicts
		}
	}

	ok(c, resp)
}

type MergeRequest struct {
	Leads  []model.LeadRecord     `json:"leads"`
	Groups []model.DuplicateGroup `json:"groups"`
	Apply  bool                   `json:"apply"`
}

// MergeDuplicates computes merge results and update batches for the given
// groups. With apply set and a configured store, the updates are written
// back to storage.
func (s *Server) MergeDuplicates(c *gin.Context) {
	var req MergeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	leads := req.Leads
	if len(leads) == 0 && s.Store != nil {
		stored, err := s.Store.ActiveLeads(c.Request.Context())
		if err != nil {
			log.Printf("Failed to load leads: %v", err)
			fail(c, err)
			return
		}
		leads = stored
	}

	report, err := s.Engine.MergeDuplicateGroups(leads, req.Groups)
	if err != nil {
		fail(c, err)
		return
	}

	if req.Apply {
		if s.Store == nil {
			badRequest(c, "apply requested but no store is configured")
			return
		}
		if err := s.Store.ApplyMergeUpdates(c.Request.Context(), report.PrimaryUpdates, report.DuplicateUpdates); err != nil {
			log.Printf("Failed to apply merge updates: %v", err)
			fail(c, err)
			return
		}
	}

	ok(c, report)
}

type SimilarityRequest struct {
	Lead1 model.LeadRecord `json:"lead1"`
	Lead2 model.LeadRecord `json:"lead2"`
}

func (s *Server) Similarity(c *gin.Context) {
	var req SimilarityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	report, err := s.Engine.CalculateSimilarity(req.Lead1, req.Lead2)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, report)
}

func (s *Server) DedupSummary(c *gin.Context) {
	var req model.SummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}

	summary, err := s.Engine.DedupSummary(req)
	if err != nil {
		fail(c, err)
		return
	}

	ok(c, summary)
}

type SaveLeadsRequest struct {
	Leads []model.LeadRecord `json:"leads"`
}

func (s *Server) SaveLeads(c *gin.Context) {
	if s.Store == nil {
		badRequest(c, "no store is configured")
		return
	}

	var req SaveLeadsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "invalid request body")
		return
	}
	if len(req.Leads) == 0 {
		badRequest(c, "leads batch is empty")
		return
	}
	for _, l := range req.Leads {
		if l.ID == "" {
			badRequest(c, "every lead needs an id")
			return
		}
	}

	if err := s.Store.UpsertLeads(c.Request.Context(), req.Leads); err != nil {
		log.Printf("Failed to save leads: %v", err)
		fail(c, err)
		return
	}

	ok(c, gin.H{"saved": len(req.Leads)})
}

func (s *Server) ListLeads(c *gin.Context) {
	if s.Store == nil {
		badRequest(c, "no store is configured")
		return
	}

	leads, err := s.Store.ActiveLeads(c.Request.Context())
	if err != nil {
		log.Printf("Failed to load leads: %v", err)
		fail(c, err)
		return
	}

	ok(c, gin.H{"leads": leads, "count": len(leads)})
}
