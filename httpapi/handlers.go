package httpapi

import (
	"bytes"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classmix/regroup"
	"github.com/classmix/regroup/export"
	"github.com/classmix/regroup/planner"
	"github.com/classmix/regroup/roster"
	"github.com/classmix/regroup/types"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// PlanRequest is the JSON body for plan creation and export.
type PlanRequest struct {
	// ItemCount is the number of items to partition.
	ItemCount int `json:"itemCount"`

	// GroupSize is the target group size.
	GroupSize int `json:"groupSize"`

	// Rounds is the number of rounds to generate.
	Rounds int `json:"rounds"`

	// Labels is optional newline-delimited label text, one label per line.
	Labels string `json:"labels,omitempty"`

	// Seed optionally makes the plan reproducible.
	Seed int64 `json:"seed,omitempty"`

	// Regenerate forces a fresh draw instead of returning a cached plan.
	Regenerate bool `json:"regenerate,omitempty"`
}

// Config converts the request into a core configuration, normalizing the
// label text the way the core expects: split on newlines, trimmed, empty
// lines dropped.
func (req *PlanRequest) Config() regroup.Config {
	return regroup.Config{
		ItemCount: req.ItemCount,
		GroupSize: req.GroupSize,
		Rounds:    req.Rounds,
		Labels:    roster.ParseLabels(req.Labels),
		Seed:      req.Seed,
	}
}

// RoundResponse is one round of a plan, rendered with display names.
type RoundResponse struct {
	// Round is the 1-based round number.
	Round int `json:"round"`

	// Groups holds each group's member names, in group order.
	Groups [][]string `json:"groups"`
}

// PlanResponse is the JSON rendering of a generated plan.
type PlanResponse struct {
	// GroupSizes is the descending size multiset every round exhibits.
	GroupSizes []int `json:"groupSizes"`

	// Rounds is the full schedule with display names.
	Rounds []RoundResponse `json:"rounds"`

	// Stats is the cross-round pairing statistics.
	Stats types.Stats `json:"stats"`
}

func (s *Server) createPlan(c *gin.Context) {
	plan, ok := s.resolvePlan(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, renderPlan(plan))
}

func (s *Server) previewSizes(c *gin.Context) {
	itemCount, err := strconv.Atoi(c.Query("itemCount"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "itemCount must be an integer"})

		return
	}

	groupSize, err := strconv.Atoi(c.Query("groupSize"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "groupSize must be an integer"})

		return
	}

	// Rounds does not influence the size multiset; 1 satisfies validation.
	cfg := regroup.Config{ItemCount: itemCount, GroupSize: groupSize, Rounds: 1}

	if err := cfg.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{"groupSizes": cfg.ExpectedGroupSizes()})
}

func (s *Server) exportPlan(c *gin.Context) {
	plan, ok := s.resolvePlan(c)
	if !ok {
		return
	}

	// Build the workbook fully before committing response headers, so a
	// construction failure surfaces as an error response instead of a
	// truncated 200 download.
	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, plan.Schedule, plan.Stats, plan.Roster); err != nil {
		s.logger.Error("workbook export failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "workbook export failed"})

		return
	}

	c.Header("Content-Disposition", `attachment; filename="schedule.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// resolvePlan binds the request body and runs it through the planner,
// writing the error response itself when anything fails.
func (s *Server) resolvePlan(c *gin.Context) (*planner.Plan, bool) {
	var req PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})

		return nil, false
	}

	cfg := req.Config()

	var (
		plan *planner.Plan
		err  error
	)

	if req.Regenerate {
		plan, err = s.planner.Regenerate(cfg)
	} else {
		plan, err = s.planner.Plan(cfg)
	}

	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, regroup.ErrInvalidConfig) {
			status = http.StatusBadRequest
		}

		c.JSON(status, gin.H{"error": err.Error()})

		return nil, false
	}

	return plan, true
}

func renderPlan(plan *planner.Plan) PlanResponse {
	rounds := make([]RoundResponse, len(plan.Schedule))

	for ri, round := range plan.Schedule {
		groups := make([][]string, len(round))
		for gi, group := range round {
			groups[gi] = plan.Roster.Names(group)
		}

		rounds[ri] = RoundResponse{Round: ri + 1, Groups: groups}
	}

	return PlanResponse{
		GroupSizes: plan.Config.ExpectedGroupSizes(),
		Rounds:     rounds,
		Stats:      plan.Stats,
	}
}
