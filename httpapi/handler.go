package httpapi

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/ColOfAbRiX/aws-tagscheduler/runner"
	"github.com/ColOfAbRiX/aws-tagscheduler/scheduler"
	"github.com/gin-gonic/gin"
)

// Handler keeps the latest report of every region and serves them over
// HTTP. It is a runner.Reporter.
type Handler struct {
	mu      sync.RWMutex
	reports map[string]*runner.Report
}

func NewHandler() *Handler {
	return &Handler{
		reports: map[string]*runner.Report{},
	}
}

func (h *Handler) Report(report *runner.Report) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.reports[report.Region] = report
	return nil
}

func (h *Handler) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET("/reports", h.getReports)
	r.GET("/reports/:region", h.getReport)
	r.GET("/metrics", h.getMetrics)
	return r
}

func (h *Handler) Run(addr string) error {
	return h.Router().Run(addr)
}

func (h *Handler) latest() []*runner.Report {
	h.mu.RLock()
	defer h.mu.RUnlock()

	reports := []*runner.Report{}
	for _, r := range h.reports {
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Region < reports[j].Region
	})
	return reports
}

func (h *Handler) getReports(c *gin.Context) {
	c.JSON(http.StatusOK, h.latest())
}

func (h *Handler) getReport(c *gin.Context) {
	region := c.Param("region")

	h.mu.RLock()
	report, ok := h.reports[region]
	h.mu.RUnlock()

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("no report for %s", region)})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) getMetrics(c *gin.Context) {
	c.Header("Content-Type", "text/plain; charset=utf-8")
	c.Status(http.StatusOK)

	for _, r := range h.latest() {
		failed := 0.0
		if r.Error != "" {
			failed = 1
		}
		fmt.Fprintf(c.Writer, "tagscheduler_resources{region=%q} %f\n", r.Region, float64(len(r.Decisions)))
		fmt.Fprintf(c.Writer, "tagscheduler_started_resources{region=%q} %f\n", r.Region, float64(r.Dispatched(scheduler.ActionStart)))
		fmt.Fprintf(c.Writer, "tagscheduler_stopped_resources{region=%q} %f\n", r.Region, float64(r.Dispatched(scheduler.ActionStop)))
		fmt.Fprintf(c.Writer, "tagscheduler_region_failed{region=%q} %f\n", r.Region, failed)
		fmt.Fprintf(c.Writer, "tagscheduler_last_run_timestamp{region=%q} %d\n", r.Region, r.Time.Unix())
	}
}
