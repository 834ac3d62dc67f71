package server

import (
	"net/http"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

// handleSystemStatus handles GET /api/system/status. Host metrics are
// best-effort: a probe failure zeroes the field rather than failing the
// request.
func (s *Server) handleSystemStatus(w http.ResponseWriter, r *http.Request) {
	var cpuPct float64
	if percents, err := cpu.Percent(100*time.Millisecond, false); err == nil && len(percents) > 0 {
		cpuPct = percents[0]
	} else if err != nil {
		s.log.Warn().Err(err).Msg("CPU probe failed")
	}

	var memUsedPct float64
	var memUsedMB, memTotalMB uint64
	if memStat, err := mem.VirtualMemory(); err == nil {
		memUsedPct = memStat.UsedPercent
		memUsedMB = memStat.Used / 1024 / 1024
		memTotalMB = memStat.Total / 1024 / 1024
	} else {
		s.log.Warn().Err(err).Msg("Memory probe failed")
	}

	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":        "ok",
		"uptimeSeconds": int(time.Since(s.started).Seconds()),
		"productCount":  s.catalog.Len(),
		"goroutines":    runtime.NumGoroutine(),
		"cpuPercent":    round1(cpuPct),
		"memory": map[string]interface{}{
			"usedPercent": round1(memUsedPct),
			"usedMB":      memUsedMB,
			"totalMB":     memTotalMB,
		},
	})
}
