package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/astro"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/cache"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/errors"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/types"
)

// respondError logs the failure and answers with the reference envelope:
// success flag, message and the current calculation log.
func (s *server) respondError(c *gin.Context, appErr *errors.AppError) {
	errors.LogError(c, appErr)
	c.JSON(appErr.HTTPStatus, gin.H{
		"success": false,
		"error":   appErr.ErrBuilder.Msg,
		"logs":    s.logs.Snapshot(),
	})
}

// handleHealth godoc
// @Summary Health check
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (s *server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "Backend is running"})
}

// handleBirthChart godoc
// @Summary Calculate a complete birth chart
// @Accept json
// @Produce json
// @Param request body types.BirthChartRequest true "birth data"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /calculate-birth-chart [post]
func (s *server) handleBirthChart(c *gin.Context) {
	start := time.Now()

	var req types.BirthChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	in, appErr := s.buildInput(req)
	if appErr != nil {
		s.respondError(c, appErr)
		return
	}

	s.logs.Record("INPUT", map[string]any{
		"name":       in.Name,
		"sex":        in.Sex,
		"birth_date": in.BirthDate,
		"birth_time": in.BirthTime,
		"timezone":   in.Timezone,
		"latitude":   in.Latitude,
		"longitude":  in.Longitude,
		"ayanamsa":   in.Ayanamsa,
	})

	key := cache.Key(in)
	chart, hit := s.charts.Get(key)
	if hit {
		s.metrics.IncrementCacheHit()
		s.logs.Record("CACHE_HIT", map[string]any{"status": "Served from cache"})
	} else {
		s.metrics.IncrementCacheMiss()
		chart = astro.ComputeChart(in, s.logs)
		s.charts.Set(key, chart)
	}

	s.metrics.IncrementChart("birth-chart")
	s.logger.ChartLogger("birth-chart", in.Ayanamsa, time.Since(start), hit)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    chart,
		"logs":    s.logs.Snapshot(),
	})
}

// handleTithi godoc
// @Summary Calculate the tithi (lunar day)
// @Accept json
// @Produce json
// @Param request body types.BirthChartRequest true "birth data"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /calculate-tithi [post]
func (s *server) handleTithi(c *gin.Context) {
	var req types.BirthChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	in, appErr := s.buildInput(req)
	if appErr != nil {
		s.respondError(c, appErr)
		return
	}

	s.logs.Record("TITHI_CALCULATION_START", map[string]any{
		"birth_date": in.BirthDate,
		"birth_time": in.BirthTime,
		"timezone":   in.Timezone,
		"ayanamsa":   in.Ayanamsa,
	})

	jd := in.Moment.JulianDay()
	ayanamsa := astro.AyanamsaValue(in.Ayanamsa)
	sun := astro.ToSidereal(astro.SunLongitude(jd), ayanamsa)
	moon := astro.ToSidereal(astro.MoonLongitude(jd), ayanamsa)

	s.logs.Record("PLANETARY_POSITIONS", map[string]any{
		"sun_longitude":  sun,
		"moon_longitude": moon,
	})

	tithi := astro.TithiAt(sun, moon)
	result := types.TithiResponse{
		TithiName:     tithi.Name,
		TithiNumber:   tithi.Number,
		Paksha:        tithi.Paksha,
		SunLongitude:  sun,
		MoonLongitude: moon,
	}

	s.logs.Record("TITHI_CALCULATED", map[string]any{
		"tithi_name":   result.TithiName,
		"tithi_number": result.TithiNumber,
		"paksha":       result.Paksha,
	})
	s.metrics.IncrementChart("tithi")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"logs":    s.logs.Snapshot(),
	})
}

// handleLagna godoc
// @Summary Calculate the lagna (ascendant)
// @Accept json
// @Produce json
// @Param request body types.BirthChartRequest true "birth data"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]any
// @Router /calculate-lagna [post]
func (s *server) handleLagna(c *gin.Context) {
	var req types.BirthChartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	in, appErr := s.buildInput(req)
	if appErr != nil {
		s.respondError(c, appErr)
		return
	}

	s.logs.Record("LAGNA_CALCULATION_START", map[string]any{
		"birth_date": in.BirthDate,
		"birth_time": in.BirthTime,
		"timezone":   in.Timezone,
	})

	jd := in.Moment.JulianDay()
	ayanamsa := astro.AyanamsaValue(in.Ayanamsa)
	sun := astro.ToSidereal(astro.SunLongitude(jd), ayanamsa)
	lagnaLon := astro.LagnaLongitude(sun, in.Moment.LocalHour())
	rasi := astro.RasiAt(lagnaLon)

	result := types.LagnaResponse{
		LagnaSign:    rasi.Sign,
		LagnaLord:    rasi.Lord,
		LagnaDegrees: lagnaLon,
	}

	s.logs.Record("LAGNA_CALCULATED", map[string]any{
		"lagna_sign":    result.LagnaSign,
		"lagna_lord":    result.LagnaLord,
		"lagna_degrees": result.LagnaDegrees,
	})
	s.metrics.IncrementChart("lagna")

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    result,
		"logs":    s.logs.Snapshot(),
	})
}

// handleGetLogs godoc
// @Summary Get all calculation logs
// @Produce json
// @Success 200 {object} map[string]any
// @Router /get-logs [get]
func (s *server) handleGetLogs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"logs": s.logs.Snapshot()})
}

// handleClearLogs godoc
// @Summary Clear calculation logs
// @Produce json
// @Success 200 {object} map[string]string
// @Router /clear-logs [post]
func (s *server) handleClearLogs(c *gin.Context) {
	s.logs.Clear()
	c.JSON(http.StatusOK, gin.H{"status": "Logs cleared"})
}

func (s *server) handleCacheStats(c *gin.Context) {
	c.JSON(http.StatusOK, s.charts.Stats())
}
