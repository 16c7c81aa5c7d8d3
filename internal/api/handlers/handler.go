package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"soccer_team/internal/domain"
	"soccer_team/internal/lineup"
	"soccer_team/internal/render"
	"soccer_team/internal/service"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	teamService  *service.TeamService
	statsService *service.StatsService
	logger       *slog.Logger
}

func NewHandler(
	teamService *service.TeamService,
	statsService *service.StatsService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		teamService:  teamService,
		statsService: statsService,
		logger:       logger,
	}
}

// /health
func (h *Handler) GetHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// /stats
func (h *Handler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetStats(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// /team/stats
func (h *Handler) TeamStats(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	stats, err := h.statsService.GetTeamStats(c.Request.Context(), teamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// /team/create
func (h *Handler) TeamCreate(c *gin.Context) {
	var req struct {
		TeamName string `json:"team_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	team, err := h.teamService.CreateTeam(c.Request.Context(), req.TeamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"team": gin.H{
			"team_name": team.Name,
			"created":   team.Created,
		},
	})
}

// /team/addPlayer
func (h *Handler) TeamAddPlayer(c *gin.Context) {
	var req struct {
		TeamName          string `json:"team_name" binding:"required"`
		FirstName         string `json:"first_name" binding:"required"`
		LastName          string `json:"last_name" binding:"required"`
		DateOfBirth       string `json:"date_of_birth" binding:"required"`
		PreferredPosition string `json:"preferred_position" binding:"required"`
		SkillLevel        *int   `json:"skill_level" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	// Разбор сырых значений до вызова доменной логики
	dob, err := time.Parse(domain.DateLayout, req.DateOfBirth)
	if err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}
	position, err := domain.ParsePosition(req.PreferredPosition)
	if err != nil {
		h.handleError(c, err)
		return
	}

	added, dropped, err := h.teamService.AddPlayer(c.Request.Context(), req.TeamName, domain.PlayerInput{
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		DateOfBirth:       dob,
		PreferredPosition: position,
		SkillLevel:        *req.SkillLevel,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := gin.H{
		"team_name": req.TeamName,
		"player":    nil,
		"dropped":   nil,
	}
	if added != nil {
		resp["player"] = playerToResponse(added)
	}
	if dropped != nil {
		resp["dropped"] = playerToResponse(dropped)
	}

	c.JSON(http.StatusCreated, resp)
}

// /team/make
func (h *Handler) TeamMake(c *gin.Context) {
	var req struct {
		TeamName string `json:"team_name" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	team, err := h.teamService.MakeTeam(c.Request.Context(), req.TeamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamToResponse(team))
}

// /team/get
func (h *Handler) TeamGet(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	team, err := h.teamService.GetTeam(c.Request.Context(), teamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, teamToResponse(team))
}

// /team/lineup
func (h *Handler) TeamLineup(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	l, err := h.teamService.GetLineup(c.Request.Context(), teamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team_name": teamName,
		"lineup":    lineupToResponse(l),
		"text":      render.Lineup(l),
	})
}

// /team/bench
func (h *Handler) TeamBench(c *gin.Context) {
	teamName := c.Query("team_name")
	if teamName == "" {
		h.handleError(c, domain.ErrInvalidInput)
		return
	}

	bench, err := h.teamService.GetBench(c.Request.Context(), teamName)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"team_name": teamName,
		"bench":     playersToResponse(bench),
		"text":      render.Bench(bench),
	})
}

// Helper functions

func playerToResponse(p *domain.Player) gin.H {
	var jersey any
	if p.HasJerseyNumber() {
		jersey = p.JerseyNumber()
	}
	return gin.H{
		"first_name":         p.FirstName(),
		"last_name":          p.LastName(),
		"date_of_birth":      p.DateOfBirth().Format(domain.DateLayout),
		"preferred_position": p.PreferredPosition(),
		"skill_level":        p.SkillLevel(),
		"jersey_number":      jersey,
	}
}

func playersToResponse(players []*domain.Player) []gin.H {
	list := make([]gin.H, len(players))
	for i, p := range players {
		list[i] = playerToResponse(p)
	}
	return list
}

func teamToResponse(team *service.TeamView) gin.H {
	return gin.H{
		"team_name": team.Name,
		"created":   team.Created,
		"players":   playersToResponse(team.Players),
		"text":      render.Team(team.Players),
	}
}

func lineupToResponse(l *lineup.Lineup) gin.H {
	groups := gin.H{}
	for _, pos := range domain.Positions() {
		groups[string(pos)] = playersToResponse(l.Group(pos))
	}
	return groups
}

func (h *Handler) handleError(c *gin.Context, err error) {
	apiErr := domain.ToAPIError(err)

	var statusCode int
	switch apiErr.Code {
	case domain.CodeBadRequest, domain.CodeInvalidPlayer:
		statusCode = http.StatusBadRequest
	case domain.CodeNotFound:
		statusCode = http.StatusNotFound
	case domain.CodePlayerExists, domain.CodeNotEnoughPlayers, domain.CodeTeamExists,
		domain.CodeTeamCreated, domain.CodeTeamNotCreated:
		statusCode = http.StatusConflict
	default:
		statusCode = http.StatusInternalServerError
	}

	h.logger.Error("request error",
		slog.String("code", string(apiErr.Code)),
		slog.String("message", apiErr.Message),
		slog.Int("status", statusCode),
	)

	c.JSON(statusCode, gin.H{
		"error": gin.H{
			"code":    apiErr.Code,
			"message": apiErr.Message,
		},
	})
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.GetHealth)
	r.GET("/stats", h.GetStats)

	r.POST("/team/create", h.TeamCreate)
	r.POST("/team/addPlayer", h.TeamAddPlayer)
	r.POST("/team/make", h.TeamMake)
	r.GET("/team/get", h.TeamGet)
	r.GET("/team/lineup", h.TeamLineup)
	r.GET("/team/bench", h.TeamBench)
	r.GET("/team/stats", h.TeamStats)
}
