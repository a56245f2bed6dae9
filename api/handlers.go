package api

import (
	"log/slog"
	"net/http"

	"SpliceSafari/lib/sl"

	"github.com/gin-gonic/gin"
)

type configResponse struct {
	OpenAIConfigured bool    `json:"openaiConfigured"`
	Model            *string `json:"model"`
	Reason           string  `json:"reason"`
	Provider         string  `json:"provider"`
}

type spinResponse struct {
	Animals     [2]string `json:"animals"`
	SpeciesName string    `json:"speciesName"`
	ImageData   string    `json:"imageData"`
	ImageSource string    `json:"imageSource"`
}

func (s *Server) handleConfig(c *gin.Context) {
	status := s.service.Status()

	resp := configResponse{
		OpenAIConfigured: status.Available,
		Reason:           status.Reason,
		Provider:         status.Provider,
	}
	if status.Available {
		model := status.Model
		resp.Model = &model
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) handleSpin(c *gin.Context) {
	mashup, err := s.service.Spin(c.Request.Context())
	if err != nil {
		s.log.With(sl.RequestID(c.GetString(requestIDKey))).Error("spin failed", sl.Err(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "the animal lab is closed"})
		return
	}

	s.log.With(
		sl.RequestID(c.GetString(requestIDKey)),
		slog.String("species", mashup.SpeciesName),
		slog.String("source", string(mashup.Image.Source)),
	).Debug("spin served")

	c.JSON(http.StatusOK, spinResponse{
		Animals:     mashup.Animals,
		SpeciesName: mashup.SpeciesName,
		ImageData:   mashup.Image.ImageData,
		ImageSource: string(mashup.Image.Source),
	})
}
