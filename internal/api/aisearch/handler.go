package aisearch

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"artworld-app/config"
	"artworld-app/internal/apperrors"
	"artworld-app/internal/logger"

	"github.com/gin-gonic/gin"
	"google.golang.org/genai"
)

const systemPrompt = "You are a knowledgeable, enthusiastic art historian and museum guide. " +
	"Answer questions about artists, artworks, art movements and art history clearly, " +
	"accurately and vividly. If you are unsure about something, say so honestly. " +
	"Keep your answer to three paragraphs at most."

const upstreamTimeout = 15 * time.Second

var fallbackSuggestions = []string{"Renaissance", "Impressionism", "Modern art", "Chinese ink painting"}

func fallbackAnswer(question string) string {
	return fmt.Sprintf(
		"Hello! Your question was: %q. The AI interpretation service is connecting right now, please try again shortly.\n\n"+
			"In the meantime you can browse our Artworks and Artists pages for plenty of art material.",
		question,
	)
}

// AskQuestion forwards a free-text art question to the generative model. Any
// upstream failure degrades to a templated fallback with a success status;
// the caller is never shown a hard error for this feature.
func AskQuestion(c *gin.Context) {
	var input struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Malformed request body"}))
		return
	}

	question := strings.TrimSpace(input.Question)
	if question == "" {
		apperrors.Respond(c, apperrors.ValidationError([]string{"Question must not be empty"}))
		return
	}

	// A hung upstream call must not hold the request open indefinitely.
	ctx, cancel := context.WithTimeout(c.Request.Context(), upstreamTimeout)
	defer cancel()

	answer, err := queryModel(ctx, question)
	if err != nil {
		logger.Warn("AI upstream unavailable, serving fallback", "error", err.Error())
		c.JSON(http.StatusOK, gin.H{
			"answer":      fallbackAnswer(question),
			"suggestions": fallbackSuggestions,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"answer":      answer,
		"suggestions": []string{},
	})
}

func queryModel(ctx context.Context, question string) (string, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return "", err
	}

	result, err := client.Models.GenerateContent(
		ctx,
		config.AI_MODEL,
		genai.Text(systemPrompt+"\n\nQuestion: "+question),
		&genai.GenerateContentConfig{},
	)
	if err != nil {
		return "", err
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
		return "", errors.New("empty model response")
	}
	for _, part := range result.Candidates[0].Content.Parts {
		if part.Text != "" {
			return part.Text, nil
		}
	}
	return "", errors.New("no text content in response")
}
