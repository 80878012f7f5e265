// Package assistant proxies catalog questions to the Gemini API. The
// current course list rides along as context so answers can point at
// real courses instead of hallucinated ones.
package assistant

import (
	"context"
	"github.com/go-json-experiment/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/loacademie/academie-server/internal/domain"
	"github.com/loacademie/academie-server/internal/errors"
	"github.com/loacademie/academie-server/internal/logger"
)

// Config holds the assistant connection settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

// Client calls the Gemini generateContent endpoint.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	logger      *logger.Logger
}

// NewClient creates an assistant client. Without an API key the client
// still constructs, but Ask returns an unavailable error; the rest of
// the catalog works fine without it.
func NewClient(cfg Config, log *logger.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		// One question per 2 seconds with a small burst keeps a chatty
		// client from burning the API quota.
		rateLimiter: rate.NewLimiter(rate.Every(2*time.Second), 3),
		logger:      log,
	}
}

// Enabled reports whether an API key is configured.
func (c *Client) Enabled() bool {
	return c.cfg.APIKey != ""
}

// courseContext is the trimmed course shape serialized into the prompt.
type courseContext struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Date        string           `json:"date"`
	Organizer   domain.Organizer `json:"organizer"`
	Region      domain.Region    `json:"region"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
}

// Request and response shapes for the generateContent REST endpoint.

type generateRequest struct {
	Contents []content `json:"contents"`
	Tools    []tool    `json:"tools,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type tool struct {
	GoogleSearch *struct{} `json:"google_search,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content           content            `json:"content"`
		GroundingMetadata *groundingMetadata `json:"groundingMetadata,omitempty"`
	} `json:"candidates"`
}

type groundingMetadata struct {
	GroundingChunks []struct {
		Web *struct {
			URI string `json:"uri"`
		} `json:"web,omitempty"`
	} `json:"groundingChunks"`
}

// Ask sends the user's question plus the current catalog to the model
// and returns the answer text. Grounding sources, when present, are
// appended as a Bronnen section.
func (c *Client) Ask(ctx context.Context, question string, courses []domain.Course) (string, error) {
	if !c.Enabled() {
		return "", errors.Unavailable("assistant is not configured")
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("rate limit: %w", err)
	}

	prompt, err := buildPrompt(question, courses)
	if err != nil {
		return "", err
	}

	reqBody := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		Tools:    []tool{{GoogleSearch: &struct{}{}}},
	}

	data, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/v1beta/models/%s:generateContent",
		strings.TrimRight(c.cfg.BaseURL, "/"), c.cfg.Model)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(string(data)))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	c.logger.Debug("asking assistant", "model", c.cfg.Model, "courses", len(courses))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", errors.Unavailable("assistant request failed").WithCause(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Unavailable(fmt.Sprintf("assistant returned status %d", resp.StatusCode))
	}

	var genResp generateResponse
	if err := json.UnmarshalRead(resp.Body, &genResp); err != nil {
		return "", fmt.Errorf("parse response: %w", err)
	}

	if len(genResp.Candidates) == 0 {
		return "", errors.Unavailable("assistant returned no candidates")
	}

	candidate := genResp.Candidates[0]
	var b strings.Builder
	for _, p := range candidate.Content.Parts {
		b.WriteString(p.Text)
	}
	answer := b.String()
	if answer == "" {
		return "", errors.Unavailable("assistant returned an empty answer")
	}

	if sources := groundingSources(candidate.GroundingMetadata); len(sources) > 0 {
		b.WriteString("\n\n### Bronnen\n")
		for i, link := range sources {
			fmt.Fprintf(&b, "- [Bron %d](%s)\n", i+1, link)
		}
		answer = b.String()
	}

	return answer, nil
}

// buildPrompt renders the assistant instruction with the catalog
// serialized as JSON context.
func buildPrompt(question string, courses []domain.Course) (string, error) {
	trimmed := make([]courseContext, 0, len(courses))
	for _, c := range courses {
		trimmed = append(trimmed, courseContext{
			ID:          c.ID,
			Title:       c.Title,
			Date:        c.Date,
			Organizer:   c.Organizer,
			Region:      c.Region,
			Description: c.Description,
			Tags:        c.Tags,
		})
	}

	contextJSON, err := json.Marshal(trimmed)
	if err != nil {
		return "", fmt.Errorf("marshal course context: %w", err)
	}

	var b strings.Builder
	b.WriteString("Je bent de 'LO Academie Assistent', de slimme gids voor de scholingskalender van KVLO en ALO Nederland.\n\n")
	b.WriteString("Jouw doelen:\n")
	b.WriteString("1. Help docenten de juiste bijscholing te vinden.\n")
	b.WriteString("2. Geef context over vaktermen (bijv. MRT, BSM, bewegend leren) als daarom gevraagd wordt, gebruik hiervoor Google Search.\n")
	b.WriteString("3. Wees enthousiast over het vak bewegingsonderwijs.\n\n")
	b.WriteString("Hier is de lijst met ACTUELE cursussen in onze database (JSON):\n")
	b.Write(contextJSON)
	b.WriteString("\n\nDe gebruiker vraagt: \"")
	b.WriteString(question)
	b.WriteString("\"\n\n")
	b.WriteString("Richtlijnen voor je antwoord:\n")
	b.WriteString("- Gebruik dikgedrukte tekst voor namen van cursussen, datums en belangrijke begrippen.\n")
	b.WriteString("- Gebruik lijstjes (bulletpoints) als je meerdere opties noemt.\n")
	b.WriteString("- Als de gebruiker zoekt naar een cursus: zoek in de JSON en beveel 1-3 opties aan. Noem titel, datum en locatie.\n")
	b.WriteString("- Als er geen cursus gevonden is: zeg dit eerlijk en stel een alternatief voor.\n")
	b.WriteString("- Spreek de gebruiker aan met \"je/jij\".\n")
	b.WriteString("- Houd het beknopt (max 150 woorden).\n\n")
	b.WriteString("Antwoord nu:")

	return b.String(), nil
}

// groundingSources extracts unique web source links in first-seen order.
func groundingSources(meta *groundingMetadata) []string {
	if meta == nil {
		return nil
	}

	seen := make(map[string]bool)
	var links []string
	for _, chunk := range meta.GroundingChunks {
		if chunk.Web == nil || chunk.Web.URI == "" {
			continue
		}
		if seen[chunk.Web.URI] {
			continue
		}
		seen[chunk.Web.URI] = true
		links = append(links, chunk.Web.URI)
	}
	return links
}
