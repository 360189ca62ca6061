package generator

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/alcyxob/fitness-ai/internal/domain"
	"github.com/alcyxob/fitness-ai/internal/tracing"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/genai"
)

const (
	msgInvalidArray     = "AI did not return a valid array of exercises."
	msgMissingFields    = "AI returned exercise with missing fields."
	msgUnavailable      = "Service Unavailable: Please try again later."
	msgTimeout          = "AI request timed out. Please try again later."
	msgInvalidJSON      = "AI returned malformed JSON."
	msgProviderFailed   = "AI provider request failed."
	defaultCallDeadline = 60 * time.Second
)

// provider is the narrow view of a text model the gateway needs.
type provider interface {
	Model() string
	GenerateJSON(ctx context.Context, prompt string, schema *genai.Schema) (string, error)
}

// Result is a validated batch of candidates and the model that produced it.
type Result struct {
	Exercises []domain.GeneratedExercise
	Model     string
}

// Gateway turns a body part and equipment selection into exercise
// candidates. It never touches storage.
type Gateway struct {
	provider provider
	timeout  time.Duration
	validate *validator.Validate
}

type Params struct {
	APIKey  string
	Model   string
	Timeout time.Duration
}

func NewGeminiGateway(ctx context.Context, params Params) (*Gateway, error) {
	p, err := newGeminiProvider(ctx, params.APIKey, params.Model)
	if err != nil {
		return nil, err
	}
	return newGateway(p, params.Timeout), nil
}

func newGateway(p provider, timeout time.Duration) *Gateway {
	if timeout <= 0 {
		timeout = defaultCallDeadline
	}
	validate := validator.New()
	// required accepts whitespace, notblank does not
	_ = validate.RegisterValidation("notblank", validators.NotBlank)
	return &Gateway{
		provider: p,
		timeout:  timeout,
		validate: validate,
	}
}

// Generate asks the model for exercises and returns at most ExerciseCount
// validated candidates in the order the model produced them. Failures are
// *domain.Error values of kind KindGeneration.
func (g *Gateway) Generate(ctx context.Context, equipmentNames []string, bodyPart string) (_ *Result, err error) {
	ctx, span := tracing.StartSpan(ctx, "generator.generate",
		attribute.String("body_part", bodyPart),
		attribute.StringSlice("equipment", equipmentNames),
		attribute.String("model", g.provider.Model()),
	)
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	text, err := g.provider.GenerateJSON(callCtx, BuildPrompt(bodyPart, equipmentNames), ResponseSchema())
	if err != nil {
		return nil, classifyProviderError(err)
	}

	exercises, err := g.parse(text)
	if err != nil {
		log.WithFields(log.Fields{
			"bodyPart": bodyPart,
			"response": text,
		}).Warnf("rejected generator response: %s", err)
		return nil, err
	}

	return &Result{
		Exercises: exercises,
		Model:     g.provider.Model(),
	}, nil
}

// candidate mirrors one item of the response schema. youtubeUrl may be
// empty but must be present.
type candidate struct {
	Name        string  `json:"name" validate:"required,notblank"`
	Steps       string  `json:"steps" validate:"required,notblank"`
	Sets        int     `json:"sets" validate:"required,min=1"`
	Repetitions int     `json:"repetitions" validate:"required,min=1"`
	YoutubeURL  *string `json:"youtubeUrl" validate:"required"`
}

func (g *Gateway) parse(text string) ([]domain.GeneratedExercise, error) {
	var items []json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(text)), &items); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, domain.GeneratorFailure(msgInvalidArray, err, false)
		}
		return nil, domain.GeneratorFailure(msgInvalidJSON, err, false)
	}
	if len(items) == 0 {
		return nil, domain.GeneratorFailure(msgInvalidArray, nil, false)
	}

	exercises := make([]domain.GeneratedExercise, 0, len(items))
	for _, item := range items {
		var c candidate
		if err := json.Unmarshal(item, &c); err != nil {
			return nil, domain.GeneratorFailure(msgMissingFields, err, false)
		}
		if err := g.validate.Struct(c); err != nil {
			return nil, domain.GeneratorFailure(msgMissingFields, err, false)
		}
		exercises = append(exercises, domain.GeneratedExercise{
			Name:        c.Name,
			Steps:       c.Steps,
			Sets:        c.Sets,
			Repetitions: c.Repetitions,
			YoutubeURL:  *c.YoutubeURL,
		})
	}

	if len(exercises) > ExerciseCount {
		exercises = exercises[:ExerciseCount]
	}
	return exercises, nil
}

// stripCodeFence tolerates models that wrap JSON in a markdown block.
func stripCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}

func classifyProviderError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.GeneratorFailure(msgTimeout, err, true)
	}

	code, status := 0, ""
	var apiErr genai.APIError
	var apiErrPtr *genai.APIError
	switch {
	case errors.As(err, &apiErr):
		code, status = apiErr.Code, apiErr.Status
	case errors.As(err, &apiErrPtr):
		code, status = apiErrPtr.Code, apiErrPtr.Status
	}
	if code == http.StatusServiceUnavailable || status == "UNAVAILABLE" {
		return domain.GeneratorFailure(msgUnavailable, err, true)
	}

	return domain.GeneratorFailure(msgProviderFailed, err, false)
}
