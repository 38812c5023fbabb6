// Package tweet composes tweet text and a companion image with generative
// models, driven by madlib prompt templates, and persists the results.
package tweet

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate . TextModel
type TextModel interface {
	GenerateText(ctx context.Context, model string, input Input) (string, error)
}

//counterfeiter:generate . ImageModel
type ImageModel interface {
	GenerateImage(ctx context.Context, model string, input Input) (Image, error)
}

//counterfeiter:generate . ArtifactWriter
type ArtifactWriter interface {
	Write(result GenerationResult) (RunArtifacts, error)
}

// An Image is the binary output of an image model together with the file
// extension appropriate for its format.
type Image struct {
	Data []byte
	Ext  string
}

// A GenerationResult carries everything one run produced before it is
// persisted.
type GenerationResult struct {
	TweetText   string
	Image       Image
	TextPrompt  string
	ImagePrompt string
	Selection   Selection
}

// RunArtifacts lists the files persisted for one run.
type RunArtifacts struct {
	ImagePath      string
	JSONPath       string
	TranscriptPath string
}

// A Pipeline runs one generation end to end: three template renders sharing a
// single random source, two text-model calls, one image-model call, then
// artifact persistence.
type Pipeline struct {
	logger       *slog.Logger
	library      *Library
	templates    Templates
	textModel    TextModel
	imageModel   ImageModel
	writer       ArtifactWriter
	textModelID  string
	imageModelID string
}

// NewPipeline creates a Pipeline.
func NewPipeline(logger *slog.Logger, library *Library, templates Templates, tm TextModel, im ImageModel, w ArtifactWriter, textModelID, imageModelID string) *Pipeline {
	return &Pipeline{
		logger:       logger,
		library:      library,
		templates:    templates,
		textModel:    tm,
		imageModel:   im,
		writer:       w,
		textModelID:  textModelID,
		imageModelID: imageModelID,
	}
}

// Run executes a single generation. When seed is non-nil the run is
// reproducible: the renders consume one seeded source in a fixed order
// (tweet prompt, then image prompt, then image payload), so the same seed
// with the same templates and library always yields the same selections.
// A failed model call aborts the run before anything is written.
func (p *Pipeline) Run(ctx context.Context, seed *int64) (RunArtifacts, error) {
	rng := newRand(seed)
	sel := Selection{}

	in, err := p.templates.Tweet.Render(p.library, nil, rng, sel)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("rendering tweet prompt: %w", err)
	}
	textPrompt := promptField(in)
	p.logger.Info("generating tweet text", "model", p.textModelID)
	tweetText, err := p.textModel.GenerateText(ctx, p.textModelID, in)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("generating tweet text: %w", err)
	}
	tweetText = strings.TrimSpace(tweetText)
	if tweetText == "" {
		return RunArtifacts{}, fmt.Errorf("generating tweet text: %w", &ModelError{Stage: "text", Err: errors.New("empty output")})
	}

	in, err = p.templates.ImagePrompt.Render(p.library, map[string]string{"tweet": tweetText}, rng, sel)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("rendering image prompt request: %w", err)
	}
	p.logger.Info("generating image prompt", "model", p.textModelID)
	imagePrompt, err := p.textModel.GenerateText(ctx, p.textModelID, in)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("generating image prompt: %w", err)
	}
	imagePrompt = strings.TrimSpace(imagePrompt)
	if imagePrompt == "" {
		return RunArtifacts{}, fmt.Errorf("generating image prompt: %w", &ModelError{Stage: "text", Err: errors.New("empty output")})
	}

	in, err = p.templates.Image.Render(p.library, map[string]string{"imageprompt": imagePrompt}, rng, sel)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("rendering image payload: %w", err)
	}
	p.logger.Info("generating image", "model", p.imageModelID)
	img, err := p.imageModel.GenerateImage(ctx, p.imageModelID, in)
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("generating image: %w", err)
	}

	artifacts, err := p.writer.Write(GenerationResult{
		TweetText:   tweetText,
		Image:       img,
		TextPrompt:  textPrompt,
		ImagePrompt: imagePrompt,
		Selection:   sel,
	})
	if err != nil {
		return RunArtifacts{}, fmt.Errorf("writing artifacts: %w", err)
	}
	p.logger.Info("run complete", "image", artifacts.ImagePath, "summary", artifacts.JSONPath)
	return artifacts, nil
}

func promptField(in Input) string {
	s, _ := in["prompt"].(string)
	return s
}

func newRand(seed *int64) *rand.Rand {
	if seed != nil {
		return rand.New(rand.NewSource(*seed))
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
