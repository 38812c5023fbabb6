package tweet

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/replicate/replicate-go"
	"github.com/vincent-petithory/dataurl"
)

const (
	providerName    = "replicate"
	defaultImageExt = ".jpg"
)

// A ReplicateModel calls Replicate's prediction API for both text and image
// generation.
type ReplicateModel struct {
	logger *slog.Logger
	client *replicate.Client
	http   *http.Client
}

// NewReplicateModel creates a ReplicateModel authenticated with token.
func NewReplicateModel(logger *slog.Logger, token string) (*ReplicateModel, error) {
	c, err := replicate.NewClient(replicate.WithToken(token))
	if err != nil {
		return nil, err
	}
	return &ReplicateModel{logger: logger, client: c, http: http.DefaultClient}, nil
}

// GenerateText runs the named text model and joins its streamed output chunks
// into a single string.
func (m *ReplicateModel) GenerateText(ctx context.Context, model string, input Input) (string, error) {
	m.logger.Info("calling text model", "model", model)
	out, err := m.client.Run(ctx, model, replicate.PredictionInput(input), nil)
	if err != nil {
		return "", &ModelError{Provider: providerName, Stage: "text", Err: err}
	}
	text, err := coerceText(out)
	if err != nil {
		return "", &ModelError{Provider: providerName, Stage: "text", Err: err}
	}
	return text, nil
}

// GenerateImage runs the named image model and retrieves the first image it
// produced, either by downloading a result URL or by decoding an inline data
// URI.
func (m *ReplicateModel) GenerateImage(ctx context.Context, model string, input Input) (Image, error) {
	m.logger.Info("calling image model", "model", model)
	out, err := m.client.Run(ctx, model, replicate.PredictionInput(input), nil)
	if err != nil {
		return Image{}, &ModelError{Provider: providerName, Stage: "image", Err: err}
	}
	s, err := firstImageOutput(out)
	if err != nil {
		return Image{}, &ModelError{Provider: providerName, Stage: "image", Err: err}
	}
	img, err := m.resolveImage(ctx, s)
	if err != nil {
		return Image{}, &ModelError{Provider: providerName, Stage: "image", Err: err}
	}
	return img, nil
}

func coerceText(out replicate.PredictionOutput) (string, error) {
	switch out := out.(type) {
	case string:
		return out, nil
	case []any:
		var sb strings.Builder
		for _, part := range out {
			s, ok := part.(string)
			if !ok {
				return "", fmt.Errorf("unexpected output chunk of type %T", part)
			}
			sb.WriteString(s)
		}
		return sb.String(), nil
	case nil:
		return "", errors.New("model returned no output")
	default:
		return "", fmt.Errorf("unexpected output type %T", out)
	}
}

func firstImageOutput(out replicate.PredictionOutput) (string, error) {
	switch out := out.(type) {
	case string:
		if out == "" {
			return "", errors.New("model returned an empty URL")
		}
		return out, nil
	case []any:
		for _, item := range out {
			if s, ok := item.(string); ok && s != "" {
				return s, nil
			}
		}
		return "", errors.New("output list contains no image URL")
	case nil:
		return "", errors.New("model returned no output")
	default:
		return "", fmt.Errorf("unexpected output type %T", out)
	}
}

func (m *ReplicateModel) resolveImage(ctx context.Context, s string) (Image, error) {
	if strings.HasPrefix(s, "data:") {
		return decodeImageDataURI(s)
	}
	if !looksLikeHTTPURL(s) {
		return Image{}, fmt.Errorf("output %q is not an image URL; cannot persist", s)
	}
	return m.fetchImage(ctx, s)
}

func looksLikeHTTPURL(s string) bool {
	u, err := url.Parse(s)
	return err == nil && (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func decodeImageDataURI(s string) (Image, error) {
	d, err := dataurl.DecodeString(s)
	if err != nil {
		return Image{}, fmt.Errorf("decoding data URI: %w", err)
	}
	ext := defaultImageExt
	if d.MediaType.Subtype != "" {
		ext = "." + d.MediaType.Subtype
	}
	return Image{Data: d.Data, Ext: ext}, nil
}

func (m *ReplicateModel) fetchImage(ctx context.Context, rawURL string) (Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Image{}, err
	}
	resp, err := m.http.Do(req)
	if err != nil {
		return Image{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Image{}, fmt.Errorf("downloading image: %s", resp.Status)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Image{}, err
	}
	return Image{Data: data, Ext: imageExt(rawURL)}, nil
}

func imageExt(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return defaultImageExt
	}
	if ext := path.Ext(u.Path); ext != "" {
		return ext
	}
	return defaultImageExt
}
