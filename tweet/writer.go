package tweet

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	transcriptName = "tweets.txt"
	maxSequence    = 10000
)

// Summary is the JSON document written alongside each generated image.
type Summary struct {
	TweetText   string    `json:"tweet_text"`
	ImagePrompt string    `json:"image_prompt"`
	Selection   Selection `json:"selection"`
	ImageFile   string    `json:"image_file"`
}

// A FileArtifactWriter persists run artifacts to an output directory using
// collision-free timestamped names.
type FileArtifactWriter struct {
	logger      *slog.Logger
	dir         string
	imagePrefix string
	jsonPrefix  string
	now         func() time.Time
}

// NewFileArtifactWriter creates a FileArtifactWriter rooted at dir. The
// directory is created on the first write if it does not exist.
func NewFileArtifactWriter(logger *slog.Logger, dir, imagePrefix, jsonPrefix string) *FileArtifactWriter {
	return &FileArtifactWriter{
		logger:      logger,
		dir:         dir,
		imagePrefix: imagePrefix,
		jsonPrefix:  jsonPrefix,
		now:         time.Now,
	}
}

// Write persists the image, the JSON summary and a transcript entry, in that
// order. A failure stops the chain: artifacts written before the failure stay
// on disk and nothing after it is attempted.
func (w *FileArtifactWriter) Write(result GenerationResult) (RunArtifacts, error) {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return RunArtifacts{}, &IOError{Op: "creating output dir", Path: w.dir, Err: err}
	}
	stamp := w.now().UTC().Format("20060102T150405")

	ext := result.Image.Ext
	if ext == "" {
		ext = defaultImageExt
	}
	imagePath, err := w.nextPath(w.imagePrefix, stamp, ext)
	if err != nil {
		return RunArtifacts{}, err
	}
	w.logger.Info("writing image", "path", imagePath)
	if err := os.WriteFile(imagePath, result.Image.Data, 0o644); err != nil {
		return RunArtifacts{}, &IOError{Op: "writing image", Path: imagePath, Err: err}
	}

	jsonPath, err := w.nextPath(w.jsonPrefix, stamp, ".json")
	if err != nil {
		return RunArtifacts{}, err
	}
	summary := Summary{
		TweetText:   result.TweetText,
		ImagePrompt: result.ImagePrompt,
		Selection:   result.Selection,
		ImageFile:   filepath.Base(imagePath),
	}
	b, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return RunArtifacts{}, &IOError{Op: "encoding summary", Path: jsonPath, Err: err}
	}
	w.logger.Info("writing summary", "path", jsonPath)
	if err := os.WriteFile(jsonPath, append(b, '\n'), 0o644); err != nil {
		return RunArtifacts{}, &IOError{Op: "writing summary", Path: jsonPath, Err: err}
	}

	transcriptPath := filepath.Join(w.dir, transcriptName)
	if err := w.appendTranscript(transcriptPath, result.TweetText, filepath.Base(jsonPath), filepath.Base(imagePath)); err != nil {
		return RunArtifacts{}, err
	}

	return RunArtifacts{
		ImagePath:      imagePath,
		JSONPath:       jsonPath,
		TranscriptPath: transcriptPath,
	}, nil
}

// nextPath returns the first unused path under the writer's directory for the
// given prefix, incrementing the zero-padded sequence suffix on collision.
func (w *FileArtifactWriter) nextPath(prefix, stamp, ext string) (string, error) {
	for seq := 0; seq < maxSequence; seq++ {
		candidate := filepath.Join(w.dir, fmt.Sprintf("%s_%s_%04d%s", prefix, stamp, seq, ext))
		_, err := os.Stat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", &IOError{Op: "probing filename", Path: candidate, Err: err}
		}
	}
	return "", &IOError{Op: "allocating filename", Path: w.dir, Err: fmt.Errorf("no unused name after %d attempts", maxSequence)}
}

func (w *FileArtifactWriter) appendTranscript(path, tweetText, jsonName, imageName string) error {
	w.logger.Info("appending transcript entry", "path", path)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &IOError{Op: "opening transcript", Path: path, Err: err}
	}
	defer f.Close()
	entry := fmt.Sprintf("[%s]\n%s\nJSON: %s\nImage: %s\n\n",
		w.now().UTC().Format(time.RFC3339), tweetText, jsonName, imageName)
	if _, err := f.WriteString(entry); err != nil {
		return &IOError{Op: "appending transcript", Path: path, Err: err}
	}
	return nil
}
