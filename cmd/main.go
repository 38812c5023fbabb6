/*
Tweetgen composes a short tweet and a companion image with Replicate-hosted
models, driven by madlib prompt templates, and saves the results to an output
directory.

It requires TEXT_MODEL, IMAGE_MODEL and a Replicate API token
(REPLICATE_API_TOKEN, or REPLICATE_API_KEY as a fallback) in the environment
or in a local .env file.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/cl8y/tweetgen/tweet"
)

func main() {
	logger := slog.New(tint.NewHandler(os.Stderr, nil))

	outputDir := flag.String("output-dir", "replicate_tweet_outputs", "directory where the image and JSON summary are written")
	seedFlag := flag.String("seed", "", "integer seed for deterministic madlib sampling")
	imagePrefix := flag.String("image-prefix", "tweet_image", "filename prefix for generated images")
	jsonPrefix := flag.String("json-prefix", "tweet_output", "filename prefix for generated JSON summaries")
	promptsDir := flag.String("prompts-dir", "prompts", "directory containing prompt templates and madlib fragments")
	flag.Parse()

	var seed *int64
	if *seedFlag != "" {
		n, err := strconv.ParseInt(*seedFlag, 10, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --seed %q: must be an integer\n", *seedFlag)
			os.Exit(1)
		}
		seed = &n
	}

	// A missing .env is fine; the variables may come from the environment.
	_ = godotenv.Load()

	cfg, err := tweet.LoadConfig()
	if err != nil {
		logger.Error("loading configuration", "err", err)
		os.Exit(1)
	}

	templates, library, err := tweet.LoadPrompts(*promptsDir)
	if err != nil {
		logger.Error("loading prompts", "err", err)
		os.Exit(1)
	}

	model, err := tweet.NewReplicateModel(logger, cfg.APIToken)
	if err != nil {
		logger.Error("initializing model client", "err", err)
		os.Exit(1)
	}

	writer := tweet.NewFileArtifactWriter(logger, *outputDir, *imagePrefix, *jsonPrefix)
	pipeline := tweet.NewPipeline(logger, library, templates, model, model, writer, cfg.TextModel, cfg.ImageModel)

	artifacts, err := pipeline.Run(context.Background(), seed)
	if err != nil {
		logger.Error("generating tweet", "err", err)
		os.Exit(1)
	}

	fmt.Printf("Tweet saved to %s\n", artifacts.JSONPath)
	fmt.Printf("Image saved to %s\n", artifacts.ImagePath)
}
