package kpa

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Client provides a high-level API for known-plaintext attacks on samples
// loaded from files.
type Client struct {
	parser SampleParser
	logger zerolog.Logger
}

// NewClient creates a new client with default settings: JSON sample parsing
// and no logging.
func NewClient() *Client {
	return &Client{
		parser: &JSONParser{},
		logger: zerolog.Nop(),
	}
}

// WithParser sets a custom sample parser.
func (c *Client) WithParser(parser SampleParser) *Client {
	c.parser = parser
	return c
}

// WithLogger sets the logger used to report attack progress.
func (c *Client) WithLogger(logger zerolog.Logger) *Client {
	c.logger = logger
	return c
}

// Recover loads a sample from source using the configured parser and runs
// the known-plaintext attack on it.
func (c *Client) Recover(ctx context.Context, source string) (*Result, error) {
	sample, err := c.parser.ParseSample(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse sample: %w", err)
	}
	return c.RecoverSample(ctx, sample)
}

// RecoverSample runs the known-plaintext attack on an in-memory sample. Use
// this when the ciphertext and known plaintext come from your own loader.
func (c *Client) RecoverSample(ctx context.Context, sample *Sample) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.logger.Info().
		Int("ciphertext_bytes", len(sample.Ciphertext)).
		Int("known_plaintext_bytes", len(sample.KnownPlaintext)).
		Msg("starting known-plaintext attack")

	result, err := RecoverKeystream(sample.Ciphertext, sample.KnownPlaintext)
	if err != nil {
		return nil, err
	}

	c.logger.Info().
		Stringer("polynomial", result.Polynomial).
		Int("linear_complexity", result.Complexity).
		Bool("verified", result.Verified).
		Msg("recovered keystream generator")

	if exposed := len(sample.KnownPlaintext) * 8; exposed < 2*result.Complexity {
		c.logger.Warn().
			Int("exposed_bits", exposed).
			Int("required_bits", 2*result.Complexity).
			Msg("exposed keystream shorter than twice the measured complexity, polynomial may under-fit")
	}

	return result, nil
}
