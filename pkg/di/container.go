// Package di provides dependency injection container
package di

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/ssargent/gostdf/pkg/config"
	"github.com/ssargent/gostdf/pkg/logging"
	"github.com/ssargent/gostdf/pkg/metrics"
	"github.com/ssargent/gostdf/pkg/source"
	"github.com/ssargent/gostdf/pkg/storage"
	"github.com/ssargent/gostdf/pkg/stream"
)

// CatalogFactory opens offset catalogs
type CatalogFactory interface {
	OpenCatalog(dir string, opts ...storage.Option) (*storage.Catalog, error)
}

// DefaultCatalogFactory opens pebble catalogs on disk
type DefaultCatalogFactory struct{}

// OpenCatalog opens the catalog in dir
func (DefaultCatalogFactory) OpenCatalog(dir string, opts ...storage.Option) (*storage.Catalog, error) {
	return storage.Open(dir, opts...)
}

// Container holds all the dependencies for the application
type Container struct {
	config         *config.Config
	logger         *zap.Logger
	registry       *prometheus.Registry
	metrics        *metrics.Collector
	catalogFactory CatalogFactory
}

// NewContainer creates a container with the default configuration and a
// no-op logger. Configure replaces both.
func NewContainer() *Container {
	registry := prometheus.NewRegistry()
	return &Container{
		config:         config.DefaultConfig(),
		logger:         zap.NewNop(),
		registry:       registry,
		metrics:        metrics.NewCollector(registry),
		catalogFactory: DefaultCatalogFactory{},
	}
}

// Configure validates cfg and builds the logger it describes
func (c *Container) Configure(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	_ = c.logger.Sync()
	c.config = cfg
	c.logger = logger
	return nil
}

// Config returns the active configuration
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the application logger
func (c *Container) Logger() *zap.Logger {
	return c.logger
}

// SetLogger allows overriding the logger (for testing)
func (c *Container) SetLogger(logger *zap.Logger) {
	c.logger = logger
}

// Registry returns the prometheus registry the collector is registered with
func (c *Container) Registry() *prometheus.Registry {
	return c.registry
}

// Metrics returns the record stream collector
func (c *Container) Metrics() *metrics.Collector {
	return c.metrics
}

// SetCatalogFactory allows overriding the catalog factory (for testing)
func (c *Container) SetCatalogFactory(factory CatalogFactory) {
	c.catalogFactory = factory
}

// OpenCatalog opens the configured catalog, reporting to the collector
func (c *Container) OpenCatalog() (*storage.Catalog, error) {
	return c.catalogFactory.OpenCatalog(c.config.Catalog.Dir,
		storage.WithLogger(c.logger.Named("catalog")),
		storage.WithRecorder(c.metrics))
}

// Input is an open file and the record reader over it
type Input struct {
	*stream.Reader
	File *source.File
}

// Close closes the file
func (in *Input) Close() error {
	return in.File.Close()
}

// OpenInput opens path with the configured compression and filter. The
// reader reports to the collector; opts are applied after the defaults.
func (c *Container) OpenInput(path string, opts ...stream.Option) (*Input, error) {
	srcCfg, err := c.config.SourceConfig()
	if err != nil {
		return nil, err
	}
	kinds, err := c.config.FilterKinds()
	if err != nil {
		return nil, err
	}

	f, err := source.Open(path, srcCfg)
	if err != nil {
		return nil, err
	}

	defaults := []stream.Option{
		stream.WithFilter(kinds),
		stream.WithLogger(c.logger.With(zap.String("path", path))),
		stream.WithObserver(c.metrics),
	}
	r, err := stream.Open(f, append(defaults, opts...)...)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("%s: %w", path, err), f.Close())
	}
	return &Input{Reader: r, File: f}, nil
}

// Close flushes the logger
func (c *Container) Close() error {
	return c.logger.Sync()
}
