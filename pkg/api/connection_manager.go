package api

import (
	"time"

	"github.com/valyala/fasthttp"

	"seo-pages-go/pkg/logger"
)

// ConnectionConfig holds configuration for the fasthttp client.
type ConnectionConfig struct {
	MaxConnsPerHost     int
	MaxIdleConnDuration time.Duration
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	// Dial overrides the network dialer, e.g. with an in-memory listener.
	Dial fasthttp.DialFunc
}

// DefaultConnectionConfig suits one sequential caller.
func DefaultConnectionConfig() ConnectionConfig {
	return ConnectionConfig{
		MaxConnsPerHost:     4,
		MaxIdleConnDuration: 90 * time.Second,
		ReadTimeout:         30 * time.Second,
		WriteTimeout:        10 * time.Second,
	}
}

// ConnectionManager owns the fasthttp client and its idle connections.
type ConnectionManager struct {
	config ConnectionConfig
	client *fasthttp.Client
	log    *logger.Logger
}

func NewConnectionManager(config ConnectionConfig) *ConnectionManager {
	return &ConnectionManager{
		config: config,
		client: &fasthttp.Client{
			Name:                "seo-pages-go/1.0",
			MaxConnsPerHost:     config.MaxConnsPerHost,
			MaxIdleConnDuration: config.MaxIdleConnDuration,
			ReadTimeout:         config.ReadTimeout,
			WriteTimeout:        config.WriteTimeout,
			Dial:                config.Dial,
		},
		log: logger.GetLogger().WithField("component", "connection_manager"),
	}
}

// GetFastHTTPClient returns the managed client.
func (cm *ConnectionManager) GetFastHTTPClient() *fasthttp.Client {
	return cm.client
}

// Close drops idle connections.
func (cm *ConnectionManager) Close() {
	cm.log.Debug("Closing idle connections")
	cm.client.CloseIdleConnections()
}
